package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"sueahahn/internal/domain/entity"
	"sueahahn/internal/store"
	"sueahahn/pkg/errors"
	"sueahahn/pkg/utils"
)

type FoodUseCase struct {
	store    *store.Store
	validate *validator.Validate
}

func NewFoodUseCase(s *store.Store, validate *validator.Validate) *FoodUseCase {
	return &FoodUseCase{store: s, validate: validate}
}

type AddFoodInput struct {
	Name        string `validate:"required"`
	Description string
	Price       float64 `validate:"gte=0"`
	Stock       int     `validate:"gte=0"`
	ImageURL    string
	IsHidden    bool
}

func (uc *FoodUseCase) AddFood(ctx context.Context, input AddFoodInput) (*entity.FoodItem, error) {
	doc := uc.store.Current()
	current, err := requireSession(doc)
	if err != nil {
		return nil, err
	}
	if err := uc.validate.Struct(input); err != nil {
		return nil, errors.BadRequest("invalid food item", err)
	}

	item := entity.FoodItem{
		ID:          utils.NewID("FOOD"),
		SellerID:    current.ID,
		SellerName:  current.DisplayName, // snapshot, later renames do not propagate
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		IsHidden:    input.IsHidden,
		Rating:      0,
		ReviewCount: 0,
	}

	next := doc.Clone()
	next.FoodItems = append(next.FoodItems, item)
	if err := uc.store.Save(ctx, next); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateFoodInput uses pointers for the fields whose zero value is a
// meaningful update (price 0, stock 0, unhide).
type UpdateFoodInput struct {
	Name        string
	Description string
	ImageURL    string
	Price       *float64
	Stock       *int
	IsHidden    *bool
}

func (uc *FoodUseCase) UpdateFood(ctx context.Context, id string, input UpdateFoodInput) (*entity.FoodItem, error) {
	doc := uc.store.Current()
	current, err := requireSession(doc)
	if err != nil {
		return nil, err
	}

	item := doc.FindFood(id)
	if item == nil {
		return nil, errors.NotFound("Food item", nil)
	}
	if item.SellerID != current.ID {
		return nil, errors.Unauthorized("only the seller can update this item", nil)
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, errors.BadRequest("price must not be negative", nil)
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, errors.BadRequest("stock must not be negative", nil)
	}

	next := doc.Clone()
	updated := next.FindFood(id)
	if input.Name != "" {
		updated.Name = input.Name
	}
	if input.Description != "" {
		updated.Description = input.Description
	}
	if input.ImageURL != "" {
		updated.ImageURL = input.ImageURL
	}
	if input.Price != nil {
		updated.Price = *input.Price
	}
	if input.Stock != nil {
		updated.Stock = *input.Stock
	}
	if input.IsHidden != nil {
		updated.IsHidden = *input.IsHidden
	}

	if err := uc.store.Save(ctx, next); err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *FoodUseCase) DeleteFood(ctx context.Context, id string) error {
	doc := uc.store.Current()
	current, err := requireSession(doc)
	if err != nil {
		return err
	}

	item := doc.FindFood(id)
	if item == nil {
		return errors.NotFound("Food item", nil)
	}
	if item.SellerID != current.ID {
		return errors.Unauthorized("only the seller can delete this item", nil)
	}

	next := doc.Clone()
	kept := next.FoodItems[:0]
	for _, f := range next.FoodItems {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	next.FoodItems = kept
	return uc.store.Save(ctx, next)
}
