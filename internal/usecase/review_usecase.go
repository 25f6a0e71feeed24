package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"sueahahn/internal/domain/entity"
	"sueahahn/internal/store"
	"sueahahn/pkg/errors"
	"sueahahn/pkg/utils"
)

type ReviewUseCase struct {
	store    *store.Store
	validate *validator.Validate
}

func NewReviewUseCase(s *store.Store, validate *validator.Validate) *ReviewUseCase {
	return &ReviewUseCase{store: s, validate: validate}
}

type AddReviewInput struct {
	OrderID string `validate:"required"`
	Rating  int    `validate:"gte=1,lte=5"`
	Comment string
}

// AddReview appends a review for an order the caller placed and folds the
// new rating into the item's running mean.
func (uc *ReviewUseCase) AddReview(ctx context.Context, input AddReviewInput) (*entity.Review, error) {
	doc := uc.store.Current()
	current, err := requireSession(doc)
	if err != nil {
		return nil, err
	}
	if err := uc.validate.Struct(input); err != nil {
		return nil, errors.BadRequest("rating must be between 1 and 5", err)
	}

	order := doc.FindOrder(input.OrderID)
	if order == nil {
		return nil, errors.NotFound("Order", nil)
	}
	if order.BuyerID != current.ID {
		return nil, errors.Unauthorized("only the buyer can review this order", nil)
	}
	if doc.FindFood(order.FoodID) == nil {
		return nil, errors.NotFound("Food item", nil)
	}

	review := entity.Review{
		ID:         utils.NewID("REV"),
		FoodID:     order.FoodID,
		OrderID:    order.ID,
		AuthorID:   current.ID,
		AuthorName: current.DisplayName,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  nowMillis(),
	}

	next := doc.Clone()
	next.Reviews = append(next.Reviews, review)

	item := next.FindFood(order.FoodID)
	newCount := item.ReviewCount + 1
	item.Rating = (item.Rating*float64(item.ReviewCount) + float64(input.Rating)) / float64(newCount)
	item.ReviewCount = newCount

	if err := uc.store.Save(ctx, next); err != nil {
		return nil, err
	}
	return &review, nil
}

// ReplyReview sets the seller's response on a review of their item.
func (uc *ReviewUseCase) ReplyReview(ctx context.Context, reviewID, reply string) (*entity.Review, error) {
	doc := uc.store.Current()
	current, err := requireSession(doc)
	if err != nil {
		return nil, err
	}
	if reply == "" {
		return nil, errors.BadRequest("reply must not be empty", nil)
	}

	review := doc.FindReview(reviewID)
	if review == nil {
		return nil, errors.NotFound("Review", nil)
	}
	item := doc.FindFood(review.FoodID)
	if item == nil {
		return nil, errors.NotFound("Food item", nil)
	}
	if item.SellerID != current.ID {
		return nil, errors.Unauthorized("only the seller can reply to this review", nil)
	}

	next := doc.Clone()
	updated := next.FindReview(reviewID)
	updated.Reply = reply

	if err := uc.store.Save(ctx, next); err != nil {
		return nil, err
	}
	return updated, nil
}
