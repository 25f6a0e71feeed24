package usecase

import (
	"context"
	"fmt"

	"sueahahn/internal/domain/entity"
	"sueahahn/internal/store"
	"sueahahn/pkg/errors"
	"sueahahn/pkg/utils"
)

type OrderUseCase struct {
	store *store.Store
}

func NewOrderUseCase(s *store.Store) *OrderUseCase {
	return &OrderUseCase{store: s}
}

type PlaceOrderInput struct {
	FoodID         string
	Quantity       int
	Note           string
	PickupTime     string
	PickupLocation string
}

// PlaceOrder creates a processing order, reserves the stock and notifies
// the seller. The total price and both display names are snapshots taken
// at order time.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*entity.Order, error) {
	doc := uc.store.Current()
	current, err := requireSession(doc)
	if err != nil {
		return nil, err
	}
	if input.Quantity < 1 {
		return nil, errors.New(errors.CodeInvalidQuantity, "quantity must be at least 1", nil)
	}

	item := doc.FindFood(input.FoodID)
	if item == nil {
		return nil, errors.NotFound("Food item", nil)
	}
	if item.IsHidden && item.SellerID != current.ID {
		// Hidden items are invisible to buyers.
		return nil, errors.NotFound("Food item", nil)
	}
	if input.Quantity > item.Stock {
		return nil, errors.New(errors.CodeOutOfStock,
			fmt.Sprintf("only %d left in stock", item.Stock), nil)
	}

	order := entity.Order{
		ID:             utils.NewID("ORD"),
		FoodID:         item.ID,
		FoodName:       item.Name,
		SellerID:       item.SellerID,
		BuyerID:        current.ID,
		BuyerName:      current.DisplayName,
		Quantity:       input.Quantity,
		TotalPrice:     item.Price * float64(input.Quantity),
		Note:           input.Note,
		PickupTime:     input.PickupTime,
		PickupLocation: input.PickupLocation,
		Status:         entity.OrderProcessing,
		CreatedAt:      nowMillis(),
	}

	next := doc.Clone()
	next.FindFood(item.ID).Stock -= input.Quantity
	next.Orders = append(next.Orders, order)
	prependNotification(next, newNotification(
		order.SellerID,
		entity.NotifOrder,
		"New order!",
		fmt.Sprintf("%s ordered %d x %s", order.BuyerName, order.Quantity, order.FoodName),
	))

	if err := uc.store.Save(ctx, next); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus moves a processing order to delivered or cancelled.
// Delivery is the seller's call and notifies the buyer; cancellation is
// open to either party, keeps the order for history and returns the
// reserved stock.
func (uc *OrderUseCase) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	doc := uc.store.Current()
	current, err := requireSession(doc)
	if err != nil {
		return nil, err
	}

	order := doc.FindOrder(orderID)
	if order == nil {
		return nil, errors.NotFound("Order", nil)
	}
	if status != entity.OrderDelivered && status != entity.OrderCancelled {
		return nil, errors.BadRequest("unsupported order status", nil)
	}
	if order.Status != entity.OrderProcessing {
		return nil, errors.Conflict("order is already " + string(order.Status))
	}
	if current.ID != order.SellerID && current.ID != order.BuyerID {
		return nil, errors.Unauthorized("not a party to this order", nil)
	}
	if status == entity.OrderDelivered && current.ID != order.SellerID {
		return nil, errors.Unauthorized("only the seller can mark an order delivered", nil)
	}

	next := doc.Clone()
	updated := next.FindOrder(orderID)
	updated.Status = status

	switch status {
	case entity.OrderDelivered:
		prependNotification(next, newNotification(
			updated.BuyerID,
			entity.NotifStatus,
			"Order status updated",
			fmt.Sprintf("Your order %s is now delivered", updated.FoodName),
		))
	case entity.OrderCancelled:
		if item := next.FindFood(updated.FoodID); item != nil {
			item.Stock += updated.Quantity
		}
	}

	if err := uc.store.Save(ctx, next); err != nil {
		return nil, err
	}
	return updated, nil
}
