package entity

type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID             string      `json:"id"`
	FoodID         string      `json:"foodId"`
	FoodName       string      `json:"foodName"` // snapshot at order time
	SellerID       string      `json:"sellerId"`
	BuyerID        string      `json:"buyerId"`
	BuyerName      string      `json:"buyerName"` // snapshot at order time
	Quantity       int         `json:"quantity"`
	TotalPrice     float64     `json:"totalPrice"` // unit price x quantity at order time
	Note           string      `json:"note"`
	PickupTime     string      `json:"pickupTime"`
	PickupLocation string      `json:"pickupLocation"`
	Status         OrderStatus `json:"status"`
	CreatedAt      int64       `json:"createdAt"`
}
