package entity

type Review struct {
	ID         string `json:"id"`
	FoodID     string `json:"foodId"`
	OrderID    string `json:"orderId"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"` // snapshot at creation
	Rating     int    `json:"rating"`     // 1-5
	Comment    string `json:"comment"`
	Reply      string `json:"reply,omitempty"` // seller response
	CreatedAt  int64  `json:"createdAt"`
}
