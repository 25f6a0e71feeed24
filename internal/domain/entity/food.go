package entity

type FoodItem struct {
	ID          string  `json:"id"`
	SellerID    string  `json:"sellerId"`
	SellerName  string  `json:"sellerName"` // snapshot at creation, not live-updated
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl"`
	IsHidden    bool    `json:"isHidden"`
	Rating      float64 `json:"rating"` // running mean of review ratings, 0 when ReviewCount is 0
	ReviewCount int     `json:"reviewCount"`
}
