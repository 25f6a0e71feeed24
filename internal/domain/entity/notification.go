package entity

type NotificationType string

const (
	NotifOrder   NotificationType = "order"
	NotifStatus  NotificationType = "status"
	NotifMessage NotificationType = "message"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"` // recipient
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"isRead"`
	CreatedAt int64            `json:"createdAt"`
}
