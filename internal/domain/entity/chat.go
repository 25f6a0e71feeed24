package entity

// GroupReceiver is the broadcast target for community-wide chat messages.
const GroupReceiver = "group"

type ChatMessage struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"` // user id or GroupReceiver
	Text       string `json:"text,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
	CreatedAt  int64  `json:"createdAt"`
}
