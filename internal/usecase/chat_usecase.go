package usecase

import (
	"context"
	"fmt"

	"sueahahn/internal/domain/entity"
	"sueahahn/internal/store"
	"sueahahn/pkg/errors"
	"sueahahn/pkg/utils"
)

type ChatUseCase struct {
	store *store.Store
}

func NewChatUseCase(s *store.Store) *ChatUseCase {
	return &ChatUseCase{store: s}
}

type SendMessageInput struct {
	ReceiverID string // user id or entity.GroupReceiver
	Text       string
	ImageURL   string
}

// SendMessage appends a chat message and, for direct messages, notifies
// the receiver. Group messages notify nobody.
func (uc *ChatUseCase) SendMessage(ctx context.Context, input SendMessageInput) (*entity.ChatMessage, error) {
	doc := uc.store.Current()
	current, err := requireSession(doc)
	if err != nil {
		return nil, err
	}
	if input.ReceiverID == "" {
		return nil, errors.BadRequest("receiver is required", nil)
	}
	if input.Text == "" && input.ImageURL == "" {
		return nil, errors.BadRequest("message needs text or an image", nil)
	}
	if input.ReceiverID != entity.GroupReceiver && doc.FindUser(input.ReceiverID) == nil {
		return nil, errors.NotFound("Receiver", nil)
	}

	msg := entity.ChatMessage{
		ID:         utils.NewID("MSG"),
		SenderID:   current.ID,
		ReceiverID: input.ReceiverID,
		Text:       input.Text,
		ImageURL:   input.ImageURL,
		CreatedAt:  nowMillis(),
	}

	next := doc.Clone()
	next.Chats = append(next.Chats, msg)
	if input.ReceiverID != entity.GroupReceiver {
		prependNotification(next, newNotification(
			input.ReceiverID,
			entity.NotifMessage,
			"New message",
			fmt.Sprintf("You have a new message from %s", current.DisplayName),
		))
	}

	if err := uc.store.Save(ctx, next); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (uc *ChatUseCase) DeleteMessage(ctx context.Context, id string) error {
	doc := uc.store.Current()
	current, err := requireSession(doc)
	if err != nil {
		return err
	}

	msg := doc.FindMessage(id)
	if msg == nil {
		return errors.NotFound("Message", nil)
	}
	if msg.SenderID != current.ID {
		return errors.Unauthorized("only the sender can delete this message", nil)
	}

	next := doc.Clone()
	kept := next.Chats[:0]
	for _, m := range next.Chats {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	next.Chats = kept
	return uc.store.Save(ctx, next)
}
