// Package facade is the surface consumed by the UI layer: read access to
// the reactive document, the full set of mutation operations, and change
// subscriptions. It plays the role the context hook played in the browser
// app.
package facade

import (
	"time"

	"github.com/go-playground/validator/v10"

	"sueahahn/internal/domain/entity"
	"sueahahn/internal/store"
	"sueahahn/internal/usecase"
	"sueahahn/pkg/config"
	"sueahahn/pkg/errors"
)

type Facade struct {
	store *store.Store

	Auth          *usecase.AuthUseCase
	Food          *usecase.FoodUseCase
	Orders        *usecase.OrderUseCase
	Chat          *usecase.ChatUseCase
	Reviews       *usecase.ReviewUseCase
	Social        *usecase.SocialUseCase
	Notifications *usecase.NotificationUseCase
}

// New wires the mutation operations over a loaded store. Construction
// fails outside an initialized store context.
func New(s *store.Store, cfg *config.Config) (*Facade, error) {
	if s == nil || !s.Loaded() {
		return nil, errors.Internal("facade requires a loaded store", nil)
	}

	validate := validator.New()
	ttl := time.Duration(cfg.NotificationTTLDays) * 24 * time.Hour

	return &Facade{
		store:         s,
		Auth:          usecase.NewAuthUseCase(s, validate, cfg.PasswordMinLength),
		Food:          usecase.NewFoodUseCase(s, validate),
		Orders:        usecase.NewOrderUseCase(s),
		Chat:          usecase.NewChatUseCase(s),
		Reviews:       usecase.NewReviewUseCase(s, validate),
		Social:        usecase.NewSocialUseCase(s),
		Notifications: usecase.NewNotificationUseCase(s, ttl),
	}, nil
}

func (f *Facade) CurrentUser() *entity.User {
	return f.store.Current().CurrentUser
}

func (f *Facade) Users() []entity.User {
	return f.store.Current().Users
}

func (f *Facade) FoodItems() []entity.FoodItem {
	return f.store.Current().FoodItems
}

func (f *Facade) OrderList() []entity.Order {
	return f.store.Current().Orders
}

func (f *Facade) Chats() []entity.ChatMessage {
	return f.store.Current().Chats
}

func (f *Facade) ReviewList() []entity.Review {
	return f.store.Current().Reviews
}

func (f *Facade) NotificationList() []entity.Notification {
	return f.store.Current().Notifications
}

// UnreadCount is the notification badge for the session user.
func (f *Facade) UnreadCount() int {
	doc := f.store.Current()
	if doc.CurrentUser == nil {
		return 0
	}
	count := 0
	for _, n := range doc.Notifications {
		if n.UserID == doc.CurrentUser.ID && !n.IsRead {
			count++
		}
	}
	return count
}

// Subscribe registers a re-render callback fired on every document change,
// local or replicated. Returns an unsubscribe func.
func (f *Facade) Subscribe(fn func(*entity.Document)) func() {
	return f.store.Subscribe(fn)
}
