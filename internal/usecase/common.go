package usecase

import (
	"time"

	"sueahahn/internal/domain/entity"
	"sueahahn/pkg/errors"
	"sueahahn/pkg/utils"
)

func requireSession(doc *entity.Document) (*entity.User, error) {
	if doc.CurrentUser == nil {
		return nil, errors.Unauthorized("no user is logged in", nil)
	}
	return doc.CurrentUser, nil
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func newNotification(userID string, typ entity.NotificationType, title, message string) entity.Notification {
	return entity.Notification{
		ID:        utils.NewID("NOTI"),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		IsRead:    false,
		CreatedAt: nowMillis(),
	}
}

// prependNotification keeps the newest-first ordering of the notification
// collection.
func prependNotification(doc *entity.Document, n entity.Notification) {
	doc.Notifications = append([]entity.Notification{n}, doc.Notifications...)
}
