package usecase

import (
	"context"
	"time"

	"sueahahn/internal/domain/entity"
	"sueahahn/internal/store"
	"sueahahn/pkg/errors"
)

type NotificationUseCase struct {
	store *store.Store
	ttl   time.Duration
}

func NewNotificationUseCase(s *store.Store, ttl time.Duration) *NotificationUseCase {
	return &NotificationUseCase{store: s, ttl: ttl}
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, id string) error {
	doc := uc.store.Current()
	current, err := requireSession(doc)
	if err != nil {
		return err
	}

	notif := doc.FindNotification(id)
	if notif == nil {
		return errors.NotFound("Notification", nil)
	}
	if notif.UserID != current.ID {
		return errors.Unauthorized("not your notification", nil)
	}
	if notif.IsRead {
		return nil
	}

	next := doc.Clone()
	next.FindNotification(id).IsRead = true
	return uc.store.Save(ctx, next)
}

func (uc *NotificationUseCase) DeleteNotification(ctx context.Context, id string) error {
	doc := uc.store.Current()
	current, err := requireSession(doc)
	if err != nil {
		return err
	}

	notif := doc.FindNotification(id)
	if notif == nil {
		return errors.NotFound("Notification", nil)
	}
	if notif.UserID != current.ID {
		return errors.Unauthorized("not your notification", nil)
	}

	next := doc.Clone()
	kept := next.Notifications[:0]
	for _, n := range next.Notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	next.Notifications = kept
	return uc.store.Save(ctx, next)
}

// PruneExpired drops notifications older than the configured retention and
// reports how many were removed. Commits only when something expired; runs
// without a session, it is a maintenance operation.
func (uc *NotificationUseCase) PruneExpired(ctx context.Context) (int, error) {
	doc := uc.store.Current()
	cutoff := time.Now().Add(-uc.ttl).UnixMilli()

	expired := 0
	for _, n := range doc.Notifications {
		if n.CreatedAt <= cutoff {
			expired++
		}
	}
	if expired == 0 {
		return 0, nil
	}

	next := doc.Clone()
	kept := make([]entity.Notification, 0, len(next.Notifications)-expired)
	for _, n := range next.Notifications {
		if n.CreatedAt > cutoff {
			kept = append(kept, n)
		}
	}
	next.Notifications = kept

	if err := uc.store.Save(ctx, next); err != nil {
		return 0, err
	}
	return expired, nil
}
