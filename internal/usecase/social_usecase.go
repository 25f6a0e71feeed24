package usecase

import (
	"context"

	"sueahahn/internal/store"
	"sueahahn/pkg/errors"
)

type SocialUseCase struct {
	store *store.Store
}

func NewSocialUseCase(s *store.Store) *SocialUseCase {
	return &SocialUseCase{store: s}
}

// FollowUser appends the target to the caller's following list and the
// caller to the target's followers list in a single commit, keeping the
// two sides symmetric. Following someone twice is a no-op.
func (uc *SocialUseCase) FollowUser(ctx context.Context, targetID string) error {
	doc := uc.store.Current()
	current, err := requireSession(doc)
	if err != nil {
		return err
	}
	if targetID == current.ID {
		return errors.BadRequest("cannot follow yourself", nil)
	}
	if doc.FindUser(targetID) == nil {
		return errors.NotFound("User", nil)
	}
	if doc.FindUser(current.ID).IsFollowing(targetID) {
		return nil
	}

	next := doc.Clone()
	follower := next.FindUser(current.ID)
	target := next.FindUser(targetID)
	follower.Following = append(follower.Following, targetID)
	target.Followers = append(target.Followers, current.ID)
	next.SyncCurrentUser()

	return uc.store.Save(ctx, next)
}

// UnfollowUser is the symmetric inverse of FollowUser. Unfollowing someone
// not followed is a no-op.
func (uc *SocialUseCase) UnfollowUser(ctx context.Context, targetID string) error {
	doc := uc.store.Current()
	current, err := requireSession(doc)
	if err != nil {
		return err
	}
	if !doc.FindUser(current.ID).IsFollowing(targetID) {
		return nil
	}

	next := doc.Clone()
	follower := next.FindUser(current.ID)
	follower.Following = removeID(follower.Following, targetID)
	if target := next.FindUser(targetID); target != nil {
		target.Followers = removeID(target.Followers, current.ID)
	}
	next.SyncCurrentUser()

	return uc.store.Save(ctx, next)
}

func removeID(ids []string, id string) []string {
	kept := ids[:0]
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}
