package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sueahahn/pkg/errors"
)

func TestFollowKeepsBothSidesSymmetric(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	auth := newAuth(s)
	social := NewSocialUseCase(s)

	a := signup(t, auth, "a@x.com", "A")
	b := signup(t, auth, "b@x.com", "B")

	// b is logged in and follows a.
	require.NoError(t, social.FollowUser(ctx, a.ID))

	doc := s.Current()
	assert.Contains(t, doc.FindUser(b.ID).Following, a.ID)
	assert.Contains(t, doc.FindUser(a.ID).Followers, b.ID)
	assert.Contains(t, doc.CurrentUser.Following, a.ID)

	require.NoError(t, social.UnfollowUser(ctx, a.ID))
	doc = s.Current()
	assert.NotContains(t, doc.FindUser(b.ID).Following, a.ID)
	assert.NotContains(t, doc.FindUser(a.ID).Followers, b.ID)
}

func TestFollowYourselfIsRejected(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	auth := newAuth(s)
	social := NewSocialUseCase(s)

	a := signup(t, auth, "a@x.com", "A")
	err := social.FollowUser(ctx, a.ID)
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
}

func TestFollowUnknownUserIsRejected(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	auth := newAuth(s)
	social := NewSocialUseCase(s)
	signup(t, auth, "a@x.com", "A")

	err := social.FollowUser(ctx, "USR-MISSING")
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestRepeatedFollowIsNoop(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	auth := newAuth(s)
	social := NewSocialUseCase(s)

	a := signup(t, auth, "a@x.com", "A")
	b := signup(t, auth, "b@x.com", "B")

	require.NoError(t, social.FollowUser(ctx, a.ID))
	version := s.Current().Version
	require.NoError(t, social.FollowUser(ctx, a.ID))

	doc := s.Current()
	assert.Equal(t, version, doc.Version)
	assert.Len(t, doc.FindUser(b.ID).Following, 1)
	assert.Len(t, doc.FindUser(a.ID).Followers, 1)
}

func TestUnfollowWithoutFollowingIsNoop(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	auth := newAuth(s)
	social := NewSocialUseCase(s)

	a := signup(t, auth, "a@x.com", "A")
	signup(t, auth, "b@x.com", "B")

	version := s.Current().Version
	require.NoError(t, social.UnfollowUser(ctx, a.ID))
	assert.Equal(t, version, s.Current().Version)
}
