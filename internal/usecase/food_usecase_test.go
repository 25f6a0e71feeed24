package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sueahahn/pkg/errors"
)

func TestAddFoodSnapshotsSellerAndZeroesRating(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	auth := newAuth(s)
	food := NewFoodUseCase(s, newValidate())

	seller := signup(t, auth, "s@x.com", "Sue")
	item, err := food.AddFood(ctx, AddFoodInput{Name: "Pad Thai", Price: 50, Stock: 2})
	require.NoError(t, err)

	assert.Equal(t, seller.ID, item.SellerID)
	assert.Equal(t, "Sue", item.SellerName)
	assert.Zero(t, item.Rating)
	assert.Zero(t, item.ReviewCount)

	// A later rename must not propagate into the snapshot.
	_, err = auth.UpdateProfile(ctx, UpdateProfileInput{DisplayName: "Susan"})
	require.NoError(t, err)
	assert.Equal(t, "Sue", s.Current().FoodItems[0].SellerName)
}

func TestAddFoodRequiresSession(t *testing.T) {
	s := newTestStore(t)
	food := NewFoodUseCase(s, newValidate())

	_, err := food.AddFood(context.Background(), AddFoodInput{Name: "Pad Thai"})
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))
}

func TestAddFoodRejectsNegativePrice(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	auth := newAuth(s)
	food := NewFoodUseCase(s, newValidate())
	signup(t, auth, "s@x.com", "Sue")

	_, err := food.AddFood(ctx, AddFoodInput{Name: "Pad Thai", Price: -1})
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
	assert.Empty(t, s.Current().FoodItems)
}

func TestUpdateFoodIsSellerOnly(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	auth := newAuth(s)
	food := NewFoodUseCase(s, newValidate())

	signup(t, auth, "s@x.com", "Sue")
	item, err := food.AddFood(ctx, AddFoodInput{Name: "Pad Thai", Price: 50, Stock: 2})
	require.NoError(t, err)

	signup(t, auth, "b@x.com", "Bee")
	hidden := true
	_, err = food.UpdateFood(ctx, item.ID, UpdateFoodInput{IsHidden: &hidden})
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))

	loginAs(t, auth, "s@x.com")
	updated, err := food.UpdateFood(ctx, item.ID, UpdateFoodInput{IsHidden: &hidden})
	require.NoError(t, err)
	assert.True(t, updated.IsHidden)
}

func TestUpdateFoodZeroValuesViaPointers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	auth := newAuth(s)
	food := NewFoodUseCase(s, newValidate())
	signup(t, auth, "s@x.com", "Sue")

	item, err := food.AddFood(ctx, AddFoodInput{Name: "Pad Thai", Price: 50, Stock: 2})
	require.NoError(t, err)

	price, stock := 0.0, 0
	updated, err := food.UpdateFood(ctx, item.ID, UpdateFoodInput{Price: &price, Stock: &stock})
	require.NoError(t, err)
	assert.Zero(t, updated.Price)
	assert.Zero(t, updated.Stock)
	assert.Equal(t, "Pad Thai", updated.Name)
}

func TestDeleteFoodIsSellerOnly(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	auth := newAuth(s)
	food := NewFoodUseCase(s, newValidate())

	signup(t, auth, "s@x.com", "Sue")
	item, err := food.AddFood(ctx, AddFoodInput{Name: "Pad Thai", Price: 50, Stock: 2})
	require.NoError(t, err)

	signup(t, auth, "b@x.com", "Bee")
	err = food.DeleteFood(ctx, item.ID)
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))
	assert.Len(t, s.Current().FoodItems, 1)

	loginAs(t, auth, "s@x.com")
	require.NoError(t, food.DeleteFood(ctx, item.ID))
	assert.Empty(t, s.Current().FoodItems)
}
