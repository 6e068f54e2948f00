package users

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/netops/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	a, err := r.Create(ctx, &User{UserID: "a", Email: "a@x.io"})
	require.NoError(t, err)
	b, err := r.Create(ctx, &User{UserID: "b", Email: "b@x.io"})
	require.NoError(t, err)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	_, err := r.Create(ctx, &User{UserID: "a", Email: "Ann@x.io"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &User{UserID: "b", Email: " ann@X.io "})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestMemoryRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	_, err := r.Create(ctx, &User{UserID: "a", Email: "a@x.io", FullName: "Ann"})
	require.NoError(t, err)

	u, err := r.GetByEmail(ctx, "A@X.IO")
	require.NoError(t, err)
	assert.Equal(t, "a", u.UserID)

	u, err = r.GetByUserID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.FullName)

	_, err = r.GetByEmail(ctx, "nobody@x.io")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = r.GetByUserID(ctx, "nobody")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	_, err := r.Create(ctx, &User{UserID: "a", Email: "a@x.io", FullName: "Ann"})
	require.NoError(t, err)

	u, err := r.GetByUserID(ctx, "a")
	require.NoError(t, err)
	u.FullName = "changed"

	again, err := r.GetByUserID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Ann", again.FullName)
}

func TestMemoryRepository_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	_, err := r.Create(ctx, &User{UserID: "a", Email: "a@x.io"})
	require.NoError(t, err)

	country := "LV"
	got, err := r.UpdateProfile(ctx, "a", ProfileUpdate{Country: &country})
	require.NoError(t, err)
	require.NotNil(t, got.Country)
	assert.Equal(t, "LV", *got.Country)

	// the stored value does not alias the caller's pointer
	country = "EE"
	stored, err := r.GetByUserID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "LV", *stored.Country)

	_, err = r.UpdateProfile(ctx, "missing", ProfileUpdate{})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_ConcurrentUpdatesKeepEveryField(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	_, err := r.Create(ctx, &User{UserID: "a", Email: "a@x.io"})
	require.NoError(t, err)

	phone, job, employer, country := "123", "pilot", "airline", "LV"
	lat, lon := 56.95, 24.1
	updates := []ProfileUpdate{
		{PhoneNumber: &phone}, {Occupation: &job}, {Employer: &employer},
		{Country: &country}, {Latitude: &lat}, {Longitude: &lon},
	}

	for round := 0; round < 20; round++ {
		var wg sync.WaitGroup
		for _, u := range updates {
			wg.Add(1)
			go func(u ProfileUpdate) {
				defer wg.Done()
				_, err := r.UpdateProfile(ctx, "a", u)
				assert.NoError(t, err)
			}(u)
		}
		wg.Wait()
	}

	got, err := r.GetByUserID(ctx, "a")
	require.NoError(t, err)
	for name, v := range map[string]any{
		"phone": got.PhoneNumber, "occupation": got.Occupation, "employer": got.Employer,
		"country": got.Country, "latitude": got.Latitude, "longitude": got.Longitude,
	} {
		assert.NotNil(t, v, name)
	}
}
