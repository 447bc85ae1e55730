package memory

import (
	"context"
	"testing"
	"time"

	"stray-rescue/internal/domain/access"
	"stray-rescue/internal/domain/dogs"
	"stray-rescue/internal/domain/events"
	"stray-rescue/internal/domain/locations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationRepo_NaturalKeyConflict(t *testing.T) {
	ctx := context.Background()
	r := NewLocationRepo()

	require.NoError(t, r.Create(ctx, locations.Location{ID: "l1", Name: "Koh Phangan", Country: "Thailand"}))
	err := r.Create(ctx, locations.Location{ID: "l2", Name: "koh phangan", Country: "THAILAND"})
	assert.ErrorIs(t, err, locations.ErrConflict)
	assert.Equal(t, 1, r.Count())

	got, err := r.FindByNameCountry(ctx, "Koh Phangan", "Thailand")
	require.NoError(t, err)
	assert.Equal(t, "l1", got.ID)
}

func TestLocationRepo_AnyReturnsFirstInserted(t *testing.T) {
	ctx := context.Background()
	r := NewLocationRepo()

	_, err := r.Any(ctx)
	assert.ErrorIs(t, err, locations.ErrNotFound)

	require.NoError(t, r.Create(ctx, locations.Location{ID: "l1", Name: "Koh Tao", Country: "Thailand"}))
	require.NoError(t, r.Create(ctx, locations.Location{ID: "l2", Name: "Bali", Country: "Indonesia"}))

	got, err := r.Any(ctx)
	require.NoError(t, err)
	assert.Equal(t, "l1", got.ID)
}

func TestDogRepo_ListByLocation_OrderAndFilter(t *testing.T) {
	ctx := context.Background()
	r := NewDogRepo()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, r.Create(ctx, dogs.Dog{ID: "a", LocationID: "l1", Status: access.DogStatusAvailable, CreatedAt: base}))
	require.NoError(t, r.Create(ctx, dogs.Dog{ID: "b", LocationID: "l1", Status: access.DogStatusInjured, CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, r.Create(ctx, dogs.Dog{ID: "c", LocationID: "l2", Status: access.DogStatusAvailable, CreatedAt: base}))

	all, err := r.ListByLocation(ctx, "l1", dogs.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)

	injured, err := r.ListByLocation(ctx, "l1", dogs.ListFilter{Statuses: []access.DogStatus{access.DogStatusInjured}})
	require.NoError(t, err)
	require.Len(t, injured, 1)
	assert.Equal(t, "b", injured[0].ID)
}

func TestDogRepo_TagsAreCopied(t *testing.T) {
	ctx := context.Background()
	r := NewDogRepo()

	tags := []string{"friendly"}
	require.NoError(t, r.Create(ctx, dogs.Dog{ID: "a", Tags: tags}))
	tags[0] = "changed"

	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"friendly"}, got.Tags)
}

func TestEventRepo_ListByDog_PrivacyPredicateAndTies(t *testing.T) {
	ctx := context.Background()
	r := NewEventRepo()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, r.Create(ctx, events.Event{ID: "e1", DogID: "d1", Privacy: access.PrivacyPublic, CreatedAt: at}))
	require.NoError(t, r.Create(ctx, events.Event{ID: "e2", DogID: "d1", Privacy: access.PrivacySensitive, CreatedAt: at}))
	require.NoError(t, r.Create(ctx, events.Event{ID: "e3", DogID: "d1", Privacy: access.PrivacyPublic, CreatedAt: at}))
	require.NoError(t, r.Create(ctx, events.Event{ID: "e4", DogID: "d1", Privacy: access.PrivacyPrivate, CreatedAt: at.Add(time.Minute)}))

	got, err := r.ListByDog(ctx, "d1", events.ListFilter{
		PrivacyLevels: []access.PrivacyLevel{access.PrivacyPublic, access.PrivacyPrivate},
	})
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"e4", "e1", "e3"}, ids)

	_, err = r.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, events.ErrNotFound)
}
