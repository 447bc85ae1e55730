package postgres

import (
	"strings"
	"testing"

	"stray-rescue/internal/domain/access"
	"stray-rescue/internal/domain/dogs"
	"stray-rescue/internal/domain/events"

	"github.com/stretchr/testify/assert"
)

func TestListEventsQuery_PrivacyAndTypeFilters(t *testing.T) {
	q, args := listEventsQuery("dog-1", events.ListFilter{
		PrivacyLevels: []access.PrivacyLevel{access.PrivacyPublic, access.PrivacyPrivate},
		Types:         []events.EventType{events.EventTypeMedical},
	})

	assert.Contains(t, q, "WHERE dog_id = $1 AND privacy_level IN ($2,$3) AND event_type IN ($4)")
	assert.True(t, strings.HasSuffix(q, " ORDER BY created_at DESC, seq ASC"))
	assert.Equal(t, []any{"dog-1", "public", "private", "medical"}, args)
}

func TestListEventsQuery_TypeOnlyStartsAtTwo(t *testing.T) {
	q, args := listEventsQuery("dog-1", events.ListFilter{
		Types: []events.EventType{events.EventTypeRescue, events.EventTypeSighting},
	})

	assert.Contains(t, q, "WHERE dog_id = $1 AND event_type IN ($2,$3)")
	assert.NotContains(t, q, "privacy_level IN")
	assert.Equal(t, []any{"dog-1", "rescue", "sighting"}, args)
}

func TestListEventsQuery_PublicOnly(t *testing.T) {
	q, args := listEventsQuery("dog-1", events.ListFilter{
		PrivacyLevels: []access.PrivacyLevel{access.PrivacyPublic},
	})

	assert.Contains(t, q, "AND privacy_level IN ($2) ORDER BY")
	assert.NotContains(t, q, "event_type IN")
	assert.Equal(t, []any{"dog-1", "public"}, args)
}

func TestListDogsQuery(t *testing.T) {
	q, args := listDogsQuery("loc-1", dogs.ListFilter{})
	assert.True(t, strings.HasSuffix(q, "FROM dogs WHERE location_id = $1 ORDER BY created_at DESC"))
	assert.Equal(t, []any{"loc-1"}, args)

	q, args = listDogsQuery("loc-1", dogs.ListFilter{
		Statuses: []access.DogStatus{access.DogStatusAvailable, access.DogStatusInjured},
	})
	assert.Contains(t, q, "WHERE location_id = $1 AND status IN ($2,$3) ORDER BY created_at DESC")
	assert.Equal(t, []any{"loc-1", "available", "injured"}, args)
}
