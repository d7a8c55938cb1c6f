package services

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestExpiryWindowBounds(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 4, 0, 0, time.UTC)

	from, to := expiryWindow(now)

	assert.Equal(t, "2026-08-29", from)
	assert.Equal(t, "2026-09-03", to)
}

func TestExpiryWindowCrossesYearBoundary(t *testing.T) {
	now := time.Date(2026, 12, 30, 0, 0, 0, 0, time.UTC)

	from, to := expiryWindow(now)

	assert.Equal(t, "2026-12-30", from)
	assert.Equal(t, "2027-01-04", to)
}

func TestNearestExpiringFilter(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	filter := nearestExpiringFilter(now)

	require.Contains(t, filter, "expiryDate")
	rng, ok := filter["expiryDate"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "2026-08-29", rng["$gte"])
	assert.Equal(t, "2026-09-03", rng["$lte"])
}

func TestExpiredFilter(t *testing.T) {
	now := time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC)

	filter := expiredFilter(now)

	rng, ok := filter["expiryDate"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "2026-08-29", rng["$lt"])
	assert.NotContains(t, rng, "$gte", "expired is an open-ended lower range")
}

// The range filters compare expiryDate strings, so the date layout must
// order lexicographically the same as chronologically.
func TestDateLayoutOrdersChronologically(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}

	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format(dateLayout)
	}

	assert.True(t, sort.StringsAreSorted(formatted))
}

func TestOwnerExpiringFilterScopesToOwner(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	filter := ownerExpiringFilter(now, "alice@example.com")

	assert.Equal(t, "alice@example.com", filter["foodCreatorEmail"])
	rng, ok := filter["expiryDate"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "2026-08-29", rng["$gte"])
	assert.Equal(t, "2026-09-03", rng["$lte"])
}

func TestNearestExpiringOptsSortAndCap(t *testing.T) {
	opts := nearestExpiringOpts()

	assert.Equal(t, bson.D{{Key: "expiryDate", Value: 1}}, opts.Sort)
	require.NotNil(t, opts.Limit)
	assert.EqualValues(t, 6, *opts.Limit)
}

func TestOwnerExpiringOptsUncapped(t *testing.T) {
	opts := ownerExpiringOpts()

	assert.Equal(t, bson.D{{Key: "expiryDate", Value: 1}}, opts.Sort)
	assert.Nil(t, opts.Limit, "the owner digest is not capped")
}

func TestExpiredOptsDescendingUnbounded(t *testing.T) {
	opts := expiredOpts()

	assert.Equal(t, bson.D{{Key: "expiryDate", Value: -1}}, opts.Sort)
	assert.Nil(t, opts.Limit)
}
