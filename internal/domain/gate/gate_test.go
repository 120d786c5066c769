package gate

import (
	"testing"
	"time"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCapsule(releaseAt time.Time, location *entity.GeoPoint) *entity.Capsule {
	return &entity.Capsule{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Message:   "hello from the past",
		ReleaseAt: releaseAt,
		Location:  location,
		Kind:      entity.CapsuleKindDigital,
	}
}

func TestCanOpen_TemporalGate(t *testing.T) {
	releaseAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	saoPaulo := &entity.GeoPoint{Latitude: -23.5505, Longitude: -46.6333}

	tests := []struct {
		name      string
		now       time.Time
		location  *entity.GeoPoint
		requester *entity.GeoPoint
		want      bool
	}{
		{
			name: "one second early",
			now:  time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			want: false,
		},
		{
			name: "one second late",
			now:  time.Date(2025, 1, 1, 0, 0, 1, 0, time.UTC),
			want: true,
		},
		{
			name: "exactly at release",
			now:  releaseAt,
			want: true,
		},
		{
			// The temporal gate dominates: location never rescues an
			// unreleased capsule.
			name:      "early with matching location",
			now:       time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			location:  saoPaulo,
			requester: saoPaulo,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capsule := testCapsule(releaseAt, tt.location)
			decision := CanOpen(capsule, tt.requester, tt.now)

			assert.Equal(t, tt.want, decision.Allowed)
			if !tt.want {
				assert.Equal(t, ReasonNotYetReleased, decision.Reason)
				require.NotNil(t, decision.OpensAt)
				assert.Equal(t, releaseAt, *decision.OpensAt)
			}
		})
	}
}

func TestCanOpen_TemporalGateNormalizesZones(t *testing.T) {
	// Same instant expressed in a non-UTC zone must compare equal.
	zone := time.FixedZone("UTC+3", 3*60*60)
	releaseAt := time.Date(2025, 1, 1, 3, 0, 0, 0, zone) // 2025-01-01T00:00:00Z

	capsule := testCapsule(releaseAt, nil)
	decision := CanOpen(capsule, nil, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, decision.Allowed)
}

func TestCanOpen_GeofenceGate(t *testing.T) {
	releaseAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	saoPaulo := &entity.GeoPoint{Latitude: -23.5505, Longitude: -46.6333}

	tests := []struct {
		name       string
		location   *entity.GeoPoint
		requester  *entity.GeoPoint
		want       bool
		wantReason string
	}{
		{
			name: "no stored location opens anywhere",
			want: true,
		},
		{
			name:       "stored location requires requester location",
			location:   saoPaulo,
			wantReason: ReasonLocationRequired,
		},
		{
			name:      "same coordinates",
			location:  saoPaulo,
			requester: &entity.GeoPoint{Latitude: -23.5505, Longitude: -46.6333},
			want:      true,
		},
		{
			name:       "more than 100m away",
			location:   saoPaulo,
			requester:  &entity.GeoPoint{Latitude: -23.6000, Longitude: -46.6333},
			wantReason: ReasonWrongLocation,
		},
		{
			// ~50 m north, still inside the geofence
			name:      "within 100m",
			location:  saoPaulo,
			requester: &entity.GeoPoint{Latitude: -23.55095, Longitude: -46.6333},
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capsule := testCapsule(releaseAt, tt.location)
			decision := CanOpen(capsule, tt.requester, now)

			assert.Equal(t, tt.want, decision.Allowed)
			assert.Equal(t, tt.wantReason, decision.Reason)
			assert.Nil(t, decision.OpensAt)
		})
	}
}
