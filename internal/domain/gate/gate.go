// Package gate implements the capsule release gate: the pure decision of
// whether a capsule may be opened at a given instant and location.
package gate

import (
	"time"

	"capsule/internal/domain/entity"
	"capsule/internal/domain/geo"
)

// ProximityRadiusKm is the geofence radius: a requester must be within
// 100 m of a located capsule to open it.
const ProximityRadiusKm = 0.1

// Stable reason strings returned to clients when a capsule cannot be opened.
const (
	ReasonNotYetReleased   = "not yet released"
	ReasonLocationRequired = "location required"
	ReasonWrongLocation    = "wrong location"
)

// Decision is the outcome of a gate check.
type Decision struct {
	// Allowed reports whether the capsule may be opened now.
	Allowed bool
	// Reason names the first failing rule when Allowed is false.
	Reason string
	// OpensAt carries the release instant when the temporal gate rejects,
	// so callers can render availability without re-reading the capsule.
	OpensAt *time.Time
}

// CanOpen evaluates the release gate for a capsule. Rules are checked in
// order and the first failure short-circuits: temporal gate first, then the
// geofence gate for located capsules. Both instants are compared in UTC;
// the store boundary guarantees ReleaseAt is already a UTC instant.
//
// CanOpen is pure and safe for concurrent use.
func CanOpen(capsule *entity.Capsule, requester *entity.GeoPoint, now time.Time) Decision {
	releaseAt := capsule.ReleaseAt.UTC()
	if now.UTC().Before(releaseAt) {
		return Decision{Reason: ReasonNotYetReleased, OpensAt: &releaseAt}
	}

	if capsule.Location != nil {
		if requester == nil {
			return Decision{Reason: ReasonLocationRequired}
		}
		if geo.DistanceKm(capsule.Location.Point(), requester.Point()) > ProximityRadiusKm {
			return Decision{Reason: ReasonWrongLocation}
		}
	}

	return Decision{Allowed: true}
}
