// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Capsule represents a time capsule: a message and/or media set locked until
// a release instant, optionally bound to a physical location.
type Capsule struct {
	ID      uuid.UUID `json:"id"`       // The unique identifier for the capsule, assigned at creation.
	OwnerID uuid.UUID `json:"owner_id"` // The ID of the user who created this capsule.
	Message string    `json:"message"`  // Optional text content.

	// Media holds the ordered media references attached to this capsule.
	Media []MediaRef `json:"media,omitempty"`

	// ReleaseAt is the earliest instant this capsule may be opened.
	// Always a UTC instant; normalized at the store boundary, never at
	// comparison time.
	ReleaseAt time.Time `json:"release_at"`

	// Location, when present, additionally requires physical proximity
	// to open the capsule.
	Location *GeoPoint `json:"location,omitempty"`

	Kind CapsuleKind `json:"kind"` // digital or physical.

	// Notified is set true exactly once, only after a confirmed broker
	// publish of the expiry event. Only physical capsules participate.
	Notified bool `json:"notified"`

	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// MediaRef represents a single media attachment stored in the external blob store.
type MediaRef struct {
	ID          uuid.UUID `json:"id"`           // The unique identifier for the media reference.
	CapsuleID   uuid.UUID `json:"capsule_id"`   // The ID of the capsule this media belongs to.
	StoragePath string    `json:"storage_path"` // Object key within the blob store.
	MediaType   string    `json:"media_type"`   // Media category (image, video, audio).
	Position    int       `json:"position"`     // Zero-based order within the capsule.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when this record was created.
}

// GeoPoint is a latitude/longitude pair. Latitude is in [-90, 90],
// longitude in [-180, 180]; a capsule has either both or neither.
type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Point converts the GeoPoint to an orb.Point (lon/lat order).
func (p GeoPoint) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// HasMessage reports whether the capsule carries text content.
func (c *Capsule) HasMessage() bool {
	return c.Message != ""
}
