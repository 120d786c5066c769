package model

import (
	"time"

	"github.com/google/uuid"
)

// CapsuleModel is the GORM-specific struct for the 'capsules' table.
// It represents a sealed time capsule awaiting release.
type CapsuleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Message   string    `gorm:"type:text"`
	Kind      string    `gorm:"type:text;not null;default:'digital';index:idx_capsules_due,priority:1"`
	ReleaseAt time.Time `gorm:"type:timestamptz;not null;index:idx_capsules_due,priority:2"`
	Latitude  *float64  `gorm:"type:decimal(10,8)"`
	Longitude *float64  `gorm:"type:decimal(11,8)"`
	Notified  bool      `gorm:"not null;default:false;index:idx_capsules_due,priority:3"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Media []CapsuleMediaModel `gorm:"foreignKey:CapsuleID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CapsuleModel) TableName() string {
	return "capsules"
}

// CapsuleMediaModel is the GORM-specific struct for the 'capsule_media' table.
// It represents a single media attachment of a capsule.
type CapsuleMediaModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CapsuleID   uuid.UUID `gorm:"type:uuid;not null;index"`
	StoragePath string    `gorm:"type:text;not null"`
	MediaType   string    `gorm:"type:text;not null"`
	Position    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CapsuleMediaModel) TableName() string {
	return "capsule_media"
}
