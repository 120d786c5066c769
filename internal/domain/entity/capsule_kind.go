// Package entity contains the core business objects of the project.
package entity

// CapsuleKind represents how a capsule is realized once released.
type CapsuleKind string

const (
	// CapsuleKindDigital indicates the capsule is opened in-app only.
	CapsuleKindDigital CapsuleKind = "digital"
	// CapsuleKindPhysical indicates the capsule is backed by a physical
	// device and participates in the expiry-notification job.
	CapsuleKindPhysical CapsuleKind = "physical"
)

// String returns the string representation of the CapsuleKind.
func (k CapsuleKind) String() string {
	return string(k)
}

// IsValid checks if the CapsuleKind is a valid value.
func (k CapsuleKind) IsValid() bool {
	switch k {
	case CapsuleKindDigital, CapsuleKindPhysical:
		return true
	default:
		return false
	}
}
