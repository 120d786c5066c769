package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCapsuleQR generates a QR code image that encodes a capsule reference
	GenerateCapsuleQR(capsuleID uuid.UUID) ([]byte, error)

	// ParseCapsuleQR parses QR code data and returns the capsule ID
	ParseCapsuleQR(qrData string) (uuid.UUID, error)
}
