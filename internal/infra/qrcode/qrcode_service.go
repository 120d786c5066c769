package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"capsule/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	CapsuleID string `json:"capsule_id"`
	Type      string `json:"type"`
	// URL is a browser-openable link to the capsule, present when a base
	// URL is configured. Parsing relies on CapsuleID, not the URL.
	URL string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimSuffix(baseURL, "/"),
	}
}

// capsulePayload builds the JSON payload encoded into a capsule QR code
func (s *qrcodeService) capsulePayload(capsuleID uuid.UUID) (string, error) {
	data := QRCodeData{
		CapsuleID: capsuleID.String(),
		Type:      "capsule",
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/capsules/%s", s.baseURL, capsuleID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	return string(jsonData), nil
}

// GenerateCapsuleQR generates a QR code image that encodes a capsule reference
func (s *qrcodeService) GenerateCapsuleQR(capsuleID uuid.UUID) ([]byte, error) {
	payload, err := s.capsulePayload(capsuleID)
	if err != nil {
		return nil, err
	}

	// Generate QR code
	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCapsuleQR parses QR code data and returns the capsule ID
func (s *qrcodeService) ParseCapsuleQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "capsule" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	// Parse UUID
	capsuleID, err := uuid.Parse(data.CapsuleID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse capsule ID: %w", err)
	}

	return capsuleID, nil
}
