package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateCapsuleQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	capsuleID := uuid.New()

	pngBytes, err := service.GenerateCapsuleQR(capsuleID)
	require.NoError(t, err)
	assert.NotEmpty(t, pngBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
}

func TestQRCodeService_ParseCapsuleQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	capsuleID := uuid.New()

	data := QRCodeData{
		CapsuleID: capsuleID.String(),
		Type:      "capsule",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseCapsuleQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, capsuleID, parsedID)
}

func TestQRCodeService_ParseCapsuleQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	data := QRCodeData{
		CapsuleID: uuid.New().String(),
		Type:      "subscription",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseCapsuleQR(string(jsonData))
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseCapsuleQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	parsedID, err := service.ParseCapsuleQR("not-json")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestQRCodeService_ParseCapsuleQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	data := QRCodeData{
		CapsuleID: "not-a-uuid",
		Type:      "capsule",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseCapsuleQR(string(jsonData))
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestQRCodeService_CapsulePayload_BaseURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://capsule.example.com/")
	capsuleID := uuid.New()

	payload, err := service.(*qrcodeService).capsulePayload(capsuleID)
	require.NoError(t, err)

	var data QRCodeData
	require.NoError(t, json.Unmarshal([]byte(payload), &data))
	assert.Equal(t, "https://capsule.example.com/capsules/"+capsuleID.String(), data.URL)

	// The link is advisory; parsing still resolves through the capsule ID.
	parsedID, err := service.ParseCapsuleQR(payload)
	require.NoError(t, err)
	assert.Equal(t, capsuleID, parsedID)
}

func TestQRCodeService_CapsulePayload_NoBaseURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	payload, err := service.(*qrcodeService).capsulePayload(uuid.New())
	require.NoError(t, err)
	assert.NotContains(t, payload, "url")
}

func TestQRCodeService_ErrorCorrectionLevels(t *testing.T) {
	capsuleID := uuid.New()

	for _, level := range []string{"L", "M", "Q", "H", "unknown"} {
		service := NewQRCodeService(256, level, "")
		pngBytes, err := service.GenerateCapsuleQR(capsuleID)
		require.NoError(t, err, "level %s", level)
		assert.NotEmpty(t, pngBytes, "level %s", level)
	}
}
