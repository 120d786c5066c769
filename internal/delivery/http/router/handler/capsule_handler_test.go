package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"capsule/internal/delivery/http/validator"
	"capsule/internal/domain/entity"
	domainerrors "capsule/internal/domain/errors"
	mockUsecase "capsule/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCapsuleHandler(t *testing.T) (*CapsuleHandler, *mockUsecase.MockCapsuleUsecase, *echo.Echo) {
	t.Helper()

	capsuleUC := mockUsecase.NewMockCapsuleUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := &CapsuleHandler{
		capsuleUC: capsuleUC,
		logger:    logger,
	}

	e := echo.New()
	e.Validator = validator.New()

	return handler, capsuleUC, e
}

func newAuthedContext(e *echo.Echo, userID uuid.UUID, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	return c, rec
}

func sealedCapsule(ownerID uuid.UUID) *entity.Capsule {
	return &entity.Capsule{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Message:   "see you in a year",
		Kind:      entity.CapsuleKindDigital,
		ReleaseAt: time.Now().UTC().Add(24 * time.Hour),
		CreatedAt: time.Now().UTC(),
	}
}

func TestCapsuleHandler_GetCapsule_HidesContents(t *testing.T) {
	handler, capsuleUC, e := createTestCapsuleHandler(t)

	userID := uuid.New()
	capsule := sealedCapsule(userID)

	capsuleUC.EXPECT().GetCapsule(mock.Anything, userID, capsule.ID).Return(capsule, nil)

	req := httptest.NewRequest(http.MethodGet, "/capsules/"+capsule.ID.String(), nil)
	c, rec := newAuthedContext(e, userID, req)
	c.SetParamNames("id")
	c.SetParamValues(capsule.ID.String())

	require.NoError(t, handler.GetCapsule(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), capsule.ID.String())

	// The sealed view must not leak the message.
	assert.NotContains(t, rec.Body.String(), "see you in a year")
}

func TestCapsuleHandler_GetCapsule_NotFound(t *testing.T) {
	handler, capsuleUC, e := createTestCapsuleHandler(t)

	userID := uuid.New()
	capsuleID := uuid.New()

	capsuleUC.EXPECT().GetCapsule(mock.Anything, userID, capsuleID).Return(nil, domainerrors.ErrCapsuleNotFound)

	req := httptest.NewRequest(http.MethodGet, "/capsules/"+capsuleID.String(), nil)
	c, rec := newAuthedContext(e, userID, req)
	c.SetParamNames("id")
	c.SetParamValues(capsuleID.String())

	require.NoError(t, handler.GetCapsule(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CAPSULE_NOT_FOUND")
}

func TestCapsuleHandler_CreateCapsule_MissingReleaseAt(t *testing.T) {
	handler, _, e := createTestCapsuleHandler(t)

	body := `{"message": "no release time"}`
	req := httptest.NewRequest(http.MethodPost, "/capsules", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newAuthedContext(e, uuid.New(), req)

	require.NoError(t, handler.CreateCapsule(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCapsuleHandler_ResolveCapsuleQR_Success(t *testing.T) {
	handler, capsuleUC, e := createTestCapsuleHandler(t)

	userID := uuid.New()
	capsule := sealedCapsule(userID)

	capsuleUC.EXPECT().ResolveCapsuleQR(mock.Anything, userID, "scanned-data").Return(capsule, nil)

	body := `{"qr_data": "scanned-data"}`
	req := httptest.NewRequest(http.MethodPost, "/capsules/resolve", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newAuthedContext(e, userID, req)

	require.NoError(t, handler.ResolveCapsuleQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), capsule.ID.String())
}

func TestCapsuleHandler_MissingUserID(t *testing.T) {
	handler, _, e := createTestCapsuleHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/capsules", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListCapsules(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}
