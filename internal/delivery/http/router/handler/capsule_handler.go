package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"capsule/internal/delivery/http/response"
	"capsule/internal/domain/entity"
	domainerrors "capsule/internal/domain/errors"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CapsuleHandlerParams holds dependencies for CapsuleHandler, injected by Fx.
type CapsuleHandlerParams struct {
	fx.In

	CapsuleUC usecase.CapsuleUsecase
	Logger    *slog.Logger
}

// CapsuleHandler holds dependencies for capsule-related handlers
type CapsuleHandler struct {
	capsuleUC usecase.CapsuleUsecase
	logger    *slog.Logger
}

// NewCapsuleHandler is the constructor for CapsuleHandler
func NewCapsuleHandler(params CapsuleHandlerParams) *CapsuleHandler {
	return &CapsuleHandler{
		capsuleUC: params.CapsuleUC,
		logger:    params.Logger,
	}
}

// MediaRequest represents a single media attachment in a create request
type MediaRequest struct {
	StoragePath string `json:"storage_path" validate:"required"`
	MediaType   string `json:"media_type" validate:"required"`
}

// CreateCapsuleRequest represents the request body for sealing a capsule
type CreateCapsuleRequest struct {
	Message   string         `json:"message"`
	Media     []MediaRequest `json:"media" validate:"dive"`
	ReleaseAt time.Time      `json:"release_at" validate:"required"`
	Latitude  *float64       `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64       `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Kind      string         `json:"kind" validate:"omitempty,oneof=digital physical"`
}

// ResolveCapsuleQRRequest carries scanned QR code data for resolution
type ResolveCapsuleQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// PositionRequest represents the requester's position for an open attempt
type PositionRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// CapsuleSummary is the sealed view of a capsule. Contents stay hidden
// until the capsule is opened.
type CapsuleSummary struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	ReleaseAt   time.Time `json:"release_at"`
	HasLocation bool      `json:"has_location"`
	MediaCount  int       `json:"media_count"`
	Notified    bool      `json:"notified"`
	CreatedAt   time.Time `json:"created_at"`
}

// CheckResponse reports the release-gate decision for a capsule
type CheckResponse struct {
	CanOpen bool       `json:"can_open"`
	Reason  string     `json:"reason,omitempty"`
	OpensAt *time.Time `json:"opens_at,omitempty"`
}

// OpenResponse carries the revealed contents of an opened capsule
type OpenResponse struct {
	ID        uuid.UUID          `json:"id"`
	Message   string             `json:"message,omitempty"`
	Media     []usecase.MediaURL `json:"media"`
	Kind      string             `json:"kind"`
	ReleaseAt time.Time          `json:"release_at"`
	CreatedAt time.Time          `json:"created_at"`
}

// CreateCapsule handles sealing a new capsule
func (h *CapsuleHandler) CreateCapsule(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req CreateCapsuleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid capsule input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	kind := entity.CapsuleKind(req.Kind)
	if req.Kind == "" {
		kind = entity.CapsuleKindDigital
	}

	input := &usecase.CreateCapsuleInput{
		Message:   req.Message,
		ReleaseAt: req.ReleaseAt,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Kind:      kind,
	}
	for _, m := range req.Media {
		input.Media = append(input.Media, usecase.MediaInput{
			StoragePath: m.StoragePath,
			MediaType:   m.MediaType,
		})
	}

	capsule, err := h.capsuleUC.CreateCapsule(c.Request().Context(), userID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCapsuleSummary(capsule), "Capsule sealed successfully")
}

// ListCapsules handles retrieving the caller's capsules
func (h *CapsuleHandler) ListCapsules(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	capsules, err := h.capsuleUC.ListCapsules(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return h.handleAppError(c, err)
	}

	summaries := make([]*CapsuleSummary, 0, len(capsules))
	for _, capsule := range capsules {
		summaries = append(summaries, toCapsuleSummary(capsule))
	}

	return response.Success(c, http.StatusOK, summaries, "Capsules retrieved successfully")
}

// GetCapsule handles retrieving a single sealed capsule view
func (h *CapsuleHandler) GetCapsule(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	capsuleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid capsule ID")
	}

	capsule, err := h.capsuleUC.GetCapsule(c.Request().Context(), userID, capsuleID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCapsuleSummary(capsule), "Capsule retrieved successfully")
}

// CheckCapsule handles release-gate checks without opening the capsule
func (h *CapsuleHandler) CheckCapsule(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	capsuleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid capsule ID")
	}

	position, err := h.parsePositionQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_POSITION", "Invalid latitude or longitude")
	}

	result, err := h.capsuleUC.CheckCapsule(c.Request().Context(), userID, capsuleID, position)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &CheckResponse{
		CanOpen: result.Allowed,
		Reason:  result.Reason,
		OpensAt: result.OpensAt,
	}, "Capsule checked successfully")
}

// OpenCapsule handles opening a capsule and revealing its contents
func (h *CapsuleHandler) OpenCapsule(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	capsuleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid capsule ID")
	}

	var req PositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	var position *entity.GeoPoint
	if req.Latitude != nil && req.Longitude != nil {
		position = &entity.GeoPoint{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	result, err := h.capsuleUC.OpenCapsule(c.Request().Context(), userID, capsuleID, position)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &OpenResponse{
		ID:        result.Capsule.ID,
		Message:   result.Capsule.Message,
		Media:     result.Media,
		Kind:      result.Capsule.Kind.String(),
		ReleaseAt: result.Capsule.ReleaseAt,
		CreatedAt: result.Capsule.CreatedAt,
	}, "Capsule opened successfully")
}

// ResolveCapsuleQR handles looking up a capsule from scanned QR code data
func (h *CapsuleHandler) ResolveCapsuleQR(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req ResolveCapsuleQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR code input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	capsule, err := h.capsuleUC.ResolveCapsuleQR(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCapsuleSummary(capsule), "Capsule resolved successfully")
}

// GetCapsuleQR handles rendering a capsule reference as a QR code image
func (h *CapsuleHandler) GetCapsuleQR(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	capsuleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid capsule ID")
	}

	pngBytes, err := h.capsuleUC.GenerateCapsuleQR(c.Request().Context(), userID, capsuleID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", pngBytes)
}

// parsePositionQuery extracts an optional lat/lng pair from query parameters
func (h *CapsuleHandler) parsePositionQuery(c echo.Context) (*entity.GeoPoint, error) {
	latStr := c.QueryParam("lat")
	lngStr := c.QueryParam("lng")
	if latStr == "" && lngStr == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid latitude")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid longitude")
	}

	return &entity.GeoPoint{Latitude: lat, Longitude: lng}, nil
}

// getUserID extracts the authenticated user ID from the context
func (h *CapsuleHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *CapsuleHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// toCapsuleSummary converts a capsule entity into its sealed view
func toCapsuleSummary(capsule *entity.Capsule) *CapsuleSummary {
	return &CapsuleSummary{
		ID:          capsule.ID,
		Kind:        capsule.Kind.String(),
		ReleaseAt:   capsule.ReleaseAt,
		HasLocation: capsule.Location != nil,
		MediaCount:  len(capsule.Media),
		Notified:    capsule.Notified,
		CreatedAt:   capsule.CreatedAt,
	}
}
