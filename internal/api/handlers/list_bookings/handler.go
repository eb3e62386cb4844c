package list_bookings

import (
	"errors"
	"net/http"

	"github.com/bmbestetica/BMB-BookingService/internal/api/handlers"
	"github.com/bmbestetica/BMB-BookingService/internal/service/bookings"
	"github.com/bmbestetica/BMB-BookingService/internal/service/bookings/models"
	"github.com/bmbestetica/BMB-BookingService/pkg/ptr"
)

const msgInvalidStatus = "Status inválido"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
