package get_timeslots

import (
	"net/http"
	"time"

	"github.com/bmbestetica/BMB-BookingService/internal/api/handlers"
	"github.com/bmbestetica/BMB-BookingService/internal/domain"
	getTimeslots "github.com/bmbestetica/BMB-BookingService/internal/usecase/get_timeslots"
)

const (
	msgMissingDate = "Parâmetro date é obrigatório"
	msgInvalidDate = "Data inválida, formato esperado YYYY-MM-DD"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/timeslots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		h.logger.Warn("GET /timeslots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateParam)
	if err != nil {
		h.logger.Warn("GET /timeslots - Invalid date %q: %v", dateParam, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getTimeslots.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /timeslots - Failed to get slots for %s: %v", dateParam, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
