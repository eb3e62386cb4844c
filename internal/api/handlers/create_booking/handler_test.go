package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/bmbestetica/BMB-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"service_id": "lavagem-simples",
	"customer_name": "João Silva",
	"customer_phone": "+5521999999999",
	"customer_email": "joao@example.com",
	"vehicle_model": "Fiat Argo",
	"vehicle_plate": "ABC1D23",
	"date": "2025-06-10",
	"time": "08:00"
}`

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:            "b1",
		ServiceID:     "lavagem-simples",
		ServiceName:   "Lavagem Simples",
		CustomerName:  "João Silva",
		CustomerPhone: "+5521999999999",
		CustomerEmail: "joao@example.com",
		VehicleModel:  "Fiat Argo",
		VehiclePlate:  "ABC1D23",
		Date:          time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Time:          "08:00",
		Status:        "pending",
		CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, "2025-06-10", resp.Date)
	assert.Equal(t, "08:00", resp.Time)
	assert.Equal(t, "pending", resp.Status)

	require.NotNil(t, uc.got)
	assert.Equal(t, "lavagem-simples", uc.got.ServiceID)
}

func TestHandle_ServiceNotFound(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrServiceNotFound}

	rec := doRequest(t, uc, validBody)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Serviço não encontrado")
}

func TestHandle_SlotNotAvailable(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrSlotNotAvailable}

	rec := doRequest(t, uc, validBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Horário não disponível")
}

func TestHandle_InvalidDate(t *testing.T) {
	body := strings.Replace(validBody, "2025-06-10", "10/06/2025", 1)

	rec := doRequest(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("boom")}

	rec := doRequest(t, uc, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Erro interno do servidor")
}
