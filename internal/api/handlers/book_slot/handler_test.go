package book_slot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calendrio/calendar-backend/internal/domain"
	bookSlot "github.com/calendrio/calendar-backend/internal/usecase/book_slot"
)

type fakeUseCase struct {
	resp   *bookSlot.Response
	err    error
	gotReq *bookSlot.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *bookSlot.Request) (*bookSlot.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/events/booking", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestHandler_Handle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &bookSlot.Response{
		BookingSuccess: true,
		Message:        "Slot Booked Successfully",
		EventID:        "b9a5c6c0-6ef7-4f0e-9301-2f8f1d0a1c11",
	}}

	rec := doRequest(t, uc, `{"slotTime":"2024-06-01T10:00:00Z","duration":30}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	payload := decodeBody(t, rec)
	assert.Equal(t, true, payload["success"])

	data := payload["data"].(map[string]interface{})
	assert.Equal(t, true, data["isBookingSuccess"])
	assert.Equal(t, "", data["errorCode"])
	assert.Equal(t, "Slot Booked Successfully", data["message"])

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, 30, uc.gotReq.DurationMinutes)
	assert.Equal(t, "2024-06-01T10:00:00Z", uc.gotReq.SlotTime.Format("2006-01-02T15:04:05Z07:00"))
}

func TestHandler_Handle_Conflict(t *testing.T) {
	uc := &fakeUseCase{resp: &bookSlot.Response{
		BookingSuccess: false,
		ErrorCode:      string(domain.ConflictAlreadyBooked),
		Message:        "The requested time slot is already booked. Please choose a different time.",
	}}

	rec := doRequest(t, uc, `{"slotTime":"2024-06-01T10:00:00Z","duration":30}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	payload := decodeBody(t, rec)
	assert.Equal(t, false, payload["success"])

	data := payload["data"].(map[string]interface{})
	assert.Equal(t, false, data["isBookingSuccess"])
	assert.Equal(t, "SLOT_ALREADY_BOOKED", data["errorCode"])
	assert.NotEmpty(t, data["message"])
}

func TestHandler_Handle_MalformedBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{"slotTime":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq, "use case must not run on a malformed body")

	payload := decodeBody(t, rec)
	assert.Equal(t, "invalid request body", payload["error"])
}

func TestHandler_Handle_ValidationDetails(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing slotTime", `{"duration":30}`, "slotTime"},
		{"unparseable slotTime", `{"slotTime":"June 1st","duration":30}`, "slotTime"},
		{"zero duration", `{"slotTime":"2024-06-01T10:00:00Z"}`, "duration"},
		{"negative duration", `{"slotTime":"2024-06-01T10:00:00Z","duration":-15}`, "duration"},
		{"duration below minimum", `{"slotTime":"2024-06-01T10:00:00Z","duration":10}`, "duration"},
		{"duration above maximum", `{"slotTime":"2024-06-01T10:00:00Z","duration":495}`, "duration"},
		{"duration off the grid", `{"slotTime":"2024-06-01T10:00:00Z","duration":25}`, "duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}

			rec := doRequest(t, uc, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.gotReq)

			payload := decodeBody(t, rec)
			assert.Equal(t, "Validation failed", payload["error"])

			details := payload["details"].([]interface{})
			require.NotEmpty(t, details)

			fields := make([]string, 0, len(details))
			for _, d := range details {
				fields = append(fields, d.(map[string]interface{})["field"].(string))
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestHandler_Handle_AllFieldsReported(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	payload := decodeBody(t, rec)
	details := payload["details"].([]interface{})
	require.Len(t, details, 2, "both failing fields must be reported")
}

func TestHandler_Handle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("tx deadline exceeded")}

	rec := doRequest(t, uc, `{"slotTime":"2024-06-01T10:00:00Z","duration":30}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	payload := decodeBody(t, rec)
	assert.Equal(t, "internal server error", payload["error"])
}
