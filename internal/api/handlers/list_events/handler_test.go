package list_events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listEvents "github.com/calendrio/calendar-backend/internal/usecase/list_events"
)

type fakeUseCase struct {
	resp   *listEvents.Response
	err    error
	gotReq *listEvents.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *listEvents.Request) (*listEvents.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, target, nil)
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

func TestHandler_Handle_WithEvents(t *testing.T) {
	uc := &fakeUseCase{resp: &listEvents.Response{
		Events: []listEvents.Event{
			{
				StartTime:       time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
				EndTime:         time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
				DurationMinutes: 30,
			},
			{
				StartTime:       time.Date(2024, 6, 2, 14, 0, 0, 0, time.UTC),
				EndTime:         time.Date(2024, 6, 2, 15, 0, 0, 0, time.UTC),
				DurationMinutes: 60,
			},
		},
		Count: 2,
	}}

	rec := doRequest(t, uc, "/events/list?startDate=2024-06-01&endDate=2024-06-03")

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "2024-06-01", uc.gotReq.StartDate)
	assert.Equal(t, "2024-06-03", uc.gotReq.EndDate)

	payload := decodeBody(t, rec)
	assert.Equal(t, true, payload["success"])

	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["count"])

	result := data["result"].([]interface{})
	require.Len(t, result, 2)

	first := result[0].(map[string]interface{})
	assert.Equal(t, "2024-06-01T10:00:00Z", first["bookedStartTime"])
	assert.Equal(t, "2024-06-01T10:30:00Z", first["bookedEndTime"])
	assert.Equal(t, float64(30), first["duration"])
}

func TestHandler_Handle_EmptyRangeIsBareArray(t *testing.T) {
	uc := &fakeUseCase{resp: &listEvents.Response{Events: []listEvents.Event{}, Count: 0}}

	rec := doRequest(t, uc, "/events/list?startDate=2024-06-01&endDate=2024-06-03")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true, "data": []}`, rec.Body.String())
}

func TestHandler_Handle_ValidationDetails(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantField string
	}{
		{"missing startDate", "/events/list?endDate=2024-06-03", "startDate"},
		{"missing endDate", "/events/list?startDate=2024-06-01", "endDate"},
		{"malformed startDate", "/events/list?startDate=01-06-2024&endDate=2024-06-03", "startDate"},
		{"malformed endDate", "/events/list?startDate=2024-06-01&endDate=yesterday", "endDate"},
		{"endDate before startDate", "/events/list?startDate=2024-06-03&endDate=2024-06-01", "endDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}

			rec := doRequest(t, uc, tt.target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.gotReq, "use case must not run on an invalid query")

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

func TestHandler_Handle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("connection refused")}

	rec := doRequest(t, uc, "/events/list?startDate=2024-06-01&endDate=2024-06-03")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	payload := decodeBody(t, rec)
	assert.Equal(t, "internal server error", payload["error"])
}
