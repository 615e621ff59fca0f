package check_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/m04kA/FDS-ReservationService/internal/usecase/check_availability"
)

type stubUseCase struct {
	gotReq *checkAvailability.Request
	resp   *checkAvailability.Response
	err    error
}

func (s *stubUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{resp: &checkAvailability.Response{
		Date:        "2026-06-14",
		Time:        "19:30",
		FreeSeats:   map[string]int{"5": 6, "41": 0},
		TotalGuests: 4,
	}}
	h := NewHandler(uc, nopLogger{})

	rec := get(t, h, "/api/v1/tables?data=2026-06-14&ora=19:30")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "2026-06-14", uc.gotReq.Date)
	assert.Equal(t, "19:30", uc.gotReq.Time)

	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]int `json:"data"`
		Info    struct {
			Date        string `json:"data"`
			Time        string `json:"ora"`
			TotalGuests int    `json:"totalePrenotazioni"`
		} `json:"info"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 6, resp.Data["5"])
	assert.Equal(t, 4, resp.Info.TotalGuests)
}

func TestHandle_BadParams(t *testing.T) {
	cases := map[string]struct {
		err  error
		code string
	}{
		"missing": {checkAvailability.ErrMissingParams, "MissingField"},
		"date":    {checkAvailability.ErrInvalidDateFormat, "InvalidDateFormat"},
		"time":    {checkAvailability.ErrInvalidTimeFormat, "InvalidTimeFormat"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tc.err}, nopLogger{})

			rec := get(t, h, "/api/v1/tables")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.code)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&stubUseCase{err: checkAvailability.ErrInternal}, nopLogger{})

	rec := get(t, h, "/api/v1/tables?data=2026-06-14&ora=19:30")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
