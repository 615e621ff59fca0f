package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createReservation "github.com/m04kA/FDS-ReservationService/internal/usecase/create_reservation"
)

// stubUseCase возвращает заранее заданный результат и запоминает запрос
type stubUseCase struct {
	gotReq *createReservation.Request
	resp   *createReservation.Response
	err    error
}

func (s *stubUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postJSON(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createReservation.Response{
		ID:        7,
		Name:      "Mario Rossi",
		Phone:     "3331234567",
		Date:      "2026-06-14",
		Time:      "19:30",
		Guests:    4,
		Table:     "5",
		CreatedAt: time.Date(2026, 6, 13, 12, 0, 0, 0, time.UTC),
	}}
	h := NewHandler(uc, nopLogger{})

	rec := postJSON(t, h, `{
		"nome": "Mario Rossi",
		"telefono": "333 123 4567",
		"data": "2026-06-14",
		"ora": "19:30",
		"ospiti": 4,
		"tavolo": "5"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, int64(7), resp.Reservation.ID)
	assert.Equal(t, "19:30", resp.Reservation.Time)
	assert.NotEmpty(t, resp.Message)

	// Числовое значение ospiti доходит до use case строкой
	assert.Equal(t, "4", uc.gotReq.Guests)
}

func TestHandle_OverflowGuestsLiteral(t *testing.T) {
	uc := &stubUseCase{resp: &createReservation.Response{Guests: 7}}
	h := NewHandler(uc, nopLogger{})

	rec := postJSON(t, h, `{
		"nome": "Mario Rossi",
		"telefono": "3331234567",
		"data": "2026-06-14",
		"ora": "19:30",
		"ospiti": "7+",
		"tavolo": "5"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "7+", uc.gotReq.Guests)
}

func TestHandle_MalformedBody(t *testing.T) {
	h := NewHandler(&stubUseCase{}, nopLogger{})

	rec := postJSON(t, h, `{"nome": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MissingField")
}

func TestHandle_CapacityConflict(t *testing.T) {
	uc := &stubUseCase{err: &createReservation.CapacityError{
		Requested: 6,
		Available: 2,
		Capacity:  10,
	}}
	h := NewHandler(uc, nopLogger{})

	rec := postJSON(t, h, `{
		"nome": "Mario Rossi",
		"telefono": "3331234567",
		"data": "2026-06-14",
		"ora": "19:30",
		"ospiti": 6,
		"tavolo": "5"
	}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
		Info struct {
			Requested int `json:"posti_richiesti"`
			Available int `json:"posti_disponibili"`
			Capacity  int `json:"posti_totali"`
		} `json:"info"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "InsufficientCapacity", resp.Error.Code)
	assert.Equal(t, 6, resp.Info.Requested)
	assert.Equal(t, 2, resp.Info.Available)
	assert.Equal(t, 10, resp.Info.Capacity)
}

func TestHandle_ReasonCodes(t *testing.T) {
	cases := map[string]struct {
		err  error
		code string
	}{
		"missing field": {createReservation.ErrMissingField, "MissingField"},
		"invalid name":  {createReservation.ErrInvalidName, "InvalidName"},
		"invalid phone": {createReservation.ErrInvalidPhone, "InvalidPhone"},
		"bad date":      {createReservation.ErrInvalidDateFormat, "InvalidDateFormat"},
		"past date":     {createReservation.ErrPastDate, "PastDate"},
		"bad time":      {createReservation.ErrInvalidTimeFormat, "InvalidTimeFormat"},
		"party size":    {createReservation.ErrInvalidPartySize, "InvalidPartySize"},
		"unknown table": {createReservation.ErrUnknownTable, "UnknownTable"},
		"not bookable":  {createReservation.ErrNotBookable, "NotBookable"},
		"notes":         {createReservation.ErrInvalidNotes, "InvalidNotes"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tc.err}, nopLogger{})

			rec := postJSON(t, h, `{"nome": "x", "telefono": "x", "data": "x", "ora": "x", "ospiti": 1, "tavolo": "x"}`)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.code)
		})
	}
}

func TestHandle_UnexpectedErrorIsInternal(t *testing.T) {
	h := NewHandler(&stubUseCase{err: createReservation.ErrInternal}, nopLogger{})

	rec := postJSON(t, h, `{"nome": "x", "telefono": "x", "data": "x", "ora": "x", "ospiti": 1, "tavolo": "x"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "InternalError")
}
