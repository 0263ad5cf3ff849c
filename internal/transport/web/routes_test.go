package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avstrong/grandeur/internal/booking"
	"github.com/avstrong/grandeur/internal/catalog"
	"github.com/avstrong/grandeur/internal/contact"
	"github.com/avstrong/grandeur/internal/hotel"
	"github.com/avstrong/grandeur/internal/idgen/refcode"
	"github.com/avstrong/grandeur/internal/logger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	l := logger.NewNop()
	ctx := context.Background()

	rooms := catalog.New(catalog.Config{L: l})
	assert.NoError(t, catalog.Seed(ctx, l, rooms))

	conf := Conf{
		L:                 l,
		ServerLogger:      nil,
		Host:              "localhost",
		Port:              "0",
		ReadHeaderTimeout: 1,
		LivenessEndpoint:  "/liveness",
	}

	srv, err := New(
		ctx,
		conf,
		rooms,
		booking.New(l, rooms, refcode.New("GRD"), 0),
		contact.New(l, 0),
	)
	assert.NoError(t, err)

	return srv
}

func doRequest(s *Server, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))

	return w
}

func TestListRoomsHandler(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/rooms/v1", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Rooms []hotel.Room `json:"rooms"`
		Total int          `json:"total"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	assert.Len(t, out.Rooms, 8)
	assert.Equal(t, 8, out.Total)
	assert.Equal(t, "room-001", out.Rooms[0].ID)
}

func TestListRoomsHandler_Filtered(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/rooms/v1?type=suite&price=all", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Rooms []hotel.Room `json:"rooms"`
		Total int          `json:"total"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	assert.Len(t, out.Rooms, 2)
	assert.Equal(t, "room-005", out.Rooms[0].ID)
	assert.Equal(t, "room-006", out.Rooms[1].ID)
	assert.Equal(t, 8, out.Total)
}

func TestListRoomsHandler_UnknownFilter(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, doRequest(s, http.MethodGet, "/api/rooms/v1?type=cabin", "").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(s, http.MethodGet, "/api/rooms/v1?price=0-200", "").Code)
}

func TestListAvailableRoomsHandler(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/rooms/v1/available", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var rooms []hotel.Room
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&rooms))
	assert.Len(t, rooms, 6)
}

func TestGetRoomHandler(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/rooms/v1/room-001", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var room hotel.Room
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&room))
	assert.Equal(t, "Classic Room", room.Name)
}

func TestGetRoomHandler_NotFound(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, doRequest(s, http.MethodGet, "/api/rooms/v1/room-999", "").Code)
}

func TestCreateBookingHandler(t *testing.T) {
	s := newTestServer(t)

	body := `{
		"name": "Jo",
		"email": "a@b.com",
		"phone": "1234567890",
		"room_id": "room-001",
		"check_in": "2026-03-10T00:00:00Z",
		"check_out": "2026-03-12T00:00:00Z",
		"guests": 2
	}`

	w := doRequest(s, http.MethodPost, "/api/bookings/v1", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var out booking.Confirmation
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	assert.Regexp(t, `^GRD-[A-Z0-9]{8}$`, out.Reference)
	assert.Equal(t, "Classic Room", out.RoomName)
	assert.Equal(t, 2, out.Nights)
	assert.Equal(t, int64(9000), out.Total)
}

func TestCreateBookingHandler_FieldErrors(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/api/bookings/v1", `{"name": "J"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var fields map[string]string
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&fields))
	assert.Equal(t, "Name is required (min 2 characters)", fields["name"])
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "checkOut")
}

func TestCreateBookingHandler_MalformedBody(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, doRequest(s, http.MethodPost, "/api/bookings/v1", "{").Code)
}

func TestCreateContactHandler(t *testing.T) {
	s := newTestServer(t)

	body := `{
		"name": "Jo",
		"email": "a@b.com",
		"subject": "Late check-out",
		"message": "Is a 2pm check-out possible next weekend?"
	}`

	w := doRequest(s, http.MethodPost, "/api/contact/v1", body)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var out map[string]string
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	assert.Equal(t, "received", out["status"])
}

func TestCreateContactHandler_FieldErrors(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/api/contact/v1", `{"email": "a@b.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var fields map[string]string
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&fields))
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "subject")
	assert.Contains(t, fields, "message")
	assert.NotContains(t, fields, "email")
}

func TestLivenessHandler(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusNoContent, doRequest(s, http.MethodGet, "/liveness", "").Code)
}
