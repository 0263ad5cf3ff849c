package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avstrong/grandeur/internal/booking"
	"github.com/avstrong/grandeur/internal/contact"
	"github.com/avstrong/grandeur/internal/hotel"
	"github.com/avstrong/grandeur/internal/validate"
)

type roomListResponse struct {
	Rooms []hotel.Room `json:"rooms"`
	// Total is the unfiltered catalog size, for "showing X of Y" displays.
	Total int `json:"total"`
}

func (s *Server) listRoomsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := r.URL.Query().Get("type")
	if category == "" {
		category = hotel.FilterAll
	}

	bracket := r.URL.Query().Get("price")
	if bracket == "" {
		bracket = hotel.FilterAll
	}

	if !hotel.ValidCategoryFilter(category) {
		http.Error(w, "unknown room type filter", http.StatusBadRequest)

		return
	}

	if !hotel.ValidPriceFilter(bracket) {
		http.Error(w, "unknown price filter", http.StatusBadRequest)

		return
	}

	rooms := s.catalog.ListRooms(ctx)

	out := roomListResponse{
		Rooms: hotel.Filter(rooms, category, bracket),
		Total: len(rooms),
	}

	if err := json.NewEncoder(w).Encode(out); err != nil {
		s.l.LogErrorf("Could not encode room list: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) listAvailableRoomsHandler(w http.ResponseWriter, r *http.Request) {
	rooms := s.catalog.ListAvailableRooms(r.Context())

	if err := json.NewEncoder(w).Encode(rooms); err != nil {
		s.l.LogErrorf("Could not encode available room list: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) getRoomHandler(w http.ResponseWriter, r *http.Request) {
	room, err := s.catalog.FindRoom(r.Context(), r.PathValue("id"))
	if errors.Is(err, hotel.ErrRoomNotFound) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not find room: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	if err = json.NewEncoder(w).Encode(room); err != nil {
		s.l.LogErrorf("Could not encode room: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input booking.Inquiry

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	out, err := s.bookings.CreateBooking(ctx, &input)
	if inputErr := validate.IsInputError(err); inputErr != nil {
		w.WriteHeader(http.StatusBadRequest)

		if err = json.NewEncoder(w).Encode(inputErr.Fields()); err != nil {
			s.l.LogErrorf("Could not encode validation err: %v", err.Error())
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not create booking: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusCreated)

	if err = json.NewEncoder(w).Encode(out); err != nil {
		s.l.LogErrorf("Could not encode booking confirmation: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) createContactHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var msg contact.Message

	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	err := s.contacts.Submit(ctx, &msg)
	if inputErr := validate.IsInputError(err); inputErr != nil {
		w.WriteHeader(http.StatusBadRequest)

		if err = json.NewEncoder(w).Encode(inputErr.Fields()); err != nil {
			s.l.LogErrorf("Could not encode validation err: %v", err.Error())
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not submit contact message: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusAccepted)

	if err = json.NewEncoder(w).Encode(map[string]string{"status": "received"}); err != nil {
		s.l.LogErrorf("Could not encode contact ack: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	r.Handle(
		"GET /api/rooms/v1",
		s.applyMiddlewares(http.HandlerFunc(s.listRoomsHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		"GET /api/rooms/v1/available",
		s.applyMiddlewares(http.HandlerFunc(s.listAvailableRoomsHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		"GET /api/rooms/v1/{id}",
		s.applyMiddlewares(http.HandlerFunc(s.getRoomHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		"POST /api/bookings/v1",
		s.applyMiddlewares(http.HandlerFunc(s.createBookingHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		"POST /api/contact/v1",
		s.applyMiddlewares(http.HandlerFunc(s.createContactHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		fmt.Sprintf("GET %s", s.conf.LivenessEndpoint),
		s.applyMiddlewares(http.HandlerFunc(s.livenessHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
}
