package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/avstrong/grandeur/internal/booking"
	"github.com/avstrong/grandeur/internal/contact"
	"github.com/avstrong/grandeur/internal/hotel"
	"github.com/avstrong/grandeur/internal/logger"
)

type roomCatalog interface {
	ListRooms(ctx context.Context) []hotel.Room
	ListAvailableRooms(ctx context.Context) []hotel.Room
	FindRoom(ctx context.Context, id string) (*hotel.Room, error)
}

type bookingManager interface {
	CreateBooking(ctx context.Context, input *booking.Inquiry) (*booking.Confirmation, error)
}

type contactManager interface {
	Submit(ctx context.Context, msg *contact.Message) error
}

type Server struct {
	srv      *http.Server
	router   *http.ServeMux
	l        *logger.Logger
	conf     Conf
	catalog  roomCatalog
	bookings bookingManager
	contacts contactManager
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
}

func New(ctx context.Context, conf Conf, catalog roomCatalog, bookings bookingManager, contacts contactManager) (*Server, error) {
	mux := http.NewServeMux()

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout * time.Second, //nolint:durationcheck
		ErrorLog:          conf.ServerLogger,
		Handler:           mux,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:      srv,
		router:   mux,
		l:        conf.L,
		conf:     conf,
		catalog:  catalog,
		bookings: bookings,
		contacts: contacts,
	}

	server.addRoutes(mux)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}
