package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/avstrong/grandeur/internal/hotel"
	"github.com/avstrong/grandeur/internal/logger"
	"github.com/avstrong/grandeur/internal/validate"
)

type referenceGenerator interface {
	Generate() string
}

type roomFinder interface {
	FindRoom(ctx context.Context, id string) (*hotel.Room, error)
}

const (
	minNameLen  = 2
	minPhoneLen = 10

	minGuests     = 1
	maxGuests     = 6
	defaultGuests = 2

	hoursPerDay = 24
)

type Manager struct {
	l     *logger.Logger
	rooms roomFinder
	refs  referenceGenerator
	delay time.Duration
}

// New builds a booking manager. delay is the artificial processing pause
// applied before a confirmation is produced; zero disables it.
func New(l *logger.Logger, rooms roomFinder, refs referenceGenerator, delay time.Duration) *Manager {
	return &Manager{
		l:     l,
		rooms: rooms,
		refs:  refs,
		delay: delay,
	}
}

// Nights returns the stay length in nights, rounded up to whole days. A
// check-out at or before check-in yields 0, never a negative count.
func Nights(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}

	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / hoursPerDay))
}

// Total is room price times nights. A missing room or a non-positive night
// count uniformly yields 0 so callers can suppress the price summary.
func Total(room *hotel.Room, nights int) int64 {
	if room == nil || nights <= 0 {
		return 0
	}

	return room.Price * int64(nights)
}

// Validate checks every field independently and reports all failures at once
// through a *validate.InputError. A nil return means the inquiry is valid.
func (i *Inquiry) Validate() error {
	inputErr := validate.NewInputError()

	if len(i.Name) < minNameLen {
		inputErr.AddError("name", "Name is required (min 2 characters)")
	}

	if i.Email == "" || !strings.Contains(i.Email, "@") {
		inputErr.AddError("email", "Valid email is required")
	}

	if len(i.Phone) < minPhoneLen {
		inputErr.AddError("phone", "Valid phone number is required")
	}

	if i.RoomID == "" {
		inputErr.AddError("roomId", "Please select a room")
	}

	if i.CheckIn.IsZero() {
		inputErr.AddError("checkIn", "Check-in date is required")
	}

	switch {
	case i.CheckOut.IsZero():
		inputErr.AddError("checkOut", "Check-out date is required")
	case !i.CheckIn.IsZero() && !i.CheckOut.After(i.CheckIn):
		inputErr.AddError("checkOut", "Check-out must be after check-in")
	}

	if i.Guests != 0 && (i.Guests < minGuests || i.Guests > maxGuests) {
		inputErr.AddError("guests", "Number of guests must be between 1 and 6")
	}

	if inputErr.FieldsCount() > 0 {
		return inputErr
	}

	return nil
}

func (i *Inquiry) applyDefaults() {
	if i.Guests == 0 {
		i.Guests = defaultGuests
	}
}

// CreateBooking validates the inquiry, waits out the simulated processing
// delay, and produces exactly one confirmation. Nothing is stored and the
// room's availability is not decremented. An unknown room id still confirms
// with an empty room name and a zero total.
func (m *Manager) CreateBooking(ctx context.Context, input *Inquiry) (*Confirmation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	input.applyDefaults()

	if err := m.wait(ctx); err != nil {
		return nil, fmt.Errorf("process booking: %w", err)
	}

	room, err := m.rooms.FindRoom(ctx, input.RoomID)
	if err != nil && !errors.Is(err, hotel.ErrRoomNotFound) {
		return nil, fmt.Errorf("find room %q: %w", input.RoomID, err)
	}

	var roomName string

	if room != nil {
		roomName = room.Name
	}

	nights := Nights(input.CheckIn, input.CheckOut)

	confirmation := &Confirmation{
		Reference: m.refs.Generate(),
		RoomName:  roomName,
		CheckIn:   input.CheckIn,
		CheckOut:  input.CheckOut,
		Nights:    nights,
		Total:     Total(room, nights),
	}

	m.l.LogInfo(
		"Booking %v confirmed: room %q, %v night(s), %v guest(s), total %v",
		confirmation.Reference,
		confirmation.RoomName,
		confirmation.Nights,
		input.Guests,
		confirmation.Total,
	)

	return confirmation, nil
}

func (m *Manager) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(m.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
