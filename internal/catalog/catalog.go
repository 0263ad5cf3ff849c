package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/avstrong/grandeur/internal/hotel"
	"github.com/avstrong/grandeur/internal/logger"
)

type Config struct {
	L *logger.Logger
}

// Catalog is the in-memory room collection. It is seeded once on startup and
// never mutated afterwards; bookings do not decrement availability.
type Catalog struct {
	mu    sync.Mutex
	l     *logger.Logger
	order []string
	rooms map[string]*hotel.Room
}

func New(conf Config) *Catalog {
	//nolint:exhaustruct
	return &Catalog{
		l:     conf.L,
		rooms: make(map[string]*hotel.Room),
	}
}

func (c *Catalog) AddRooms(_ context.Context, rooms []*hotel.Room) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, room := range rooms {
		if _, ok := c.rooms[room.ID]; ok {
			return fmt.Errorf("room %q: %w", room.ID, ErrDuplicateRoom)
		}

		if room.Price <= 0 || room.Capacity <= 0 || room.Size <= 0 {
			return fmt.Errorf("room %q has non-positive price, capacity, or size: %w", room.ID, ErrInvalidRoom)
		}

		stored := *room
		c.rooms[room.ID] = &stored
		c.order = append(c.order, room.ID)
	}

	return nil
}

func (c *Catalog) ListRooms(_ context.Context) []hotel.Room {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]hotel.Room, 0, len(c.order))

	for _, id := range c.order {
		result = append(result, *c.rooms[id])
	}

	return result
}

func (c *Catalog) ListAvailableRooms(_ context.Context) []hotel.Room {
	c.mu.Lock()
	defer c.mu.Unlock()

	var result []hotel.Room

	for _, id := range c.order {
		if room := c.rooms[id]; room.Available {
			result = append(result, *room)
		}
	}

	return result
}

func (c *Catalog) FindRoom(_ context.Context, id string) (*hotel.Room, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.rooms[id]
	if !ok {
		return nil, fmt.Errorf("room %q: %w", id, hotel.ErrRoomNotFound)
	}

	found := *room

	return &found, nil
}
