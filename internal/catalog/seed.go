package catalog

import (
	"context"
	"fmt"

	"github.com/avstrong/grandeur/internal/hotel"
	"github.com/avstrong/grandeur/internal/logger"
)

//nolint:funlen,gomnd // fixture data
func Seed(ctx context.Context, l *logger.Logger, c *Catalog) error {
	rooms := []*hotel.Room{
		{
			ID:          "room-001",
			Name:        "Classic Room",
			Category:    hotel.CategoryStandard,
			Price:       4500,
			Description: "A comfortable room with modern amenities, perfect for solo travelers or couples seeking a cozy retreat.",
			Image:       "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=800&q=80",
			Capacity:    2,
			Size:        28,
			Facilities:  []string{"King Bed", "Free WiFi", "Air Conditioning", "Mini Bar", "Room Service"},
			Available:   true,
		},
		{
			ID:          "room-002",
			Name:        "Superior Room",
			Category:    hotel.CategoryStandard,
			Price:       6000,
			Description: "Spacious accommodation with city views and premium bedding for enhanced comfort.",
			Image:       "https://images.unsplash.com/photo-1590490360182-c33d57733427?w=800&q=80",
			Capacity:    2,
			Size:        35,
			Facilities:  []string{"King Bed", "Free WiFi", "Air Conditioning", "Mini Bar", "Room Service", "City View"},
			Available:   true,
		},
		{
			ID:          "room-003",
			Name:        "Deluxe Room",
			Category:    hotel.CategoryDeluxe,
			Price:       8500,
			Description: "Elegantly appointed room featuring a private balcony and luxurious marble bathroom.",
			Image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800&q=80",
			Capacity:    2,
			Size:        42,
			Facilities:  []string{"King Bed", "Free WiFi", "Air Conditioning", "Mini Bar", "Room Service", "Balcony", "Marble Bathroom"},
			Available:   true,
		},
		{
			ID:          "room-004",
			Name:        "Grand Deluxe Room",
			Category:    hotel.CategoryDeluxe,
			Price:       12000,
			Description: "Premium deluxe accommodation with separate living area and panoramic views.",
			Image:       "https://images.unsplash.com/photo-1566665797739-1674de7a421a?w=800&q=80",
			Capacity:    3,
			Size:        52,
			Facilities:  []string{"King Bed", "Free WiFi", "Air Conditioning", "Mini Bar", "Room Service", "Balcony", "Living Area", "Panoramic View"},
			Available:   false,
		},
		{
			ID:          "room-005",
			Name:        "Junior Suite",
			Category:    hotel.CategorySuite,
			Price:       18000,
			Description: "Sophisticated suite with separate bedroom and living room, ideal for extended stays.",
			Image:       "https://images.unsplash.com/photo-1591088398332-8a7791972843?w=800&q=80",
			Capacity:    2,
			Size:        65,
			Facilities:  []string{"King Bed", "Free WiFi", "Air Conditioning", "Mini Bar", "Room Service", "Living Room", "Work Desk", "Bathtub"},
			Available:   true,
		},
		{
			ID:          "room-006",
			Name:        "Executive Suite",
			Category:    hotel.CategorySuite,
			Price:       25000,
			Description: "Lavish suite featuring a dining area, premium amenities, and butler service.",
			Image:       "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?w=800&q=80",
			Capacity:    4,
			Size:        85,
			Facilities:  []string{"King Bed", "Free WiFi", "Air Conditioning", "Mini Bar", "Butler Service", "Dining Area", "Jacuzzi", "Premium View"},
			Available:   true,
		},
		{
			ID:          "room-007",
			Name:        "Presidential Suite",
			Category:    hotel.CategoryPenthouse,
			Price:       50000,
			Description: "The epitome of luxury with multiple bedrooms, private terrace, and exclusive concierge.",
			Image:       "https://images.unsplash.com/photo-1631049552057-403cdb8f0658?w=800&q=80",
			Capacity:    6,
			Size:        150,
			Facilities:  []string{"Multiple Bedrooms", "Free WiFi", "Air Conditioning", "Full Kitchen", "Private Terrace", "Concierge", "Jacuzzi", "Home Theater"},
			Available:   true,
		},
		{
			ID:          "room-008",
			Name:        "Royal Penthouse",
			Category:    hotel.CategoryPenthouse,
			Price:       100000,
			Description: "Our most exclusive accommodation spanning the entire top floor with 360-degree city views.",
			Image:       "https://images.unsplash.com/photo-1602002418816-5c0aeef426aa?w=800&q=80",
			Capacity:    8,
			Size:        300,
			Facilities:  []string{"Multiple Bedrooms", "Free WiFi", "Air Conditioning", "Full Kitchen", "Private Pool", "Helipad Access", "Personal Chef", "Spa Room"},
			Available:   false,
		},
	}

	if err := c.AddRooms(ctx, rooms); err != nil {
		return fmt.Errorf("add rooms to catalog: %w", err)
	}

	l.LogInfo("Catalog seeded with %v rooms", len(rooms))

	return nil
}
