package hotel

type Category string

const (
	CategoryStandard  Category = "standard"
	CategoryDeluxe    Category = "deluxe"
	CategorySuite     Category = "suite"
	CategoryPenthouse Category = "penthouse"
)

// FilterAll is the sentinel accepted by both filter dimensions.
const FilterAll = "all"

type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"type"`
	Price       int64    `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Capacity    int      `json:"capacity"`
	Size        float64  `json:"size"`
	Facilities  []string `json:"facilities"`
	Available   bool     `json:"available"`
}
