package hotel

// PriceBracket is a half-open nightly price range. The top bracket has no
// upper bound.
type PriceBracket string

const (
	BracketAll    PriceBracket = "all"
	BracketBudget PriceBracket = "0-8000"
	BracketMid    PriceBracket = "8000-20000"
	BracketTop    PriceBracket = "20000+"
)

const (
	bracketBudgetMax = 8000
	bracketMidMax    = 20000
)

func ValidCategoryFilter(value string) bool {
	switch Category(value) {
	case CategoryStandard, CategoryDeluxe, CategorySuite, CategoryPenthouse:
		return true
	}

	return value == FilterAll
}

func ValidPriceFilter(value string) bool {
	switch PriceBracket(value) {
	case BracketAll, BracketBudget, BracketMid, BracketTop:
		return true
	}

	return false
}

func (b PriceBracket) contains(price int64) bool {
	switch b {
	case BracketAll:
		return true
	case BracketBudget:
		return price < bracketBudgetMax
	case BracketMid:
		return price >= bracketBudgetMax && price < bracketMidMax
	case BracketTop:
		return price >= bracketMidMax
	}

	return false
}

// Filter returns the rooms matching the category and price selections,
// preserving the input order. FilterAll matches everything on its dimension.
func Filter(rooms []Room, category, bracket string) []Room {
	result := make([]Room, 0, len(rooms))

	for _, room := range rooms {
		if category != FilterAll && string(room.Category) != category {
			continue
		}

		if !PriceBracket(bracket).contains(room.Price) {
			continue
		}

		result = append(result, room)
	}

	return result
}
