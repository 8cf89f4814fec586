package domain

// ImageFile describes one rendition of a result's image
type ImageFile struct {
	URL    string
	Width  int
	Height int
}

// ResultItem is a single search result
type ResultItem struct {
	ID       string
	Title    string
	PageURL  string    // external page for the result
	Thumb    ImageFile // fixed-width rendition shown on cards
	Original ImageFile // full-size rendition shown in the preview
}

// Rating is the content rating filter sent with every search
type Rating string

const (
	RatingG    Rating = "g"
	RatingPG   Rating = "pg"
	RatingPG13 Rating = "pg-13"
	RatingR    Rating = "r"
)

// Next cycles to the next rating level, wrapping around
func (r Rating) Next() Rating {
	switch r {
	case RatingG:
		return RatingPG
	case RatingPG:
		return RatingPG13
	case RatingPG13:
		return RatingR
	default:
		return RatingG
	}
}

// ParseRating normalizes a configured rating string, falling back to "g"
func ParseRating(s string) Rating {
	switch Rating(s) {
	case RatingG, RatingPG, RatingPG13, RatingR:
		return Rating(s)
	default:
		return RatingG
	}
}
