package video

// Rating is the age classification of a video. The set is closed; input
// that does not match any known value parses to the zero Rating, which the
// aggregate treats as absent.
type Rating string

const (
	RatingER    Rating = "ER"
	RatingFree  Rating = "L"
	RatingAge10 Rating = "10"
	RatingAge12 Rating = "12"
	RatingAge14 Rating = "14"
	RatingAge16 Rating = "16"
	RatingAge18 Rating = "18"
)

var ratings = []Rating{
	RatingER,
	RatingFree,
	RatingAge10,
	RatingAge12,
	RatingAge14,
	RatingAge16,
	RatingAge18,
}

// ParseRating maps a raw string onto a Rating. The second return value is
// false for unknown input.
func ParseRating(raw string) (Rating, bool) {
	for _, r := range ratings {
		if string(r) == raw {
			return r, true
		}
	}
	return "", false
}

func (r Rating) String() string { return string(r) }
