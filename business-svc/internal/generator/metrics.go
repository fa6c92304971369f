package generator

import "math"

const (
	MinRating  = 3.5
	MaxRating  = 5.0
	MinReviews = 50
	MaxReviews = 500
)

type Randomizer struct {
	src Source
}

func NewRandomizer(src Source) *Randomizer {
	if src == nil {
		src = DefaultSource()
	}
	return &Randomizer{src: src}
}

// Rating returns a value in [3.5, 5.0] rounded to one decimal place.
func (r *Randomizer) Rating() float64 {
	raw := MinRating + r.src.Float64()*(MaxRating-MinRating)
	rating := math.Round(raw*10) / 10
	return math.Min(rating, MaxRating)
}

// Reviews returns an integer in [50, 500].
func (r *Randomizer) Reviews() int {
	return MinReviews + pick(r.src, MaxReviews-MinReviews+1)
}
