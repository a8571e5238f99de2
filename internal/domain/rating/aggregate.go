package rating

// Aggregate is the mean and count of every rating filed against one target.
// It is always recomputed from the full set, never incrementally updated, so
// a direct mutation of the backing ratings is reflected by the next
// recompute.
type Aggregate struct {
	AverageRating float64 `json:"averageRating"`
	Count         int     `json:"count"`
}

func Recompute(ratings []*Rating) Aggregate {
	if len(ratings) == 0 {
		return Aggregate{}
	}

	sum := 0
	for _, r := range ratings {
		sum += r.stars
	}
	return Aggregate{
		AverageRating: float64(sum) / float64(len(ratings)),
		Count:         len(ratings),
	}
}
