package review

// Summary is the aggregated view of one venue's reviews.
type Summary struct {
	Count            int                `json:"count"`
	Average          float64            `json:"average"`
	Distribution     map[int]int        `json:"distribution"`
	CategoryAverages map[string]float64 `json:"categoryAverages"`
}

// NewSummary returns an empty summary with all five star buckets present.
func NewSummary() Summary {
	d := make(map[int]int, MaxRating)
	for b := 1; b <= MaxRating; b++ {
		d[b] = 0
	}
	return Summary{
		Distribution:     d,
		CategoryAverages: map[string]float64{},
	}
}

// Copy returns a deep copy so callers cannot mutate aggregator state.
func (s Summary) Copy() Summary {
	out := Summary{
		Count:            s.Count,
		Average:          s.Average,
		Distribution:     make(map[int]int, len(s.Distribution)),
		CategoryAverages: make(map[string]float64, len(s.CategoryAverages)),
	}
	for k, v := range s.Distribution {
		out.Distribution[k] = v
	}
	for k, v := range s.CategoryAverages {
		out.CategoryAverages[k] = v
	}
	return out
}

// Bucket maps a rating to its star bucket: floor(rating) clamped to [1,5],
// so a rating of 0 counts as one star.
func Bucket(rating float64) int {
	b := int(rating)
	if b < 1 {
		return 1
	}
	if b > MaxRating {
		return MaxRating
	}
	return b
}
