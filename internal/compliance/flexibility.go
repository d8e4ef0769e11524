package compliance

import (
	"math"

	"github.com/guttosm/carryon-service/internal/domain/model"
)

const (
	// MinFillPercentage is the lowest fill level the optimizer will suggest.
	MinFillPercentage = 60.0
	// MaxFillPercentage is a completely full bag.
	MaxFillPercentage = 100.0
	// FillStep is the granularity of the fill search.
	FillStep = 5.0
)

// CalculateFlexibility returns how much each axis of a soft bag can give at
// the given fill level. A bag that is 80% full has 20% of every raw
// measurement to spare. Fill is clamped to [0, 100].
func CalculateFlexibility(dims model.UserDimensions, fillPercentage float64) model.SortedDimensions {
	emptyFraction := (MaxFillPercentage - ClampFill(fillPercentage)) / 100
	return model.DescDimensions(
		dims.Height*emptyFraction,
		dims.Width*emptyFraction,
		dims.Depth*emptyFraction,
	)
}

// ClampFill bounds a fill percentage to [0, 100].
func ClampFill(fill float64) float64 {
	switch {
	case math.IsNaN(fill):
		return MaxFillPercentage
	case fill < 0:
		return 0
	case fill > MaxFillPercentage:
		return MaxFillPercentage
	default:
		return fill
	}
}
