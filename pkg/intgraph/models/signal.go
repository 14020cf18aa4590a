package models

// Point is one plotted observation.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Signal is the ordered sequence of points derived from one image column.
// Point order is the row order of the column and must be kept.
type Signal struct {
	// Channel is the channel the points were read from.
	Channel Channel `json:"channel"`
	// Column is the sampled horizontal offset.
	Column int `json:"column"`
	// Points holds one point per sampled row.
	Points []Point `json:"points"`
}

// Len returns the number of points.
func (s *Signal) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Points)
}

// YValues returns a copy of the point Y coordinates in order.
func (s *Signal) YValues() []float64 {
	ys := make([]float64, s.Len())
	for i, p := range s.Points {
		ys[i] = p.Y
	}
	return ys
}

// XValues returns a copy of the point X coordinates in order.
func (s *Signal) XValues() []float64 {
	xs := make([]float64, s.Len())
	for i, p := range s.Points {
		xs[i] = p.X
	}
	return xs
}
