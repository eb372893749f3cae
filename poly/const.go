package poly

import "github.com/cwbudde/algo-polyvec/internal/lanes"

// Lanes is the number of lanes in Int and Float.
const Lanes = lanes.Count

// Lane bit patterns.
const (
	FullMask    = lanes.FullMask
	SignMask    = lanes.SignMask
	NotSignMask = lanes.NotSignMask
)
