package service

import "time"

// WeightReading is one sampled measurement from the scale gateway.
type WeightReading struct {
	WeightKg  float64   `json:"weight_kg"`
	SampledAt time.Time `json:"sampled_at"`
}

// WeightSource exposes the latest reading from the periodic scale sampler.
// The sampler is a producer feeding a single current-value cell; the
// Collection Processor reads it synchronously at call time and the source
// never drives ledger mutations on its own.
type WeightSource interface {
	// Current returns the most recent reading, or ok=false when nothing has
	// been sampled yet.
	Current() (reading WeightReading, ok bool)
}
