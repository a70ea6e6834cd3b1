package input

import "time"

const (
	MinSpeed     = 100 * time.Millisecond
	MaxSpeed     = 1000 * time.Millisecond
	SpeedStep    = 100 * time.Millisecond
	DefaultSpeed = 500 * time.Millisecond
)

// ClampSpeed bounds d to the range the speed control offers.
func ClampSpeed(d time.Duration) time.Duration {
	return min(max(d, MinSpeed), MaxSpeed)
}
