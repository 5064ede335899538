package geo

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned by ValidateInputs for input the clamper
// gives no defined result for.
var ErrInvalidArgument = errors.New("invalid argument")

// Clamped is the outcome of placing an event relative to an observer.
type Clamped struct {
	// Pos is the integer position handed to the observer.
	Pos BlockPos `json:"pos"`
	// Point is the real-valued position Pos was derived from: the event
	// itself, or the point radius away from the observer toward it.
	Point Point2D `json:"point"`
	// Clamped is set when the event lay strictly beyond radius.
	Clamped bool `json:"clamped"`
}

// Clamp places event relative to observer, bounded by radius.
//
// An event within radius (inclusive) is returned as the block containing it.
// An event beyond radius is pulled along the observer-event line to exactly
// radius from the observer, and each coordinate is converted with
// TruncateTowardZero using DefaultEpsilon. The two branches round differently
// and must stay that way.
//
// A zero distance always takes the first branch since radius >= 0, so the
// division below never sees a zero denominator.
func Clamp(event, observer Point2D, radius float64) Clamped {
	delta := event.Sub(observer)
	distanceSq := delta.LengthSq()

	if distanceSq <= float64(radius*radius) {
		return Clamped{Pos: Floor(event), Point: event}
	}

	distance := math.Sqrt(distanceSq)
	rel := Point2D{
		X: observer.X + float64(delta.X/distance*radius),
		Z: observer.Z + float64(delta.Z/distance*radius),
	}
	return Clamped{
		Pos: BlockPos{
			X: TruncateTowardZero(rel.X, DefaultEpsilon),
			Z: TruncateTowardZero(rel.Z, DefaultEpsilon),
		},
		Point:   rel,
		Clamped: true,
	}
}

// RelativeCoords returns the integer position at which an observer perceives
// an event, given the observer's view radius in blocks.
func RelativeCoords(event, observer Point2D, radius float64) BlockPos {
	return Clamp(event, observer, radius).Pos
}

// ComputeRelativeCoords is RelativeCoords over bare coordinates.
func ComputeRelativeCoords(eventX, eventZ, observerX, observerZ, radius float64) (int64, int64) {
	p := RelativeCoords(Pt(eventX, eventZ), Pt(observerX, observerZ), radius)
	return p.X, p.Z
}

// ValidateInputs reports whether Clamp has a defined result for the given
// arguments. The returned error wraps ErrInvalidArgument.
func ValidateInputs(event, observer Point2D, radius float64) error {
	if !event.IsFinite() {
		return fmt.Errorf("%w: event position %v is not finite", ErrInvalidArgument, event)
	}
	if !observer.IsFinite() {
		return fmt.Errorf("%w: observer position %v is not finite", ErrInvalidArgument, observer)
	}
	if !isFinite(radius) {
		return fmt.Errorf("%w: radius %v is not finite", ErrInvalidArgument, radius)
	}
	if radius < 0 {
		return fmt.Errorf("%w: radius %v is negative", ErrInvalidArgument, radius)
	}
	// The result is the event itself or lies within radius of the observer.
	if !event.WithinBlockRange(0) {
		return fmt.Errorf("%w: event position %v is outside the block range", ErrInvalidArgument, event)
	}
	if !observer.WithinBlockRange(radius) {
		return fmt.Errorf("%w: observer position %v with radius %v reaches outside the block range", ErrInvalidArgument, observer, radius)
	}
	return nil
}
