package geo

import (
	"fmt"
	"math"
)

// Point2D represents an absolute world position in the XZ plane (Y is up).
type Point2D struct {
	X float64 `json:"x" yaml:"x"`
	Z float64 `json:"z" yaml:"z"`
}

// Origin is the zero point.
var Origin = Point2D{0, 0}

// Pt is a shorthand constructor for Point2D.
func Pt(x, z float64) Point2D {
	return Point2D{X: x, Z: z}
}

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{p.X - q.X, p.Z - q.Z}
}

// LengthSq returns the squared Euclidean length of the vector.
// Components are rounded before summing so the result never depends on FMA.
func (p Point2D) LengthSq() float64 {
	return float64(p.X*p.X) + float64(p.Z*p.Z)
}

// Length returns the Euclidean length of the vector.
func (p Point2D) Length() float64 {
	return math.Sqrt(p.LengthSq())
}

// Distance returns the Euclidean distance from p to q.
func (p Point2D) Distance(q Point2D) float64 {
	return p.Sub(q).Length()
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (p Point2D) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Z)
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Z)
}

// BlockPos is an integer world position in the XZ plane.
type BlockPos struct {
	X int64 `json:"x" yaml:"x"`
	Z int64 `json:"z" yaml:"z"`
}

// Block is a shorthand constructor for BlockPos.
func Block(x, z int64) BlockPos {
	return BlockPos{X: x, Z: z}
}

// MaxBlockCoord is the exclusive magnitude bound on coordinates that still
// convert to an int64 BlockPos.
const MaxBlockCoord = 1 << 63

// WithinBlockRange reports whether every point within margin of p has
// coordinates below MaxBlockCoord in magnitude.
func (p Point2D) WithinBlockRange(margin float64) bool {
	return math.Abs(p.X)+margin < MaxBlockCoord && math.Abs(p.Z)+margin < MaxBlockCoord
}

// Floor returns the block containing p. Results for p outside
// WithinBlockRange(0) are unspecified.
func Floor(p Point2D) BlockPos {
	return BlockPos{
		X: int64(math.Floor(p.X)),
		Z: int64(math.Floor(p.Z)),
	}
}

func (b BlockPos) String() string {
	return fmt.Sprintf("(%d, %d)", b.X, b.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
