package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// minBasisDeterminant is the smallest |det| accepted for the camera basis
const minBasisDeterminant = 1e-9

var (
	// ErrDegenerateCamera is returned when the camera normal and up vectors
	// do not span a plane, which makes the projection singular
	ErrDegenerateCamera = errors.New("camera basis is degenerate")
	// ErrInvalidImageView is returned for image sizes that cannot be sampled
	ErrInvalidImageView = errors.New("image view must be at least 2x2 pixels")
	// ErrInvalidScreen is returned for non-positive screen dimensions
	ErrInvalidScreen = errors.New("screen dimensions must be > 0")
)

// Screen is the world-space size of the image plane
type Screen struct {
	Width, Height float64
}

// Validate checks that both dimensions are positive and finite
func (s Screen) Validate() error {
	if !(s.Width > 0) || !(s.Height > 0) || math.IsInf(s.Width, 0) || math.IsInf(s.Height, 0) {
		return fmt.Errorf("%w: got %vx%v", ErrInvalidScreen, s.Width, s.Height)
	}
	return nil
}

// ImageView is the output resolution in pixels
type ImageView struct {
	Width, Height int
}

// Validate checks the resolution. Pixel spacing divides by width-1 and
// height-1, so both must be at least 2.
func (v ImageView) Validate() error {
	if v.Width < 2 || v.Height < 2 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidImageView, v.Width, v.Height)
	}
	return nil
}

// Pixels returns the total pixel count
func (v ImageView) Pixels() int {
	return v.Width * v.Height
}

// Camera describes the view: screen-plane normal (the look direction), up
// direction and image plane size
type Camera struct {
	Center core.Vec3
	Normal core.Vec3
	Up     core.Vec3
	Screen Screen
}

// NewCamera creates a new camera
func NewCamera(center, normal, up core.Vec3, screen Screen) Camera {
	return Camera{
		Center: center,
		Normal: normal,
		Up:     up,
		Screen: screen,
	}
}

// Basis returns the normalized right, up and forward axes of the camera
func (c Camera) Basis() (right, up, forward core.Vec3) {
	forward = c.Normal.Normalize()
	up = c.Up.Normalize()
	right = forward.Cross(up).Normalize()
	return right, up, forward
}

// Projection maps screen-plane coordinates to world-space ray directions
type Projection struct {
	matrix mgl64.Mat3x4
}

// NewProjection builds the camera projection: the inverse of the
// [right | up | forward] basis, with the raw camera normal as the affine offset.
func NewProjection(c Camera) (Projection, error) {
	if c.Normal.IsZero() || c.Up.IsZero() || !c.Normal.IsFinite() || !c.Up.IsFinite() {
		return Projection{}, fmt.Errorf("%w: normal %v, up %v", ErrDegenerateCamera, c.Normal, c.Up)
	}

	right, up, forward := c.Basis()
	basis := mgl64.Mat3FromCols(toMgl(right), toMgl(up), toMgl(forward))

	det := basis.Det()
	if math.Abs(det) < minBasisDeterminant || math.IsNaN(det) {
		return Projection{}, fmt.Errorf("%w: normal %v and up %v are collinear (det %g)",
			ErrDegenerateCamera, c.Normal, c.Up, det)
	}

	inverse := basis.Inv()
	matrix := mgl64.Mat3x4FromCols(inverse.Col(0), inverse.Col(1), inverse.Col(2), toMgl(c.Normal))

	return Projection{matrix: matrix}, nil
}

// CastRay returns the unit world-space direction through screen point (x, y)
func (p Projection) CastRay(x, y float64) core.Vec3 {
	v := p.matrix.Mul4x1(mgl64.Vec4{x, y, 0, 1})
	return core.NewVec3(v[0], v[1], v[2]).Normalize()
}

// Matrix returns the 3x4 projection matrix
func (p Projection) Matrix() mgl64.Mat3x4 {
	return p.matrix
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
