package renderer

import (
	"errors"
	"math"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// ErrDegenerateCamera is returned when the view vectors cannot form an orthonormal basis
var ErrDegenerateCamera = errors.New("degenerate camera view vectors")

// CameraConfig describes camera position, lens and shutter
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction (view-up)
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter, 0 for a pinhole camera
	FocusDistance float64   // Distance to the plane of perfect focus
	Time0         float64   // Shutter open
	Time1         float64   // Shutter close
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// NewCamera builds the camera basis and image plane from the configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	view := config.LookFrom.Subtract(config.LookAt)
	if view.LengthSquared() == 0 {
		return nil, ErrDegenerateCamera
	}
	w := view.Normalize()
	side := config.Up.Cross(w)
	if side.LengthSquared() == 0 {
		return nil, ErrDegenerateCamera
	}
	u := side.Normalize()
	v := w.Cross(u)

	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight
	focusDist := config.FocusDistance
	if focusDist <= 0 {
		focusDist = 1.0
	}

	origin := config.LookFrom
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * focusDist)).
		Subtract(v.Multiply(halfHeight * focusDist)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focusDist),
		vertical:        v.Multiply(2 * halfHeight * focusDist),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
	}, nil
}

// GetRay generates a ray for image plane coordinates (s, t) where 0 <= s,t <= 1
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	time := c.time0 + sampler.Get1D()*(c.time1-c.time0)

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRayAt(origin, direction, time)
}

// GetCameraForward returns the direction the camera is looking
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}
