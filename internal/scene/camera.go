// Package scene supplies the camera transform the projection pipeline reads.
// The camera is a collaborator boundary: the pipeline queries matrices and
// never mutates camera state.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera holds the view and projection parameters.
type Camera struct {
	FOV       float64 // vertical field of view, degrees
	Aspect    float64
	NearPlane float64
	FarPlane  float64

	Eye    mgl64.Vec3
	Center mgl64.Vec3
	Up     mgl64.Vec3
}

// NewCamera returns a camera for the given viewport, positioned above and
// behind the terrain plane looking at its center.
func NewCamera(width, height int) *Camera {
	return &Camera{
		FOV:       60.0,
		Aspect:    float64(width) / float64(height),
		NearPlane: 0.1,
		FarPlane:  1000.0,
		Eye:       mgl64.Vec3{0, -14, 9},
		Center:    mgl64.Vec3{0, 0, 0},
		Up:        mgl64.Vec3{0, 0, 1},
	}
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.NearPlane, c.FarPlane)
}

// ViewMatrix returns the look-at view matrix.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Center, c.Up)
}

// ViewProjection returns the combined projection*view matrix the pipeline
// applies after the model transform.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}
