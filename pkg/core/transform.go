package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform maps local shape space to world space: scale, then rotate, then
// translate. Rays travel the other way to be intersected in local space.
type Transform struct {
	Translation Vec3
	Scale       Vec3
	rotation    mgl64.Quat
	inverse     mgl64.Quat
}

// IdentityTransform returns a transform that leaves everything in place
func IdentityTransform() Transform {
	return Transform{
		Scale:    NewVec3(1, 1, 1),
		rotation: mgl64.QuatIdent(),
		inverse:  mgl64.QuatIdent(),
	}
}

// NewTransform creates a transform from a translation, Euler rotation angles in
// radians (applied around X, then Y, then Z) and a per-axis scale
func NewTransform(translation, rotation, scale Vec3) Transform {
	q := mgl64.QuatRotate(rotation.Z, mgl64.Vec3{0, 0, 1}).
		Mul(mgl64.QuatRotate(rotation.Y, mgl64.Vec3{0, 1, 0})).
		Mul(mgl64.QuatRotate(rotation.X, mgl64.Vec3{1, 0, 0})).
		Normalize()

	return Transform{
		Translation: translation,
		Scale:       scale,
		rotation:    q,
		inverse:     q.Inverse(),
	}
}

// NewRigidTransform creates a transform without scaling
func NewRigidTransform(translation, rotation Vec3) Transform {
	return NewTransform(translation, rotation, NewVec3(1, 1, 1))
}

// Rotate applies only the rotation part of the transform
func (t Transform) Rotate(v Vec3) Vec3 {
	return fromMgl(t.rotation.Rotate(toMgl(v)))
}

// InverseRotate applies the inverse rotation
func (t Transform) InverseRotate(v Vec3) Vec3 {
	return fromMgl(t.inverse.Rotate(toMgl(v)))
}

// PointToWorld maps a local-space point to world space
func (t Transform) PointToWorld(p Vec3) Vec3 {
	return t.Rotate(p.MultiplyVec(t.Scale)).Add(t.Translation)
}

// PointToLocal maps a world-space point to local space
func (t Transform) PointToLocal(p Vec3) Vec3 {
	return t.InverseRotate(p.Subtract(t.Translation)).DivideVec(t.Scale)
}

// RayToLocal maps a world-space ray into local space. The local direction is
// not renormalized so that the ray parameter t is the same in both spaces.
func (t Transform) RayToLocal(ray Ray) Ray {
	return Ray{
		Origin:    t.PointToLocal(ray.Origin),
		Direction: t.InverseRotate(ray.Direction).DivideVec(t.Scale),
	}
}

// NormalToWorld maps a local-space surface normal to a unit world-space normal
func (t Transform) NormalToWorld(n Vec3) Vec3 {
	return t.Rotate(n.DivideVec(t.Scale)).Normalize()
}

// BoundsToWorld returns the world-space AABB enclosing a local-space AABB
func (t Transform) BoundsToWorld(box AABB) AABB {
	corners := box.Corners()
	for i := range corners {
		corners[i] = t.PointToWorld(corners[i])
	}
	return NewAABBFromPoints(corners[:]...)
}

// Rotate rotates the vector around X, Y, Z axes (in that order) by the given
// angles in radians
func (v Vec3) Rotate(rotation Vec3) Vec3 {
	return NewRigidTransform(Vec3{}, rotation).Rotate(v)
}

func toMgl(v Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}
