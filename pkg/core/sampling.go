package core

import (
	"math"
	"math/rand"
)

// Vec2 represents a pair of sample values
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sampler provides random sampling for rendering algorithms.
// A sampler is owned by exactly one worker and is not safe for concurrent use.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own deterministic source
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y

	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// RandomInHemisphere draws unit vectors until one lies strictly on the side of
// the normal. The distribution is uniform over the hemisphere, not
// cosine-weighted.
func RandomInHemisphere(normal Vec3, sampler Sampler) Vec3 {
	for {
		candidate := SampleOnUnitSphere(sampler.Get2D())
		if candidate.Dot(normal) > 0 {
			return candidate
		}
	}
}

// RandomInUnitDisk generates a random point in the unit disk on the XY plane
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.Dot(p) <= 1.0 {
			return p
		}
	}
}
