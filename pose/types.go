package pose

import "math"

// Payload is the capability every node/edge payload must provide.
// Implementations must be value types whose zero value is the identity.
//
// Cost must return a non-negative, finite number for well-formed payloads.
type Payload interface {
	Cost() float64
}

// Compile-time checks.
var (
	_ Payload = Pose2D{}
	_ Payload = Pose3D{}
	_ Payload = Pose2DInf{}
	_ Payload = Pose3DInf{}
)

// Pose2D is a planar rigid transform.
type Pose2D struct {
	X, Y float64 // translation
	Phi  float64 // heading, radians
}

// Cost returns the Euclidean length of the translation.
func (p Pose2D) Cost() float64 {
	return math.Hypot(p.X, p.Y)
}

// vec returns the pose as a 3-vector (x, y, phi).
func (p Pose2D) vec() [3]float64 {
	return [3]float64{p.X, p.Y, p.Phi}
}

// Pose3D is a spatial rigid transform with Euler angles.
type Pose3D struct {
	X, Y, Z          float64 // translation
	Yaw, Pitch, Roll float64 // radians
}

// Cost returns the Euclidean length of the translation.
func (p Pose3D) Cost() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// vec returns the pose as a 6-vector (x, y, z, yaw, pitch, roll).
func (p Pose3D) vec() [6]float64 {
	return [6]float64{p.X, p.Y, p.Z, p.Yaw, p.Pitch, p.Roll}
}

// Pose2DInf is a Pose2D mean with an attached 3×3 information matrix
// (inverse covariance) over (x, y, phi).
type Pose2DInf struct {
	Mean Pose2D
	Info [3][3]float64
}

// NewPose2DInf returns a Pose2DInf with the given mean and information matrix.
func NewPose2DInf(mean Pose2D, info [3][3]float64) Pose2DInf {
	return Pose2DInf{Mean: mean, Info: info}
}

// Cost returns the Mahalanobis norm sqrt(vᵀ·Info·v) of the mean.
// A zero information matrix falls back to Mean.Cost().
func (p Pose2DInf) Cost() float64 {
	if p.Info == ([3][3]float64{}) {
		return p.Mean.Cost()
	}
	v := p.Mean.vec()
	return mahalanobis(v[:], func(i, j int) float64 { return p.Info[i][j] })
}

// Pose3DInf is a Pose3D mean with an attached 6×6 information matrix over
// (x, y, z, yaw, pitch, roll).
type Pose3DInf struct {
	Mean Pose3D
	Info [6][6]float64
}

// NewPose3DInf returns a Pose3DInf with the given mean and information matrix.
func NewPose3DInf(mean Pose3D, info [6][6]float64) Pose3DInf {
	return Pose3DInf{Mean: mean, Info: info}
}

// Cost returns the Mahalanobis norm sqrt(vᵀ·Info·v) of the mean.
// A zero information matrix falls back to Mean.Cost().
func (p Pose3DInf) Cost() float64 {
	if p.Info == ([6][6]float64{}) {
		return p.Mean.Cost()
	}
	v := p.Mean.vec()
	return mahalanobis(v[:], func(i, j int) float64 { return p.Info[i][j] })
}

// Identity2DInfo returns a 3×3 identity information matrix scaled by w.
func Identity2DInfo(w float64) [3][3]float64 {
	var m [3][3]float64
	for i := range m {
		m[i][i] = w
	}
	return m
}

// Identity3DInfo returns a 6×6 identity information matrix scaled by w.
func Identity3DInfo(w float64) [6][6]float64 {
	var m [6][6]float64
	for i := range m {
		m[i][i] = w
	}
	return m
}

// mahalanobis computes sqrt(vᵀ·M·v). Quadratic forms that come out negative
// (M not positive semi-definite) are clamped to zero so Cost stays non-negative.
func mahalanobis(v []float64, m func(i, j int) float64) float64 {
	var q float64
	for i := range v {
		if v[i] == 0 {
			continue
		}
		for j := range v {
			q += v[i] * m(i, j) * v[j]
		}
	}
	if q <= 0 || math.IsNaN(q) {
		return 0
	}
	return math.Sqrt(q)
}
