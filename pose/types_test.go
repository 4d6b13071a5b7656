package pose_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/posegraph/pose"
)

func TestZeroValueIsIdentity(t *testing.T) {
	assert.Equal(t, 0.0, pose.Pose2D{}.Cost())
	assert.Equal(t, 0.0, pose.Pose3D{}.Cost())
	assert.Equal(t, 0.0, pose.Pose2DInf{}.Cost())
	assert.Equal(t, 0.0, pose.Pose3DInf{}.Cost())
}

func TestPose2D_Cost(t *testing.T) {
	p := pose.Pose2D{X: 3, Y: 4, Phi: math.Pi}
	assert.InDelta(t, 5.0, p.Cost(), 1e-12, "heading must not contribute")
}

func TestPose3D_Cost(t *testing.T) {
	p := pose.Pose3D{X: 2, Y: 3, Z: 6, Yaw: 1}
	assert.InDelta(t, 7.0, p.Cost(), 1e-12)
}

func TestPose2DInf_ZeroInfoFallsBackToTranslation(t *testing.T) {
	p := pose.NewPose2DInf(pose.Pose2D{X: 3, Y: 4}, [3][3]float64{})
	assert.InDelta(t, 5.0, p.Cost(), 1e-12)
}

func TestPose2DInf_Mahalanobis(t *testing.T) {
	// diag(4,4,1) over (3,4,0): sqrt(4*9 + 4*16) = 10
	info := [3][3]float64{{4, 0, 0}, {0, 4, 0}, {0, 0, 1}}
	p := pose.NewPose2DInf(pose.Pose2D{X: 3, Y: 4}, info)
	assert.InDelta(t, 10.0, p.Cost(), 1e-12)

	// Rotation is weighted too.
	p.Mean.Phi = 2
	assert.InDelta(t, math.Sqrt(104), p.Cost(), 1e-12)
}

func TestPose3DInf_Mahalanobis(t *testing.T) {
	p := pose.NewPose3DInf(pose.Pose3D{X: 1, Y: 2, Z: 2}, pose.Identity3DInfo(9))
	assert.InDelta(t, 9.0, p.Cost(), 1e-12)
}

func TestMahalanobis_IndefiniteClampedToZero(t *testing.T) {
	info := [3][3]float64{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}}
	p := pose.NewPose2DInf(pose.Pose2D{X: 1, Y: 1}, info)
	assert.Equal(t, 0.0, p.Cost())
}

func TestCopyIsIndependent(t *testing.T) {
	a := pose.NewPose2DInf(pose.Pose2D{X: 1}, pose.Identity2DInfo(1))
	b := a
	b.Info[0][0] = 100
	assert.Equal(t, 1.0, a.Info[0][0], "payloads are value types")
}
