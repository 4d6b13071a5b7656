// Package pose defines the payload family carried by pose-graph nodes and edges.
//
// Every payload is a plain value type:
//
//   - the zero value is the identity transform (no translation, no rotation,
//     no information attached);
//   - copying is value assignment (fixed-size arrays only, no pointers);
//   - Cost() maps the payload to a non-negative scalar used as an edge weight
//     by shortest-path solvers.
//
// Types:
//
//	Pose2D    – planar rigid transform (x, y, phi).
//	Pose3D    – spatial rigid transform (x, y, z, yaw, pitch, roll).
//	Pose2DInf – Pose2D mean with a 3×3 information matrix.
//	Pose3DInf – Pose3D mean with a 6×6 information matrix.
//
// Composition and inversion of transforms are intentionally not provided here;
// the graph and solver never interpret transform semantics beyond Cost().
package pose
