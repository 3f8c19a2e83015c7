package wiregl

// Edge indexes a pair of vertices forming one wireframe line.
type Edge [2]uint8

// Mesh is an immutable wireframe model: a vertex table and the edges joining
// them.
//
// Invariant: every edge index is strictly less than len(Vertices). Meshes are
// compiled-in, hand-verified data and the renderer never validates indices at
// runtime; an out-of-range index is undefined behavior. Anyone extending a
// mesh must keep the tables consistent (the scene package tests do this for
// the built-in model).
type Mesh struct {
	Vertices []Vec3
	Edges    []Edge
}
