// Package scene holds the fixed wireframe model baked into the program.
package scene

import "homestead/wiregl"

// VertexCount and EdgeCount size the fixed tables below. The per-frame
// screen buffer is dimensioned from VertexCount.
const (
	VertexCount = 57
	EdgeCount   = 68
)

// Homestead is the demo model: a house with a door, two windows and a roof,
// a car, a tree, a fence and a welcome mat.
//
// The tables are immutable for the lifetime of the process. Every edge index
// is hand-verified to be in range; the renderer relies on that without
// checking (see wiregl.Mesh). TestEdgeIndicesInRange re-verifies the data,
// so extend both tables together and keep the test passing.
var Homestead = wiregl.Mesh{
	Vertices: homesteadVerts[:],
	Edges:    homesteadEdges[:],
}

var homesteadVerts = [VertexCount]wiregl.Vec3{
	// Cube
	wiregl.V3(0x800, 0x800, 0x800),
	wiregl.V3(-0x800, 0x800, 0x800),
	wiregl.V3(-0x800, -0x800, 0x800),
	wiregl.V3(0x800, -0x800, 0x800),
	wiregl.V3(0x800, 0x800, -0x800),
	wiregl.V3(-0x800, 0x800, -0x800),
	wiregl.V3(-0x800, -0x800, -0x800),
	wiregl.V3(0x800, -0x800, -0x800),

	// Roof
	wiregl.V3(0x000, -0x1400, 0x000),

	// Door
	wiregl.V3(-0x100, 0x800, -0x800),
	wiregl.V3(-0x600, 0x800, -0x800),
	wiregl.V3(-0x600, 0x200, -0x800),
	wiregl.V3(-0x100, 0x200, -0x800),

	// Front window
	wiregl.V3(0x500, -0x200, -0x800),
	wiregl.V3(0x200, -0x200, -0x800),
	wiregl.V3(0x200, -0x500, -0x800),
	wiregl.V3(0x500, -0x500, -0x800),

	// Left window
	wiregl.V3(-0x800, 0x500, 0x200),
	wiregl.V3(-0x800, 0x500, 0x500),
	wiregl.V3(-0x800, 0x200, 0x500),
	wiregl.V3(-0x800, 0x200, 0x200),

	// Car
	wiregl.V3(-0x800, 0x800, 0xb00),
	wiregl.V3(0x800, 0x800, 0xb00),
	wiregl.V3(0x800, 0x500, 0xb00),
	wiregl.V3(0x400, 0x500, 0xb00),
	wiregl.V3(0x200, 0x200, 0xb00),
	wiregl.V3(-0x600, 0x200, 0xb00),
	wiregl.V3(-0x800, 0x500, 0xb00),
	wiregl.V3(-0x800, 0x800, 0x1200),
	wiregl.V3(0x800, 0x800, 0x1200),
	wiregl.V3(0x800, 0x500, 0x1200),
	wiregl.V3(0x400, 0x500, 0x1200),
	wiregl.V3(0x200, 0x200, 0x1200),
	wiregl.V3(-0x600, 0x200, 0x1200),
	wiregl.V3(-0x800, 0x500, 0x1200),

	// Tree
	wiregl.V3(0x1000, 0x800, 0x000),
	wiregl.V3(0x1000, -0x1400, 0x000),
	wiregl.V3(0x1000, 0x200, 0x000), // Branch base
	wiregl.V3(0x1400, -0x1000, 0x000),
	wiregl.V3(0xc00, -0x1000, 0x000),
	wiregl.V3(0x1000, -0x1000, 0x400),
	wiregl.V3(0x1000, -0x1000, -0x400),

	// Fence
	wiregl.V3(-0x800, 0x800, 0x000),
	wiregl.V3(-0x1400, 0x800, 0x000),
	wiregl.V3(-0x1400, 0x200, 0x000),
	wiregl.V3(-0x1200, 0x000, 0x000),
	wiregl.V3(-0x1000, 0x200, 0x000),
	wiregl.V3(-0xe00, 0x000, 0x000),
	wiregl.V3(-0xc00, 0x200, 0x000),
	wiregl.V3(-0xa00, 0x000, 0x000),
	wiregl.V3(-0x800, 0x200, 0x000),
	wiregl.V3(-0x1000, 0x800, 0x000),
	wiregl.V3(-0xc00, 0x800, 0x000),

	// Welcome mat
	wiregl.V3(-0x100, 0x800, -0x900),
	wiregl.V3(-0x600, 0x800, -0x900),
	wiregl.V3(-0x600, 0x800, -0xc00),
	wiregl.V3(-0x100, 0x800, -0xc00),
}

var homesteadEdges = [EdgeCount]wiregl.Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
	{2, 8}, {3, 8}, {6, 8}, {7, 8}, // Roof
	{10, 11}, {11, 12}, {12, 9}, // Door
	{13, 14}, {14, 15}, {15, 16}, {16, 13}, // Front window
	{17, 18}, {18, 19}, {19, 20}, {20, 17}, // Left window
	{21, 22}, {22, 23}, {23, 24}, {24, 25}, {25, 26}, {26, 27}, {27, 21}, // Car inner side
	{28, 29}, {29, 30}, {30, 31}, {31, 32}, {32, 33}, {33, 34}, {34, 28}, // Car outer side
	{21, 28}, {22, 29}, {23, 30}, {24, 31}, {25, 32}, {26, 33}, {27, 34}, // Car body
	{35, 36}, {37, 38}, {37, 39}, {37, 40}, {37, 41}, // Tree
	{42, 43}, {43, 44}, {44, 45}, {45, 46}, {46, 47}, {47, 48}, {48, 49}, {49, 50}, {50, 42}, {46, 51}, {48, 52}, // Fence
	{53, 54}, {54, 55}, {55, 56}, {56, 53}, // Welcome mat
}
