// Package builder assembles closed triangulations from explicit cell lists,
// in the same "functional-options + Constructor" style for every fixture.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build(con, opts...):  new core.Triangulation, resolved builderConfig, one Constructor.
//     – Constructor:          func(*core.Triangulation, builderConfig) error.
//   - Constructors:
//     – Soup(points, tets):   general tetrahedron soup → closed triangulation.
//     – CanonicalBipyramid(): the six-point, four-cell fixture around one edge.
//     – AxialBipyramid(n):    n cells around the axis of an n-gon bipyramid.
//     – Tetrahedron():        one finite cell closed by four infinite ones.
//   - Options (panic on meaningless values, never at build time):
//     – WithScale(s), WithOrigin(p), WithInfo(fn).
//
// Guarantees:
//
//   - Every finite cell is positively oriented (geometry.Orient3D > 0).
//   - Every hull facet is closed by one infinite cell (∞, x, y, z), so the
//     result passes core's IsValid.
//   - Deterministic: equal inputs and options produce equal handles.
//
// Vertex IDs follow input order: point i becomes VertexID(i+1), because
// VertexID 0 is the vertex at infinity.
package builder
