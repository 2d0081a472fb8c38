// Package navgraph is a path-search engine over graphs of 3D-positioned vertices.
//
// A Graph is an ordered, index-addressed set of vertices with directed
// adjacency lists. Mutations (AddVertex, InsertVertex, RemoveVertex) keep
// every link pointing at the same vertex by renumbering references.
//
// Two engines are available:
//
//   - Search: A* with a binary-heap frontier and one best-known score per
//     vertex. Optimal within its cost model.
//   - SearchBounded: best-first search over path prefixes with a fixed
//     expansion budget. Not optimal, but its cost does not grow with the graph.
//
// Both return waypoints ordered from the start vertex to the last vertex
// reached. When the goal cannot be reached the result is Partial and leads as
// close to the goal as the search could get. Searching an empty graph fails
// with ErrEmptyGraph.
//
// Edge cost is the squared distance between vertices scaled by the target
// vertex's Penalty, and the heuristic is the squared distance to the goal.
// This is a deliberate simplification: the heuristic is not an admissible
// bound once penalties drop below 1.
package navgraph
