// Package routegraph finds shortest routes in weighted road networks.
//
// A network is an undirected graph whose vertices are named locations and
// whose edges are roads carrying a non-negative length. The module is split
// into small packages:
//
//	core/      the thread-safe Graph: vertices, edges, neighbor snapshots
//	dijkstra/  shortest path and full distance tables
//	bfs/       hop-count traversal and connected components
//	mst/       minimum spanning forest (the network backbone)
//	network/   YAML network documents and the built-in Coclé network
//	cmd/routegraph  command line front end
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("Penonomé", "Universidad", 4.5)
//	_ = g.AddEdge("Universidad", "Antón", 13)
//	res, err := dijkstra.ShortestPath(g, "Penonomé", "Antón")
//	// res.Distance == 17.5, res.Path == [Penonomé Universidad Antón]
//
// A missing location is core.ErrVertexNotFound; locations in different
// components yield dijkstra.ErrNoPath, which callers usually report as
// "no route" rather than a failure.
package routegraph
