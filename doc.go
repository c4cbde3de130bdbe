// Package netroute is an in-memory routing simulator for small computer
// networks: a thread-safe adjacency store plus the shortest-path and
// reachability engines that query it.
//
// What is in the box?
//
//	core/        Network store: dense node ids, weighted routes, transfer
//	             counters, removal with reindexing, read-only Topology views
//	bfs/         breadth-first reachability over a Topology
//	dijkstra/    shortest paths over non-negative routes
//	bellmanford/ shortest paths with negative routes and negative-cycle
//	             affected-set detection
//	transfer/    packet transfer simulation with progress reporting
//	simulator/   facade tying the engines to logging and metrics
//	config/      YAML configuration
//	logging/     log/slog construction
//	metrics/     Prometheus collectors
//	cmd/netroute command-line shell
//
// Quick ASCII example:
//
//	[0] ──4──▶ [1] ──3──▶ [2]
//	 └─────────10─────────▶┘
//
// Dijkstra from 0 to 2 answers 0 -> 1 -> 2 with distance 7.
//
// Node ids are dense: removing node k shifts every id above k down by one
// and rewrites all routes to match. Callers holding ids across a removal
// must renumber them.
//
//	go install github.com/katalvlaran/netroute/cmd/netroute@latest
package netroute
