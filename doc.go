// Package gridpath is a step-by-step shortest-path visualiser for 2D
// grids: an incremental Dijkstra that can be advanced one extraction at a
// time, and a marker that paints every tied shortest path afterwards.
//
// What is in the box?
//
//	gridgraph/     grid model: cells, 8-way moves with the corner rule,
//	                text format, editing, save/load
//	dijkstra/      step-able engine (Init, Step, Run) and path marker
//	bfs/           move-count reachability over the same moves
//	render/        lipgloss palette and distance gradient
//	metrics/       Prometheus collectors fed by engine hooks
//	config/        YAML settings with validation
//	cmd/gridpath/  terminal UI (bubbletea) and headless runner
//
// Quick ASCII example:
//
//	A * *        A o .
//	* X *   →    o X o
//	* * B        . o B
//
// Both routes around the obstacle cost 2+√2 and both are marked.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
