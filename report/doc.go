// Package report formats distinct-path results.
//
// Two emitters share the Emitter interface:
//
//   - Text writes the human-readable block
//
//     Paths from N0 to N3
//     Path 1: [0 1 3], cost: 2
//     Path 2: [0 2 3], cost: 2
//
//     or "No path from N0 to N3" for an unreachable pair. WithStyle adds
//     lipgloss colours for terminals.
//
//   - JSON writes one object per line:
//     {"source":0,"destination":3,"paths":[{"cost":2,"nodes":[0,1,3]}]}
//
// Summary prints the closing "Total time: <duration>" line of a batch run.
package report
