// Package config holds the run configuration of the eqpaths command and
// decodes it from an optional TOML file.
//
//	max_paths = 3
//	tolerance = 0.0
//	workers   = 4
//	format    = "text"   # or "json"
//	color     = false
//	log_level = "info"   # debug, info, warn, error
//
//	[search]
//	max_distance       = 100.0
//	inf_edge_threshold = 1e9
//
// Keys missing from the file keep the values of Default. Unknown keys are
// rejected so that typos do not go unnoticed.
package config
