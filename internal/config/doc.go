// Package config loads batch files that describe several expressions to
// build in one run.
//
// Batch files are HCL. Each top-level `expression` block names one build:
//
//	expression "binary" {
//	  pattern = "(a|b)*.a.b.b"
//	  package = "tables"
//	  output  = "binary_dfa.go"
//	}
//
// Attributes may reference variables supplied on the command line as
// `var.<name>`.
package config
