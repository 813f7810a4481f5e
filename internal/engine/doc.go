// Package engine orchestrates a scan: file discovery, detector execution
// with per-invocation fault isolation, finding assembly, and policy
// application. Identical source plus identical review config yields a
// byte-identical report, including under parallel-by-file execution.
package engine
