// Package core is the stable embedding API for other programs. It re-exports
// the internal engine and report types behind a fixed import path.
package core
