// Package render contains output backends for the scene model.
//
// The [svg] subpackage compiles scene trees into SVG documents. It is the
// only backend; the package level exists so that additional targets (for
// example rasterization) can live alongside it without touching the scene
// model.
package render
