// Package pkg provides the core libraries for scenesvg.
//
// # Overview
//
// scenesvg compiles scene-graph documents into standalone SVG files. The
// pkg directory is organized into the following areas:
//
//  1. [scene] - The scene model (nodes, trails, styles, textures)
//  2. [geom] - Affine transforms and points
//  3. [render/svg] - The scene-to-SVG compiler
//  4. [io] - JSON import and export for scene documents
//  5. [pipeline] - Orchestration (load → compile → serialize) with caching
//  6. [cache] - Artifact cache backends (file, Redis, null)
//  7. [fonts] - @font-face definitions for self-contained documents
//
// # Architecture
//
// The typical data flow through scenesvg:
//
//	Scene JSON document
//	         ↓
//	    [io] package (decode into the scene model)
//	         ↓
//	    [scene] package (node tree + styles + trails)
//	         ↓
//	    [render/svg] package (compile + serialize)
//	         ↓
//	    SVG output
//
// # Quick Start
//
// Load a scene and render it to SVG:
//
//	import (
//	    sceneio "github.com/matzehuels/scenesvg/pkg/io"
//	    "github.com/matzehuels/scenesvg/pkg/render/svg"
//	)
//
//	sc, err := sceneio.ImportJSON("scene.json")
//	if err != nil {
//	    return err
//	}
//	doc, err := svg.Render(sc.Root, svg.Options{})
//	if err != nil {
//	    return err
//	}
//	err = doc.WriteFile("scene.svg", false)
//
// Or use the pipeline for caching and instrumentation:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Path: "scene.json"})
package pkg
