// Package io provides JSON import and export for scene trees.
//
// # Overview
//
// This package serializes scenes to and from a simple JSON format. The
// format is designed for:
//
//   - Feeding the renderer from any tool that can emit JSON
//   - Caching of parsed scenes keyed by their serialized bytes
//   - Round-trip preservation: import, export, and re-import identically
//
// # JSON Format
//
// A document is an object with a required "scene" node and optional natural
// dimensions consulted when only one output dimension is requested:
//
//	{
//	  "natural_width": 200,
//	  "natural_height": 100,
//	  "scene": {
//	    "kind": "style",
//	    "style": {"fill": {"type": "solid", "color": [1, 0, 0, 1]}},
//	    "children": [
//	      {"kind": "path", "trails": [
//	        {"start": [0, 0], "closed": true, "segments": [
//	          {"line": [10, 0]}, {"line": [0, 10]},
//	          {"line": [-10, 0]}, {"line": [0, -10]}
//	        ]}
//	      ]}
//	    ]
//	  }
//	}
//
// # Node Kinds
//
// Every node object carries a "kind" discriminator:
//
//   - path: geometric leaf with "trails"
//   - text: text leaf with "content"
//   - image: raster leaf with "width", "height", "mime", base64 "data"
//   - style: "style" bag plus "children"
//   - transform: six-element "transform" matrix plus "children"
//   - link: hyperlink "href" plus "children"
//   - opacity: group "opacity" plus "children"
//   - group: "children" only
//
// An unrecognized kind or enumeration value is a hard error
// (errors.ErrCodeInvalidScene); the decoder never guesses a default.
//
// # Style Fields
//
// Every style field is optional and omitted when absent: fill, line,
// line_width, line_cap (butt|round|square), line_join (miter|round|bevel),
// fill_rule (nonzero|evenodd), dash ({array, offset}), opacity, font_size,
// font_slant (normal|italic|oblique), font_weight (normal|bold),
// font_family, miter_limit, clips (array of path trail lists, outermost
// first).
//
// Textures carry a "type" discriminator: solid (color [r,g,b,a] in 0-1),
// linear (stops/spread/transform/start/end), radial (stops/spread/transform/
// center0/radius0/center1/radius1).
//
// # Import and Export
//
// Use [ImportJSON]/[ReadJSON] to decode and [ExportJSON]/[WriteJSON] to
// encode. All functions create independent values; decoded scenes can be
// modified freely after import.
package io
