// Package nodelink renders vampire trees as node-link diagrams.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(t, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tools. Layout is top-to-bottom (rankdir=TB), originals at the top.
//
// # Options
//
//   - Detailed: labels include conversion year and generation
//   - Highlight: vampires filled with an accent color
//
// # Dependencies
//
// SVG rendering runs Graphviz in-process through
// [github.com/goccy/go-graphviz]; no system Graphviz install is needed.
package nodelink
