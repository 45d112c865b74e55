package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/bloodline/pkg/lineage"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the conversion year and generation to each label.
	// When false, only the vampire's name is shown.
	Detailed bool

	// Highlight lists vampires drawn with a filled accent color, e.g. two
	// query vampires and their closest common ancestor.
	Highlight []lineage.ID
}

// ToDOT converts a vampire tree to Graphviz DOT format. Every vampire in the
// arena is emitted, so trees with several originals render as a forest.
// Edges point from creator to offspring in the order offspring were added.
//
// Node identifiers are derived from IDs rather than names, so vampires
// sharing a name still render as separate boxes.
func ToDOT(t *lineage.Tree, opts Options) string {
	highlight := make(map[lineage.ID]bool, len(opts.Highlight))
	for _, id := range opts.Highlight {
		highlight[id] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for i := range t.Len() {
		id := lineage.ID(i)
		v, _ := t.Vampire(id)
		label := fmtLabel(t, id, v, opts.Detailed)
		attrs := fmtAttrs(v, label, highlight[id])
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeName(id), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i := range t.Len() {
		for _, child := range t.Offspring(lineage.ID(i)) {
			fmt.Fprintf(&buf, "  %s -> %s;\n", nodeName(lineage.ID(i)), nodeName(child))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeName(id lineage.ID) string {
	return "v" + strconv.Itoa(int(id))
}

func fmtLabel(t *lineage.Tree, id lineage.ID, v lineage.Vampire, detailed bool) string {
	if !detailed {
		return v.Name
	}
	return fmt.Sprintf("%s\nyear: %d\ngeneration: %d", v.Name, v.YearConverted, t.Generation(id))
}

func fmtAttrs(v lineage.Vampire, label string, highlighted bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case highlighted:
		attrs = append(attrs, "fillcolor=\"#c0392b\"", "fontcolor=white")
	case v.IsOriginal():
		attrs = append(attrs, "penwidth=2")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one whose
// width and height match the viewBox, so the image scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
