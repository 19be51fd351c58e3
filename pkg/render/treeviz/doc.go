// Package treeviz draws syntax trees as node-link diagrams.
//
// # Overview
//
// Every tree node becomes a box labelled with its kind and identifying
// scalars (names, operators, literal values). Edges point from a parent to its
// children and are labelled with the field they come from, e.g. "body[1]" or
// "left". The diagram helps debug trees produced by external parsers before
// they are rendered back to source.
//
// # Usage
//
//	g := treeviz.Build(tree, treeviz.Options{MaxDepth: 6})
//	dot := treeviz.ToDOT(g)
//	svg, err := treeviz.RenderSVG(ctx, dot)
//
// [Render] bundles these steps and also produces PDF and PNG through
// [render.ToPDF] and [render.ToPNG].
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [render.ToPDF]: github.com/matzehuels/pyunparse/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/pyunparse/pkg/render.ToPNG
package treeviz
