package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/viz"
)

// StepToSVG draws one step as an SVG image: bars for arrays and lists,
// nodes and edges for graphs. Colours come from the theme's roles.
func StepToSVG(s step.Step, width, height int, th viz.Theme) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, th.Background))

	if s.Graph != nil {
		graphSVG(&sb, s.Graph, width, height, th)
	} else {
		barsSVG(&sb, s.Array, width, height, th)
	}

	if s.Annotation != "" {
		sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" font-family="monospace" font-size="14" fill="%s">%s</text>
`, height-8, th.Text, html.EscapeString(s.Annotation)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func barsSVG(sb *strings.Builder, elems []step.Element, width, height int, th viz.Theme) {
	if len(elems) == 0 {
		return
	}
	peak := 1
	for _, e := range elems {
		peak = max(peak, int(math.Abs(float64(e.Value))))
	}

	// room for the value labels below and the annotation
	top, bottom := 10.0, float64(height)-44
	slot := float64(width) / float64(len(elems))
	barW := slot * 0.8

	for i, e := range elems {
		h := math.Max(math.Abs(float64(e.Value))/float64(peak)*(bottom-top), 2)
		x := float64(i)*slot + (slot-barW)/2
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, bottom-h, barW, h, th.RoleColor(e.Role)))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="12" text-anchor="middle" fill="%s">%d</text>
`, x+barW/2, bottom+14, th.Text, e.Value))
	}
}

func graphSVG(sb *strings.Builder, g *step.GraphSnapshot, width, height int, th viz.Theme) {
	n := len(g.Nodes)
	if n == 0 {
		return
	}
	cx, cy := float64(width)/2, float64(height-30)/2
	r := math.Min(cx, cy) - 30
	pos := make([][2]float64, n)
	for i := range pos {
		a := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		pos[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}

	for _, e := range g.Edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			continue
		}
		a, z := pos[e.From], pos[e.To]
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
`, a[0], a[1], z[0], z[1], th.RoleColor(e.Role)))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="12" fill="%s">%d</text>
`, (a[0]+z[0])/2+4, (a[1]+z[1])/2-4, th.Muted, e.Weight))
	}

	for i, node := range g.Nodes {
		p := pos[i]
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="16" fill="%s"/>
`, p[0], p[1], th.RoleColor(node.Role)))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="12" text-anchor="middle" fill="%s">%d</text>
`, p[0], p[1]+4, th.Background, node.ID))
		if node.Distance != 0 {
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="11" text-anchor="middle" fill="%s">%s</text>
`, p[0], p[1]-22, th.Text, html.EscapeString(viz.Distance(node.Distance))))
		}
	}

	if g.TotalWeight > 0 {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="20" font-family="monospace" font-size="14" text-anchor="end" fill="%s">total weight %d</text>
`, width-8, th.Accent, g.TotalWeight))
	}
}
