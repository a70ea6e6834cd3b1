package viz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
)

// roleMarks tag values in plain text output where colour is unavailable.
var roleMarks = map[step.Role]string{
	step.RoleComparing:  "?",
	step.RoleSwapped:    "!",
	step.RoleSorted:     "=",
	step.RoleExamining:  ">",
	step.RoleFound:      "@",
	step.RoleEliminated: "x",
	step.RoleVisited:    "v",
	step.RoleInMST:      "*",
	step.RoleCandidate:  "~",
}

// FormatStep renders a step as one line of plain text.
func FormatStep(s step.Step) string {
	var b strings.Builder
	if s.Graph != nil {
		b.WriteString(formatGraph(s.Graph))
	} else {
		b.WriteString("[")
		for i, e := range s.Array {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(e.Value))
			b.WriteString(roleMarks[e.Role])
		}
		b.WriteString("]")
		fmt.Fprintf(&b, " cmp=%d swp=%d", s.Stats.Comparisons, s.Stats.Swaps)
	}
	if s.Annotation != "" {
		b.WriteString(" | ")
		b.WriteString(s.Annotation)
	}
	if s.Terminal {
		b.WriteString(" (done)")
	}
	return b.String()
}

func formatGraph(g *step.GraphSnapshot) string {
	parts := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		parts[i] = fmt.Sprintf("%d:%s%s", n.ID, Distance(n.Distance), roleMarks[n.Role])
	}
	out := "{" + strings.Join(parts, " ") + "}"
	var mst int
	for _, e := range g.Edges {
		if e.Role == step.RoleInMST {
			mst++
		}
	}
	if mst > 0 || g.TotalWeight > 0 {
		out += fmt.Sprintf(" mst=%d edges weight=%d", mst, g.TotalWeight)
	}
	return out
}

// Distance formats a node distance, using ∞ for unreachable nodes.
func Distance(d int) string {
	if d == step.Unreachable {
		return "∞"
	}
	return strconv.Itoa(d)
}

// RenderArray draws one vertical bar per element, scaled so the largest
// magnitude fills height rows, with the values underneath.
func RenderArray(elems []step.Element, th Theme, height int) string {
	if len(elems) == 0 {
		return subtle.Render("(empty)")
	}
	height = max(height, 1)
	peak := 1
	for _, e := range elems {
		peak = max(peak, absInt(e.Value))
	}

	cellWidth := 1
	for _, e := range elems {
		cellWidth = max(cellWidth, len(strconv.Itoa(e.Value)))
	}
	cellWidth++

	bars := make([]int, len(elems))
	for i, e := range elems {
		bars[i] = max(int(math.Ceil(float64(absInt(e.Value))*float64(height)/float64(peak))), 1)
	}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		for i, e := range elems {
			cell := strings.Repeat(" ", cellWidth)
			if bars[i] >= row {
				cell = strings.Repeat("█", cellWidth-1) + " "
			}
			b.WriteString(th.RoleStyle(e.Role).Render(cell))
		}
		b.WriteByte('\n')
	}
	for _, e := range elems {
		b.WriteString(th.RoleStyle(e.Role).Render(fmt.Sprintf("%-*d", cellWidth, e.Value)))
	}
	b.WriteByte('\n')
	return b.String()
}

// RenderList draws the elements as a chain of boxed nodes.
func RenderList(elems []step.Element, th Theme) string {
	var b strings.Builder
	for _, e := range elems {
		b.WriteString(th.RoleStyle(e.Role).Render("[" + strconv.Itoa(e.Value) + "]"))
		b.WriteString(subtle.Render(" → "))
	}
	b.WriteString(subtle.Render("nil"))
	return b.String()
}

// RenderGraph lays the nodes out on an ellipse and draws every edge as a
// line in its role colour. Nodes are labelled with their id, and with their
// distance when any node carries one.
func RenderGraph(g *step.GraphSnapshot, th Theme, w, h int) string {
	if g == nil || len(g.Nodes) == 0 {
		return subtle.Render("(empty graph)")
	}
	c := NewCanvas(w, h)
	pos := layout(len(g.Nodes), w, h)

	for _, e := range g.Edges {
		if e.From < 0 || e.From >= len(pos) || e.To < 0 || e.To >= len(pos) {
			continue
		}
		a, z := pos[e.From], pos[e.To]
		c.DrawLine(a.x, a.y, z.x, z.y, e.Role)
	}
	for _, e := range g.Edges {
		if e.From < 0 || e.From >= len(pos) || e.To < 0 || e.To >= len(pos) {
			continue
		}
		a, z := pos[e.From], pos[e.To]
		mx, my := (a.x+z.x)/2, (a.y+z.y)/2
		c.Label(mx/2, my/4, strconv.Itoa(e.Weight), e.Role)
	}
	distances := false
	for _, n := range g.Nodes {
		distances = distances || n.Distance != 0
	}
	for i, n := range g.Nodes {
		label := "(" + strconv.Itoa(n.ID) + ")"
		if distances {
			label = "(" + strconv.Itoa(n.ID) + ":" + Distance(n.Distance) + ")"
		}
		col := pos[i].x/2 - len([]rune(label))/2
		c.Label(col, pos[i].y/4, label, n.Role)
	}
	return c.Render(th)
}

type point struct{ x, y int }

// layout places n points evenly on the largest ellipse that fits a w by h
// cell canvas, starting at the top, in sub-pixel coordinates.
func layout(n, w, h int) []point {
	cx, cy := float64(w), float64(h*2)
	rx, ry := float64(w)-6, float64(h*2)-4
	rx, ry = max(rx, 1), max(ry, 1)
	pts := make([]point, n)
	for i := range pts {
		a := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		pts[i] = point{
			x: int(math.Round(cx + rx*math.Cos(a))),
			y: int(math.Round(cy + ry*math.Sin(a))),
		}
	}
	return pts
}
