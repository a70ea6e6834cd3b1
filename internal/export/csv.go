package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
)

var csvHeader = []string{
	"step", "terminal", "index", "comparisons", "swaps", "total_weight", "annotation", "values", "roles",
}

// WriteCSV writes one row per step. Array steps list element values; graph
// steps list node distances, with "inf" for unreachable nodes.
func WriteCSV(w io.Writer, steps []step.Step) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, s := range steps {
		vals, roles := columns(s)
		var weight int
		if s.Graph != nil {
			weight = s.Graph.TotalWeight
		}
		row := []string{
			strconv.Itoa(i),
			strconv.FormatBool(s.Terminal),
			strconv.Itoa(s.Index),
			strconv.Itoa(s.Stats.Comparisons),
			strconv.Itoa(s.Stats.Swaps),
			strconv.Itoa(weight),
			s.Annotation,
			vals,
			roles,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func columns(s step.Step) (string, string) {
	var vals, roles []string
	if s.Graph != nil {
		for _, n := range s.Graph.Nodes {
			d := "inf"
			if n.Distance != step.Unreachable {
				d = strconv.Itoa(n.Distance)
			}
			vals = append(vals, d)
			roles = append(roles, string(n.Role))
		}
	} else {
		for _, e := range s.Array {
			vals = append(vals, strconv.Itoa(e.Value))
			roles = append(roles, string(e.Role))
		}
	}
	return strings.Join(vals, " "), strings.Join(roles, " ")
}
