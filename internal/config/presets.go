package config

import (
	"slices"

	"github.com/san-kum/algoviz/internal/input"
)

func intp(v int) *int { return &v }

var scenarioA = []int{5, 1, 4, 2, 8}

var Presets = map[string]map[string]*Config{
	"swap": {
		"first-pair": {Algorithm: "swap", SpeedMs: 800, Values: []int{5, 3, 8, 1, 6}, Swap: []int{0, 1}},
		"far-pair":   {Algorithm: "swap", SpeedMs: 800, Values: []int{5, 3, 8, 1, 6}, Swap: []int{2, 4}},
	},
	"bubble": {
		"scenario-a": {Algorithm: "bubble", SpeedMs: 500, Values: scenarioA},
		"reversed":   {Algorithm: "bubble", SpeedMs: 300, Values: []int{9, 8, 7, 6, 5, 4, 3, 2, 1}},
		"sorted":     {Algorithm: "bubble", SpeedMs: 300, Values: []int{1, 2, 3, 4, 5, 6}},
	},
	"selection": {
		"scenario-a": {Algorithm: "selection", SpeedMs: 500, Values: scenarioA},
	},
	"insertion": {
		"scenario-a":    {Algorithm: "insertion", SpeedMs: 500, Values: scenarioA},
		"nearly-sorted": {Algorithm: "insertion", SpeedMs: 400, Values: []int{1, 2, 4, 3, 5, 7, 6, 8}},
	},
	"merge": {
		"scenario-a": {Algorithm: "merge", SpeedMs: 500, Values: scenarioA},
		"duplicates": {Algorithm: "merge", SpeedMs: 400, Values: []int{3, 1, 3, 2, 1, 2, 3}},
	},
	"quick": {
		"scenario-a": {Algorithm: "quick", SpeedMs: 500, Values: scenarioA},
		"worst-case": {Algorithm: "quick", SpeedMs: 300, Values: []int{1, 2, 3, 4, 5, 6, 7, 8}},
	},
	"linear": {
		"found":   {Algorithm: "linear", SpeedMs: 400, Values: []int{42, 17, 85, 63, 29, 71}, Target: intp(63)},
		"missing": {Algorithm: "linear", SpeedMs: 400, Values: []int{42, 17, 85, 63, 29, 71}, Target: intp(50)},
	},
	"binary": {
		"scenario-b": {Algorithm: "binary", SpeedMs: 500, Values: []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, Target: intp(70)},
		"missing":    {Algorithm: "binary", SpeedMs: 500, Values: []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, Target: intp(75)},
	},
	"jump": {
		"found": {Algorithm: "jump", SpeedMs: 500, Values: []int{3, 8, 14, 21, 27, 33, 40, 46, 52, 59, 65, 71, 78, 84, 90, 97}, Target: intp(59)},
	},
	"interpolation": {
		"uniform":      {Algorithm: "interpolation", SpeedMs: 500, Values: []int{5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80}, Target: intp(45)},
		"all-equal":    {Algorithm: "interpolation", SpeedMs: 500, Values: []int{7, 7, 7, 7}, Target: intp(7)},
		"out-of-range": {Algorithm: "interpolation", SpeedMs: 500, Values: []int{5, 10, 15, 20}, Target: intp(99)},
	},
	"linkedlist": {
		"demo": {Algorithm: "linkedlist", SpeedMs: 500, Values: []int{15, 42, 8, 23, 4}, Target: intp(23)},
	},
	"dijkstra": {
		"scenario-c": {Algorithm: "dijkstra", SpeedMs: 800, Graph: input.DemoGraph(), Source: 0},
		"from-one":   {Algorithm: "dijkstra", SpeedMs: 800, Graph: input.DemoGraph(), Source: 1},
	},
	"kruskal": {
		"scenario-d": {Algorithm: "kruskal", SpeedMs: 800, Graph: input.DemoGraph()},
	},
}

func GetPreset(algorithm, preset string) *Config {
	algorithmPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	cfg, ok := algorithmPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(algorithm string) []string {
	algorithmPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algorithmPresets))
	for name := range algorithmPresets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
