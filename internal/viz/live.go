package viz

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
)

const (
	tickRate        = time.Second / 30
	barHeight       = 10
	graphWidth      = 44
	graphHeight     = 12
	historyCapacity = 600
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

type editMode int

const (
	editNone editMode = iota
	editTarget
	editValues
	editAppend
	editDelete
)

var editPrompts = map[editMode]string{
	editTarget: "target",
	editValues: "values",
	editAppend: "append value",
	editDelete: "delete index",
}

// Model is the live view of one algorithm. It drives a playback controller
// from key presses and redraws from the controller's snapshot on every tick.
type Model struct {
	ctx   context.Context
	alg   *catalog.Algorithm
	ctrl  *playback.Controller
	list  *input.ListSource
	rng   *rand.Rand
	theme Theme

	snap     playback.Snapshot
	startErr error
	runID    string
	seen    int
	history []float64

	edit     editMode
	buf      string
	notice   string
	showHelp bool
}

// NewModel builds the live view. src must be the source ctrl was built
// with; list editing is enabled when it is an *input.ListSource.
func NewModel(ctx context.Context, alg *catalog.Algorithm, ctrl *playback.Controller, src input.Source, theme Theme) Model {
	m := Model{
		ctx:   ctx,
		alg:   alg,
		ctrl:  ctrl,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		theme: theme,
		seen:  -1,
	}
	if l, ok := src.(*input.ListSource); ok {
		m.list = l
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd { return tick() }

// Editing reports whether a text prompt currently owns the keyboard.
func (m Model) Editing() bool { return m.edit != editNone }

func (m Model) Theme() Theme { return m.theme }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.edit != editNone {
			m.updateEdit(msg)
			m.refresh()
			return m, nil
		}
		cmd := m.handleKey(msg.String())
		m.refresh()
		return m, cmd
	case TickMsg:
		m.refresh()
		return m, tick()
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	kind := m.ctrl.Producer().Kind()
	switch key {
	case "q", "ctrl+c":
		m.ctrl.Stop()
		return tea.Quit
	case "s", "enter":
		m.start()
	case "x":
		m.ctrl.Stop()
	case "r":
		m.report(m.ctrl.Reset())
	case "+", "=":
		m.ctrl.SetSpeed(input.ClampSpeed(m.ctrl.Speed() - input.SpeedStep))
	case "-", "_":
		m.ctrl.SetSpeed(input.ClampSpeed(m.ctrl.Speed() + input.SpeedStep))
	case "/":
		if m.alg.NeedsTarget {
			m.prompt(editTarget, "")
		}
	case "e":
		m.prompt(editValues, m.currentText())
	case "a":
		if m.list != nil {
			m.prompt(editAppend, "")
		}
	case "d":
		if m.list != nil {
			m.prompt(editDelete, "")
		}
	case "g":
		if kind == step.KindGraph {
			m.report(m.ctrl.SetSource(input.RandomGraph{Nodes: 6, Extra: 4, MaxWeight: 9, Rand: m.rng}))
		}
	case "t":
		m.theme = NextTheme(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	}
	return nil
}

func (m *Model) start() {
	if err := m.ctrl.Start(m.ctx); err != nil {
		m.notice = hint(err)
		return
	}
	m.notice = ""
}

func (m *Model) report(err error) {
	if err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = ""
}

func (m *Model) prompt(mode editMode, initial string) {
	m.edit, m.buf = mode, initial
}

func (m *Model) updateEdit(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		m.edit, m.buf = editNone, ""
	case tea.KeyEnter:
		m.commit()
		m.edit, m.buf = editNone, ""
	case tea.KeyBackspace:
		if r := []rune(m.buf); len(r) > 0 {
			m.buf = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.buf += string(msg.Runes)
	}
}

func (m *Model) commit() {
	text := strings.TrimSpace(m.buf)
	switch m.edit {
	case editTarget:
		v, err := strconv.Atoi(text)
		if err != nil {
			m.notice = "target must be an integer"
			return
		}
		m.ctrl.SetParams(m.ctrl.Snapshot().Params.WithTarget(v))
		m.notice = ""
	case editValues:
		m.report(m.replaceInput(text))
	case editAppend:
		v, err := strconv.Atoi(text)
		if err != nil {
			m.notice = "value must be an integer"
			return
		}
		m.list.Append(v)
		m.report(m.ctrl.Reset())
	case editDelete:
		i, err := strconv.Atoi(text)
		if err != nil {
			m.notice = "index must be an integer"
			return
		}
		if err := m.list.Delete(i); err != nil {
			m.notice = err.Error()
			return
		}
		m.report(m.ctrl.Reset())
	}
}

func (m *Model) replaceInput(text string) error {
	switch m.ctrl.Producer().Kind() {
	case step.KindGraph:
		edges, err := input.ParseEdges(text)
		if err != nil {
			return err
		}
		g := &step.Graph{Edges: edges}
		for _, e := range edges {
			g.Nodes = max(g.Nodes, e.From+1, e.To+1)
		}
		return m.ctrl.SetSource(input.GraphSource{Graph: g})
	case step.KindList:
		m.list = input.NewListSource(input.ParseValues(text))
		return m.ctrl.SetSource(m.list)
	default:
		return m.ctrl.SetSource(input.Fixed{Values: input.ParseValues(text), Sorted: m.alg.NeedsSorted})
	}
}

// currentText is the loaded input in the form the values prompt reads.
func (m *Model) currentText() string {
	in := m.snap.Input
	switch {
	case in.Graph != nil:
		return input.FormatEdges(in.Graph.Edges)
	case in.List != nil:
		return input.FormatValues(in.List.Values())
	default:
		return input.FormatValues(in.Values)
	}
}

func (m *Model) refresh() {
	m.snap = m.ctrl.Snapshot()
	m.startErr = m.startable()
	if m.snap.RunID != m.runID {
		m.runID, m.seen, m.history = m.snap.RunID, -1, nil
	}
	if m.snap.Index > m.seen && m.snap.Step.Graph == nil {
		m.seen = m.snap.Index
		st := m.snap.Step.Stats
		m.history = append(m.history, float64(st.Comparisons+st.Swaps))
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
	}
}

// startable answers what CanStart would from the snapshot alone, so drawing
// the view never loads input.
func (m *Model) startable() error {
	switch {
	case m.snap.Status == playback.Running:
		return playback.ErrAlreadyRunning
	case m.snap.LoadErr != nil:
		return m.snap.LoadErr
	}
	return m.ctrl.Producer().Validate(m.snap.Input, m.snap.Params)
}

func hint(err error) string {
	switch {
	case errors.Is(err, step.ErrMissingTarget):
		return "set a target with / first"
	case errors.Is(err, step.ErrEmptyInput):
		return "no input, enter values with e"
	case errors.Is(err, step.ErrUnsortedInput):
		return "values must be sorted ascending"
	case errors.Is(err, playback.ErrAlreadyRunning):
		return "already running, press x to stop"
	default:
		return err.Error()
	}
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(strings.ToUpper(m.alg.Title)) + "  " + subtle.Render(string(m.alg.Level)) + "\n")
	s.WriteString(m.statusLine() + "\n\n")
	s.WriteString(m.structure() + "\n")

	if ann := m.snap.Step.Annotation; ann != "" {
		s.WriteString(valueStyle.Render(ann) + "\n")
	}
	s.WriteString(m.stats())

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Operations"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if m.edit != editNone {
		s.WriteString("\n" + selectedStyle.Render(editPrompts[m.edit]+": ") + m.buf + "█\n")
	}
	if m.notice != "" {
		s.WriteString("\n" + noticeStyle.Render(m.notice) + "\n")
	}
	s.WriteString("\n" + Separator(48) + "\n" + m.keys())

	view := panelStyle.Render(s.String())
	if m.showHelp {
		return lipgloss.JoinHorizontal(lipgloss.Top, view, panelStyle.Render(m.help()))
	}
	return view
}

func (m Model) statusLine() string {
	var status string
	switch m.snap.Status {
	case playback.Running:
		status = statusRunning.Render("RUNNING")
	case playback.Stopped:
		status = statusStopped.Render("STOPPED")
	default:
		status = statusIdle.Render("IDLE")
		if m.snap.Outcome == playback.Completed {
			status = statusRunning.Render("DONE")
		}
	}
	line := fmt.Sprintf("%s  speed %dms  theme %s", status, m.snap.Speed.Milliseconds(), m.theme.Name)
	if m.snap.Index >= 0 {
		line += fmt.Sprintf("  step %d", m.snap.Index+1)
	}
	if t := m.snap.Params.Target; t != nil && m.alg.NeedsTarget {
		line += fmt.Sprintf("  target %d", *t)
	}
	return line
}

// structure draws the current step, or the loaded input before the first
// step of a run.
func (m Model) structure() string {
	st := m.snap.Step
	if m.snap.Index < 0 {
		st = initialStep(m.snap.Input)
	}
	switch m.ctrl.Producer().Kind() {
	case step.KindGraph:
		return RenderGraph(st.Graph, m.theme, graphWidth, graphHeight)
	case step.KindList:
		return RenderList(st.Array, m.theme)
	default:
		return RenderArray(st.Array, m.theme, barHeight)
	}
}

func initialStep(in step.Input) step.Step {
	var vals []int
	switch {
	case in.Graph != nil:
		return step.Step{Graph: in.Graph.Snapshot(), Index: -1}
	case in.List != nil:
		vals = in.List.Values()
	default:
		vals = in.Values
	}
	st := step.Step{Array: make([]step.Element, len(vals)), Index: -1}
	for i, v := range vals {
		st.Array[i] = step.Element{Value: v, Role: step.RoleDefault}
	}
	return st
}

func (m Model) stats() string {
	st := m.snap.Step
	var s strings.Builder
	if g := st.Graph; g != nil {
		if g.TotalWeight > 0 {
			s.WriteString(labelStyle.Render("Total weight") + valueStyle.Render(strconv.Itoa(g.TotalWeight)) + "\n")
		}
		return s.String()
	}
	s.WriteString(labelStyle.Render("Comparisons") + valueStyle.Render(strconv.Itoa(st.Stats.Comparisons)) + "\n")
	if st.Stats.Swaps > 0 {
		s.WriteString(labelStyle.Render("Swaps") + valueStyle.Render(strconv.Itoa(st.Stats.Swaps)) + "\n")
	}
	if n := len(st.Array); n > 0 && st.Has(step.RoleSorted) {
		var done int
		for _, e := range st.Array {
			if e.Role == step.RoleSorted {
				done++
			}
		}
		bar := ProgressBar(float64(done)/float64(n), 20)
		s.WriteString(labelStyle.Render("Sorted") + m.theme.RoleStyle(step.RoleSorted).Render(bar) + "\n")
	}
	return s.String()
}

func (m Model) keys() string {
	start := "s:start"
	if m.startErr != nil {
		start = disabledStyle.Render(start)
	}
	parts := []string{start, "x:stop", "r:reset", "+/-:speed", "e:edit"}
	if m.alg.NeedsTarget {
		parts = append(parts, "/:target")
	}
	if m.list != nil {
		parts = append(parts, "a:add", "d:delete")
	}
	if m.ctrl.Producer().Kind() == step.KindGraph {
		parts = append(parts, "g:random graph")
	}
	parts = append(parts, "t:theme", "?:help", "q:quit")
	return keyHint.Render(strings.Join(parts, "  "))
}

func (m Model) help() string {
	return titleStyle.Render("KEYS") + "\n\n" +
		"s, enter  start from the first step\n" +
		"x         stop\n" +
		"r         reset with fresh input\n" +
		"+ / -     faster / slower by 100ms\n" +
		"e         edit the input\n" +
		"/         set the search target\n" +
		"a / d     add / delete a list node\n" +
		"g         random graph\n" +
		"t         cycle themes\n" +
		"?         toggle this help\n" +
		"q         quit\n\n" +
		subtle.Render(m.alg.Info)
}

// RunLive shows m full screen until the user quits or ctx is cancelled.
func RunLive(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
