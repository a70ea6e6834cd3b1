package viz

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/playback"
)

var (
	menuTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	menuSub    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuLevel  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00")).Bold(true)
	menuCursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	menuName   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuDesc   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	menuIdle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuKey    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

// Options configure the controllers the menu builds.
type Options struct {
	Theme    Theme
	Rand     *rand.Rand
	Playback []playback.Option
}

// App lists the registered algorithms by level and opens a live view for
// the chosen one. Esc in the live view returns to the list.
type App struct {
	ctx    context.Context
	opts   Options
	items  []*catalog.Algorithm
	cursor int
	theme  Theme

	inLive  bool
	ticking bool
	live    Model
}

func NewApp(ctx context.Context, reg *catalog.Registry, opts Options) App {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Theme.Name == "" {
		opts.Theme = ThemeClassic
	}
	var items []*catalog.Algorithm
	for _, l := range catalog.Levels {
		items = append(items, reg.ByLevel(l)...)
	}
	return App{ctx: ctx, opts: opts, items: items, theme: opts.Theme}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.inLive {
			if msg.String() == "esc" && !a.live.Editing() {
				a.live.ctrl.Stop()
				a.theme = a.live.Theme()
				a.inLive = false
				return a, nil
			}
			return a.forward(msg)
		}
		return a.menuKey(msg)
	case TickMsg:
		if !a.inLive {
			a.ticking = false
			return a, nil
		}
		return a.forward(msg)
	}
	if a.inLive {
		return a.forward(msg)
	}
	return a, nil
}

func (a App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.live.Update(msg)
	a.live = next.(Model)
	return a, cmd
}

func (a App) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.items)-1 {
			a.cursor++
		}
	case "enter", " ":
		if len(a.items) == 0 {
			return a, nil
		}
		return a.open(a.items[a.cursor])
	}
	return a, nil
}

func (a App) open(alg *catalog.Algorithm) (tea.Model, tea.Cmd) {
	src := alg.Default(a.opts.Rand)
	ctrl := alg.Controller(src, a.opts.Playback...)
	err := ctrl.Reset()

	a.live = NewModel(a.ctx, alg, ctrl, src, a.theme)
	if err != nil {
		a.live.notice = err.Error()
	}
	a.inLive = true
	if a.ticking {
		return a, nil
	}
	a.ticking = true
	return a, tick()
}

func (a App) View() string {
	if a.inLive {
		return a.live.View() + "\n" + menuSub.Render("esc: back to menu")
	}
	return a.viewMenu()
}

func (a App) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render("ALGOVIZ") + "\n    " + menuSub.Render("step by step algorithm playback") + "\n    " + menuSub.Render("───────────────────────────────") + "\n")
	var level catalog.Level
	for i, alg := range a.items {
		if alg.Level != level {
			level = alg.Level
			b.WriteString("\n    " + menuLevel.Render(strings.ToUpper(string(level))) + "\n")
		}
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", menuCursor.Render("▸"), menuName.Render(fmt.Sprintf("%-24s", alg.Title)), menuDesc.Render(truncate(alg.Info, 48))))
		} else {
			b.WriteString(fmt.Sprintf("      %s\n", menuIdle.Render(alg.Title)))
		}
	}
	b.WriteString("\n    " + menuKey.Render("j/k") + menuIdle.Render(" navigate  ") + menuKey.Render("enter") + menuIdle.Render(" select  ") + menuKey.Render("q") + menuIdle.Render(" quit") + "\n")
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// RunInteractive shows the algorithm menu full screen.
func RunInteractive(ctx context.Context, reg *catalog.Registry, opts Options) error {
	p := tea.NewProgram(NewApp(ctx, reg, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
