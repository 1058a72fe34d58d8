package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/boardgraph/pkg/graph"
	"github.com/matzehuels/boardgraph/pkg/relation"
)

var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorGray)
	listDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore <fen>",
		Short: "Browse the relation graphs of a position interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			fen := args[0]
			// Fail fast on a bad position instead of inside the TUI.
			if _, err := runner.GetNodesAndEdges(ctx, fen, string(relation.ModeNone)); err != nil {
				return err
			}

			load := func(m relation.Mode) (graph.Result, error) {
				return runner.GetNodesAndEdges(ctx, fen, string(m))
			}
			p := tea.NewProgram(newExploreModel(fen, load), tea.WithContext(ctx), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return context.Cause(ctx)
			}
			return err
		},
	}
}

// loadedMsg delivers the result of one mode.
type loadedMsg struct {
	mode relation.Mode
	res  graph.Result
	err  error
}

// ExploreModel is the bubbletea model behind "boardgraph explore". Results
// are loaded lazily, once per mode.
type ExploreModel struct {
	FEN     string
	Modes   []relation.Mode
	Current int
	Offset  int
	Height  int

	results map[relation.Mode]graph.Result
	errs    map[relation.Mode]error
	load    func(relation.Mode) (graph.Result, error)
}

func newExploreModel(fen string, load func(relation.Mode) (graph.Result, error)) ExploreModel {
	return ExploreModel{
		FEN:     fen,
		Modes:   relation.Modes,
		Height:  15,
		results: make(map[relation.Mode]graph.Result),
		errs:    make(map[relation.Mode]error),
		load:    load,
	}
}

func (m ExploreModel) mode() relation.Mode { return m.Modes[m.Current] }

func (m ExploreModel) loadCmd(mode relation.Mode) tea.Cmd {
	return func() tea.Msg {
		res, err := m.load(mode)
		return loadedMsg{mode: mode, res: res, err: err}
	}
}

func (m ExploreModel) Init() tea.Cmd {
	return m.loadCmd(m.mode())
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.errs[msg.mode] = msg.err
		} else {
			m.results[msg.mode] = msg.res
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			return m.switchTo((m.Current + 1) % len(m.Modes))
		case "shift+tab", "left", "h":
			return m.switchTo((m.Current + len(m.Modes) - 1) % len(m.Modes))
		case "up", "k":
			if m.Offset > 0 {
				m.Offset--
			}
		case "down", "j":
			if m.Offset < len(m.results[m.mode()].Edges)-m.Height {
				m.Offset++
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-12, 5)
	}
	return m, nil
}

func (m ExploreModel) switchTo(i int) (tea.Model, tea.Cmd) {
	m.Current = i
	m.Offset = 0
	mode := m.mode()
	if _, ok := m.results[mode]; ok {
		return m, nil
	}
	if _, ok := m.errs[mode]; ok {
		return m, nil
	}
	return m, m.loadCmd(mode)
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("boardgraph explore"))
	b.WriteString("  " + listDimStyle.Render(m.FEN))
	b.WriteString("\n")

	tabs := make([]string, len(m.Modes))
	for i, mode := range m.Modes {
		if i == m.Current {
			tabs[i] = tabActiveStyle.Render(string(mode))
		} else {
			tabs[i] = tabInactiveStyle.Render(string(mode))
		}
	}
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n\n")

	mode := m.mode()
	if err, ok := m.errs[mode]; ok {
		b.WriteString(styleIconError.Render(iconError) + " " + err.Error() + "\n")
		return b.String()
	}
	res, ok := m.results[mode]
	if !ok {
		b.WriteString(listDimStyle.Render("loading…") + "\n")
		return b.String()
	}

	var counts strings.Builder
	printStats(&counts, len(res.Nodes), len(res.Edges), false)
	printEdgeCounts(&counts, res)
	b.WriteString(counts.String())
	b.WriteString("\n")

	if len(res.Edges) > 0 {
		end := min(m.Offset+m.Height, len(res.Edges))
		rows := make([][]string, 0, end-m.Offset)
		for _, e := range res.Edges[m.Offset:end] {
			rows = append(rows, []string{e.Source.String(), string(e.Type), e.Target.String()})
		}
		visible := res.Edges[m.Offset:end]
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
			Headers("From", "Relation", "To").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row < 0 || row >= len(visible) {
					return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
				}
				if col == 1 {
					return edgeStyles[visible[row].Type]
				}
				return lipgloss.NewStyle().Foreground(colorWhite)
			})
		b.WriteString(t.Render())
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d-%d/%d]", m.Offset+1, end, len(res.Edges))))
		b.WriteString("\n")
	}

	b.WriteString(listDimStyle.Render("←/→ mode  ↑/↓ scroll  q quit"))
	return b.String()
}
