package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/boardgraph/pkg/graph"
	"github.com/matzehuels/boardgraph/pkg/relation"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success, open squares
	colorYellow = lipgloss.Color("220") // Amber - warnings, own pieces
	colorRed    = lipgloss.Color("167") // Soft red - errors, threats
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
)

// Edge type colors, shared by the graph summary and the explorer.
var edgeStyles = map[graph.EdgeType]lipgloss.Style{
	graph.EdgeThreat:            lipgloss.NewStyle().Foreground(colorRed),
	graph.EdgeProtection:        lipgloss.NewStyle().Foreground(colorGreen),
	graph.EdgeAdjacency:         lipgloss.NewStyle().Foreground(colorGray),
	graph.EdgeKingCanMove:       lipgloss.NewStyle().Foreground(colorGreen),
	graph.EdgeKingBlockedAlly:   lipgloss.NewStyle().Foreground(colorYellow),
	graph.EdgeKingBlockedThreat: lipgloss.NewStyle().Foreground(colorRed),
}

// Cell status colors for the king box table.
var statusStyles = map[relation.Status]lipgloss.Style{
	relation.StatusOpen:            lipgloss.NewStyle().Foreground(colorGreen),
	relation.StatusBlockedByAlly:   lipgloss.NewStyle().Foreground(colorYellow),
	relation.StatusBlockedByThreat: lipgloss.NewStyle().Foreground(colorRed),
	relation.StatusOffBoard:        lipgloss.NewStyle().Foreground(colorDim),
}

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printStats prints result sizes on a single line.
func printStats(w io.Writer, nodeCount, edgeCount int, cached bool) {
	parts := []string{
		fmt.Sprintf("%d nodes", nodeCount),
		fmt.Sprintf("%d edges", edgeCount),
	}
	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	line += StyleDim.Render(" · ") + statusStyle.Render(status)
	fmt.Fprintln(w, line)
}

// printEdgeCounts prints one line per edge type present in res.
func printEdgeCounts(w io.Writer, res graph.Result) {
	counts := res.CountByType()
	for _, t := range graph.EdgeTypes {
		n, ok := counts[t]
		if !ok {
			continue
		}
		label := lipgloss.NewStyle().Width(24).Render(edgeStyles[t].Render(string(t)))
		fmt.Fprintln(w, "  "+label+" "+StyleNumber.Render(fmt.Sprint(n)))
	}
	if n := res.PhantomCount(); n > 0 {
		fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf("%d phantom squares", n)))
	}
}

func formatEdge(e graph.Edge) string {
	style, ok := edgeStyles[e.Type]
	if !ok {
		style = StyleValue
	}
	return fmt.Sprintf("%s %s %s", e.Source, style.Render(strings.ReplaceAll(string(e.Type), "_", " ")), e.Target)
}
