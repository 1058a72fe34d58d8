package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/boardgraph/pkg/relation"
)

// kingboxCommand creates the kingbox command.
func (c *CLI) kingboxCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "kingbox <fen>",
		Short: "Show the 3x3 safety box around each king",
		Long: `Classify the nine squares around each king as open, blocked by an ally,
blocked by a threat, or off the board.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			boxes, err := runner.KingBoxes(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(boxes)
			}
			if len(boxes) == 0 {
				printWarning(out, "no kings on the board")
				return nil
			}
			for i, box := range boxes {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printKingBox(out, box)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw cell data as JSON")
	return cmd
}

// printKingBox renders box as a 3x3 table with rank +1 on top.
func printKingBox(w io.Writer, box relation.KingBox) {
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%s king on %s", box.Color, box.King)))

	rows := make([][]string, 3)
	for i, cell := range box.Cells {
		rows[i/3] = append(rows[i/3], cellLabel(cell))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		BorderRow(true).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Width(20).Padding(0, 1)
			idx := row*3 + col
			if row < 0 || idx >= len(box.Cells) {
				return base
			}
			cell := box.Cells[idx]
			if cell.IsCenter() {
				return base.Bold(true).Foreground(colorCyan)
			}
			if s, ok := statusStyles[cell.Status]; ok {
				return base.Foreground(s.GetForeground())
			}
			return base
		})
	fmt.Fprintln(w, t.Render())
}

func cellLabel(cell relation.Cell) string {
	if !cell.OnBoard {
		return "off-board"
	}
	var b strings.Builder
	b.WriteString(cell.Square.String())
	if cell.Occupied {
		b.WriteString(" " + cell.Piece.Symbol())
	}
	if !cell.IsCenter() {
		b.WriteString(" " + string(cell.Status))
	}
	return b.String()
}
