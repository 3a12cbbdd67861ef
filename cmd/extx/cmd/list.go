package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	valueStyle  = cellStyle.Align(lipgloss.Right)
)

var listCmd = &cobra.Command{
	Use:   "list [enum]",
	Short: "List enums or the members of one enum",
	Long: `Without an argument, list every known enum: catalog enums in file
order, then the built-ins. With an enum name, print its members.

Examples:
  extx list
  extx list hash.algorithm
  extx --catalog enums.yaml list permission`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, name := range enumNames() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	view, err := lookupEnum(args[0])
	if err != nil {
		return err
	}

	title := args[0]
	if view.Flags() {
		title += " (flags)"
	}

	rows := view.Rows()
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("NAME", "VALUE", "LABEL").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return valueStyle
			default:
				return cellStyle
			}
		})
	for _, r := range rows {
		t.Row(r.Name, strconv.FormatInt(r.Value, 10), r.Label)
	}

	fmt.Fprintln(out, titleStyle.Render(title))
	fmt.Fprintln(out, t.Render())
	return nil
}
