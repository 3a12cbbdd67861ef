package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/extx/core/errors"
	mdwlog "github.com/msto63/extx/core/log"
	mdwstringx "github.com/msto63/extx/utils/stringx"
)

var parseSeparators string

var parseCmd = &cobra.Command{
	Use:   "parse <enum> <text>...",
	Short: "Resolve names or labels to an enum value",
	Long: `Resolve names or labels to an enum value and print the value
with its description.

Matching ignores case. For flag enums every matching token is combined,
unknown tokens are skipped.

Examples:
  extx parse log.level WARNING
  extx --catalog enums.toml parse permission "Read, Write"
  extx --catalog enums.toml parse -s ";" permission "Read;Execute"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseSeparators, "separators", "s", "", "separator characters (default: enum.separators)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	view, err := lookupEnum(args[0])
	if err != nil {
		return err
	}

	text := strings.Join(args[1:], " ")
	separators := mdwstringx.FromDefault(parseSeparators, current.separators)

	value, ok := view.Parse(text, separators)
	if !ok {
		return errors.InvalidInput(errors.ModuleEnumx, "parse", text, "name or label of "+args[0])
	}

	current.logger.Debug("enum resolved", mdwlog.Fields{
		"enum":  args[0],
		"input": text,
		"value": value,
	})
	description, err := view.Describe(value, current.delimiter)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", value, description)
	return nil
}
