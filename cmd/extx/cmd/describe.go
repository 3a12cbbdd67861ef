package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/extx/utils/numberx"
	mdwstringx "github.com/msto63/extx/utils/stringx"
)

var describeDelimiter string

var describeCmd = &cobra.Command{
	Use:   "describe <enum> <value>",
	Short: "Print the description of an enum value",
	Long: `Print the description of a numeric enum value.

Flag values are split into their member labels. Values that match no
member are printed as numbers, and values the enum type cannot hold are
rejected. Put negative values after "--" so they are not read as flags.

Examples:
  extx describe log.level 3
  extx --catalog enums.toml describe permission 7
  extx --catalog enums.toml describe -d ", " permission 5
  extx describe log.level -- -1`,
	Args: cobra.ExactArgs(2),
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().StringVarP(&describeDelimiter, "delimiter", "d", "", "label delimiter (default: enum.delimiter)")
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	view, err := lookupEnum(args[0])
	if err != nil {
		return err
	}

	value, err := numberx.Parse[int64](args[1])
	if err != nil {
		return err
	}

	delimiter := mdwstringx.FromDefault(describeDelimiter, current.delimiter)
	description, err := view.Describe(value, delimiter)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), description)
	return nil
}
