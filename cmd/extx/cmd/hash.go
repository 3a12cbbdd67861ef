package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/extx/core/errors"
	"github.com/msto63/extx/utils/hashx"
)

var hashFile string

var hashCmd = &cobra.Command{
	Use:   "hash <algorithm> [text]...",
	Short: "Print the hex digest of text, a file or stdin",
	Long: `Print the upper-case hex digest of the given text. Without text the
input is read from --file or stdin.

Algorithms: sha512, sha256, sha1, md5, xxhash. Labels such as SHA-256
work as well.

Examples:
  extx hash sha256 hello
  extx hash SHA-1 --file go.sum
  echo -n hello | extx hash xxhash`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHash,
}

func init() {
	hashCmd.Flags().StringVarP(&hashFile, "file", "f", "", "hash the contents of this file")
	rootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	algorithm, err := hashx.ParseAlgorithm(args[0])
	if err != nil {
		return err
	}

	var digest string
	switch {
	case len(args) > 1:
		digest, err = algorithm.HexString(strings.Join(args[1:], " "))
	case hashFile != "":
		f, openErr := appFs.Open(hashFile)
		if openErr != nil {
			return errors.NewErrorBuilder(errors.ModuleHashx).
				Operation("hash_file").
				Message("failed to open input file").
				Cause(openErr).
				Code(errors.CodeHashxReadFailed).
				Detail("path", hashFile).
				Build()
		}
		defer f.Close()
		digest, err = hashx.HashReaderHex(f, algorithm)
	default:
		digest, err = hashx.HashReaderHex(cmd.InOrStdin(), algorithm)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), digest)
	return nil
}
