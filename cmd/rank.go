package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dreamjobs/portal/match"
)

var rankCmd = &cobra.Command{
	Use:   "rank [file|-]",
	Short: "Rank records from a JSON file offline",
	Long: `Read {"reference": {...}, "candidates": [...]} from a file or stdin and
print the candidates with their scores, best first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		return rankRecords(in, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)
}

func rankRecords(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	reference, candidates, err := match.ParseRankRequest(data)
	if err != nil {
		return err
	}
	ranked, err := match.Rank(reference, candidates)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ranked)
}
