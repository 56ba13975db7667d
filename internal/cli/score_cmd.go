package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/goalpath/internal/cli/formatter"
	"github.com/alexanderramin/goalpath/internal/clarity"
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score TEXT...",
		Short: "Score how clearly a learning goal is stated",
		Example: `  goalpath score "Learn React by building projects"
  goalpath score Master TypeScript with Node`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report := clarity.Evaluate(strings.Join(args, " "))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScoreReport(report))
			return nil
		},
	}
}
