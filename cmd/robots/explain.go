package robots

import (
	"github.com/spf13/cobra"

	"github.com/isker/robots/pkg/config"
	"github.com/isker/robots/pkg/explain"
	"github.com/isker/robots/pkg/parser"
	"github.com/isker/robots/pkg/query"
)

func newExplainCmd(cfg *config.Config) *cobra.Command {
	var agent string

	cmd := &cobra.Command{
		Use:   "explain <robots-file> <url>",
		Short: MsgExplainShort,
		Long:  MsgExplainLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readDocument(args[0])
			if err != nil {
				return err
			}

			rs := parser.Parse(content)
			verdict, err := query.Query(rs, args[1], agent)
			if err != nil {
				return err
			}

			if verdict.Allowed() {
				cmd.Printf("%s: allowed for %q\n\n", args[1], agent)
			} else {
				cmd.Printf("%s: blocked for %q\n\n", args[1], agent)
			}

			if cfg.Color == "never" {
				cmd.Println(explain.Explain(rs, verdict))
			} else {
				cmd.Println(explain.Render(rs, verdict))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&agent, "agent", "a", cfg.UserAgent, MsgFlagAgent)

	return cmd
}
