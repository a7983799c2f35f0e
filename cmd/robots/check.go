package robots

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isker/robots/pkg/config"
	"github.com/isker/robots/pkg/parser"
	"github.com/isker/robots/pkg/query"
	"github.com/isker/robots/pkg/ui/styles"
)

func newCheckCmd(cfg *config.Config) *cobra.Command {
	var agent string

	cmd := &cobra.Command{
		Use:   "check <robots-file> <url>",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
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
				cmd.Println(styled(cfg, "Success", fmt.Sprintf("allowed: %s may fetch %s", agent, args[1])))
				return nil
			}

			cmd.Println(styled(cfg, "Error", fmt.Sprintf("blocked: %s may not fetch %s", agent, args[1])))
			if verdict.Because != nil {
				cmd.Printf("  by %s %q (line %d, group %q)\n",
					verdict.Because.Directive.Type,
					verdict.Because.Directive.Value,
					verdict.Because.Directive.Line,
					verdict.Because.Agent.Value)
			}
			// Non-zero exit so scripts can gate on crawlability.
			return fmt.Errorf("crawling is blocked")
		},
	}

	cmd.Flags().StringVarP(&agent, "agent", "a", cfg.UserAgent, MsgFlagAgent)

	return cmd
}

// styled applies a named style unless the configuration disabled color.
func styled(cfg *config.Config, name, text string) string {
	switch cfg.Color {
	case "never":
		return text
	case "always":
		return styles.GetStyle(name).Render(text)
	default:
		if !styles.ColorEnabled() {
			return text
		}
		return styles.GetStyle(name).Render(text)
	}
}
