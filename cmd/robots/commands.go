// Package robots implements the robots command-line interface.
package robots

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/isker/robots/internal/version"
	"github.com/isker/robots/pkg/cobrax/topics"
	"github.com/isker/robots/pkg/config"
	"github.com/isker/robots/pkg/errors"
	"github.com/isker/robots/pkg/logging"
)

//go:embed topics/*.md
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not brick the CLI; fall back to
		// defaults and surface the problem once logging is up.
		cfg = config.Default()
	}

	rootCmd := &cobra.Command{
		Use:     "robots",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbosity == 0 {
				verbosity = cfg.Verbosity
			}
			logging.SetupLogger(verbosity)
			if err != nil {
				log.Warn().Err(err).Msg("Failed to load configuration, using defaults")
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newCheckCmd(cfg))
	rootCmd.AddCommand(newExplainCmd(cfg))
	rootCmd.AddCommand(newSitemapsCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	if docsCmd := newDocsCmd(); docsCmd != nil {
		rootCmd.AddCommand(docsCmd)
	}

	return rootCmd
}

// newDocsCmd wires the embedded markdown topics into a docs command.
func newDocsCmd() *cobra.Command {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil
	}

	manager, err := topics.NewFromFS(sub, topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load documentation topics")
		return nil
	}

	return manager.Command()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("robots %s (commit %s, built %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}

// readDocument loads robots.txt content from a file path, or from stdin
// when path is "-".
func readDocument(path string) (string, error) {
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "failed to read stdin")
		}
		return string(content), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrFileNotFound, "no such file: %s", path)
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}
	return string(content), nil
}
