package robots

import (
	"github.com/spf13/cobra"

	"github.com/isker/robots/pkg/config"
)

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}
			cmd.Println(content)
			cmd.Printf("# Save as: %s\n", config.ConfigFilePath())
			return nil
		},
	}
}
