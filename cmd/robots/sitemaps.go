package robots

import (
	"github.com/spf13/cobra"

	"github.com/isker/robots/pkg/parser"
	"github.com/isker/robots/pkg/sitemap"
)

func newSitemapsCmd() *cobra.Command {
	var parseFiles bool

	cmd := &cobra.Command{
		Use:   "sitemaps <robots-file> [sitemap-file...]",
		Short: MsgSitemapsShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readDocument(args[0])
			if err != nil {
				return err
			}

			rs := parser.Parse(content)
			for _, url := range sitemap.Declared(rs) {
				cmd.Println(url)
			}

			if !parseFiles {
				return nil
			}

			// Optionally expand locally saved sitemap documents.
			for _, path := range args[1:] {
				xml, err := readDocument(path)
				if err != nil {
					return err
				}
				doc, err := sitemap.Parse(xml)
				if err != nil {
					return err
				}
				for _, loc := range doc.Locations() {
					cmd.Println(loc)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&parseFiles, "expand", false,
		"Also parse the given local sitemap XML files and list their entries")

	return cmd
}
