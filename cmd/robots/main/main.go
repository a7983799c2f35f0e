package main

import (
	"fmt"
	"os"

	robots "github.com/isker/robots/cmd/robots"
	"github.com/isker/robots/pkg/ui/styles"
)

func main() {
	rootCmd := robots.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
