package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/linkrouter/cmd/linkrouter"
	"github.com/arthur-debert/linkrouter/pkg/output/styles"
)

func main() {
	rootCmd := linkrouter.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
