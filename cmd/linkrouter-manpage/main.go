package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/linkrouter/cmd/linkrouter"
	"github.com/arthur-debert/linkrouter/internal/version"
)

func main() {
	rootCmd := linkrouter.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "LINKROUTER",
		Section: "1",
		Source:  "linkrouter " + version.Version,
		Manual:  "linkrouter manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
