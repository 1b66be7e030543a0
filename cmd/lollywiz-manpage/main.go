package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/lollywiz/cmd/lollywiz"
	"github.com/spf13/cobra/doc"
)

func main() {
	rootCmd := lollywiz.NewRootCmd()

	err := doc.GenMan(rootCmd, lollywiz.ManHeader(), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
