package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/lollywiz/cmd/lollywiz"
	"github.com/arthur-debert/lollywiz/pkg/style"
)

func main() {
	rootCmd := lollywiz.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.NewTerminalRenderer()
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(1)
	}
}
