package lollywiz

import (
	"fmt"

	"github.com/arthur-debert/lollywiz/pkg/executor"
	"github.com/arthur-debert/lollywiz/pkg/filesystem"
	"github.com/arthur-debert/lollywiz/pkg/style"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		f     sourceFlags
		plain bool
	)

	cmd := &cobra.Command{
		Use:     "check SRC",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := a.newEngine(filesystem.NewOS(), args[0], f)
			defer cleanup()
			if err != nil {
				return err
			}
			if err := engine.Parse(); err != nil {
				return err
			}

			doc := engine.Document()
			if plain {
				for _, line := range executor.Describe(doc.Instructions) {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			}
			renderer := style.NewTerminalRenderer()
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPlan(doc.Version, doc.Instructions))
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, MsgFlagPlain)
	return cmd
}

func newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "pack DIR ARCHIVE",
		Short:   MsgPackShort,
		Long:    MsgPackLong,
		Example: "  lollywiz pack ~/templates/cli cli.tar.zst",
		Args:    cobra.ExactArgs(2),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := packDir(filesystem.NewOS(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgArchiveWritten, args[1])
			return nil
		},
	}
}
