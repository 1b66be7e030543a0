package lollywiz

import (
	"fmt"

	"github.com/arthur-debert/lollywiz/pkg/filesystem"
	"github.com/arthur-debert/lollywiz/pkg/style"
	"github.com/arthur-debert/lollywiz/pkg/wiz"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newInstantiateCmd(a *app) *cobra.Command {
	var f sourceFlags

	cmd := &cobra.Command{
		Use:     "instantiate SRC DEST",
		Aliases: []string{"new"},
		Short:   MsgInstantiateShort,
		Long:    MsgInstantiateLong,
		Example: MsgInstantiateExample,
		Args:    cobra.ExactArgs(2),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dest := args[0], args[1]
			dryRun := a.cfg.Instantiate.DryRun
			archivePath := a.cfg.Instantiate.Archive

			log.Info().
				Str("source", src).
				Str("destination", dest).
				Bool("dry_run", dryRun).
				Msg("Instantiating template")

			fsys := filesystem.NewOS()
			engine, cleanup, err := a.newEngine(fsys, src, f, wiz.WithDryRun(dryRun))
			defer cleanup()
			if err != nil {
				return err
			}
			if err := engine.SetDestination(dest); err != nil {
				return err
			}

			renderer := style.NewTerminalRenderer()
			runErr := engine.Instantiate()
			if report := engine.Report(); len(report.Steps) > 0 || runErr == nil {
				fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderReport(report))
			}
			if runErr != nil {
				return runErr
			}

			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
				return nil
			}
			if archivePath != "" {
				if err := packDir(fsys, dest, archivePath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), MsgArchiveWritten, archivePath)
			}
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().Bool("dry-run", false, MsgFlagDryRun)
	cmd.Flags().String("archive", "", MsgFlagArchive)

	return cmd
}
