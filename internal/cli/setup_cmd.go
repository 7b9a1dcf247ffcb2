package cli

import (
	"fmt"
	"io"

	"github.com/hbjs97/alienv/internal/setup"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *App) newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactively writes the alienv config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetup(cmd.ErrOrStderr())
		},
	}
}

// runSetup은 stdout에 아무것도 쓰지 않는다. 폼과 안내는 모두 stderr로 간다.
func (a *App) runSetup(stderr io.Writer) error {
	runner := a.formRunner(stderr)
	cfg, err := setup.Configure(runner, a.CfgPath)
	if err != nil {
		a.logger().Debug("setup failed", zap.Error(err))
		return fail(err, "Unable to save config file %s", a.CfgPath)
	}
	a.active = a.dialect(cfg.Shell)
	fmt.Fprintf(stderr, "config saved: %s\n", a.CfgPath)
	return nil
}

func (a *App) formRunner(stderr io.Writer) setup.FormRunner {
	if a.FormRunner != nil {
		return a.FormRunner
	}
	return &setup.HuhFormRunner{Output: stderr}
}
