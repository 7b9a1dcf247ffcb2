package cli

import (
	"fmt"

	"github.com/hbjs97/alienv/internal/config"
	"github.com/hbjs97/alienv/internal/setup"
	"github.com/spf13/cobra"
)

// binName은 wrapper 함수와 실제 바이너리 이름이다.
const binName = "alienv"

func (a *App) newInitCmd() *cobra.Command {
	var install bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Prints the shell wrapper that evaluates alienv output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, install)
		},
	}
	cmd.Flags().BoolVar(&install, "install", false, "append the wrapper to the shell rc file")
	return cmd
}

func (a *App) runInit(cmd *cobra.Command, install bool) error {
	cfg, err := config.LoadOrDefault(a.CfgPath)
	if err != nil {
		return fail(err, "Invalid config file %s", a.CfgPath)
	}
	d := a.dialect(cfg.Shell)
	a.active = d

	if !install {
		fmt.Fprint(a.stdout, d.Hook(binName))
		return nil
	}

	home, err := a.homeDir()
	if err != nil {
		return err
	}
	rcPath := setup.ShellRCPath(d.Name(), home)
	installed, err := setup.InstallShellHook(d, binName, rcPath)
	if err != nil {
		return fail(err, "Unable to install shell integration")
	}
	if installed {
		fmt.Fprintf(cmd.ErrOrStderr(), "shell integration installed: %s\n", rcPath)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "shell integration already present: %s\n", rcPath)
	}
	return nil
}
