package cli

import (
	"errors"

	"github.com/hbjs97/alienv/internal/aliasfile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *App) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <alias> <command>",
		Short: "Adds alias to current environment",
		Args:  cobra.ExactArgs(2),
		RunE: a.withBuffer(func(s *session, args []string) error {
			return s.runAdd(args[0], args[1])
		}),
	}
}

func (a *App) newRemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rem <alias>",
		Short: "Removes alias from current environment",
		Args:  cobra.ExactArgs(1),
		RunE: a.withBuffer(func(s *session, args []string) error {
			return s.runRem(args[0])
		}),
	}
}

func (a *App) newAliasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "Lists aliases of current environment",
		Args:  cobra.NoArgs,
		RunE: a.withBuffer(func(s *session, args []string) error {
			return s.runAliases()
		}),
	}
}

func (s *session) runAdd(name, command string) error {
	env, err := s.activeEnv()
	if err != nil {
		return err
	}

	f := aliasfile.Open(s.store.AliasFile(env), s.logger)
	if s.cfg.IsUniqueAliases() {
		replaced, err := f.Put(name, command)
		if err != nil {
			return addError(err)
		}
		if replaced {
			s.logger.Info("alias replaced", zap.String("env", env), zap.String("alias", name))
		}
	} else if err := f.Append(name, command); err != nil {
		return addError(err)
	}

	s.emitter.EmitAlias(name, command)
	return nil
}

func addError(err error) error {
	if errors.Is(err, aliasfile.ErrInvalidRecord) {
		return fail(err, "Invalid alias. Names cannot contain spaces or =, commands cannot contain newlines.")
	}
	return fail(err, "Unable to write alias.")
}

func (s *session) runRem(name string) error {
	env, err := s.activeEnv()
	if err != nil {
		return err
	}

	removed, err := aliasfile.Open(s.store.AliasFile(env), s.logger).Remove(name)
	if err != nil {
		return fail(err, "Unable to access aliases")
	}
	if !removed {
		return fail(aliasfile.ErrAliasNotFound, "No such alias.")
	}

	s.emitter.EmitUnalias(name)
	return nil
}

func (s *session) runAliases() error {
	env, err := s.activeEnv()
	if err != nil {
		return err
	}
	aliases, err := s.aliases(env)
	if err != nil {
		return err
	}
	for _, al := range aliases {
		s.emitter.EmitEcho(al.Name + " -> " + al.Command)
	}
	return nil
}

