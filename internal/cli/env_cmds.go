package cli

import (
	"errors"

	"github.com/hbjs97/alienv/internal/envstore"
	"github.com/hbjs97/alienv/internal/tracker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *App) newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <env>",
		Short: "Creates new environment and switches to it",
		Args:  cobra.ExactArgs(1),
		RunE: a.withBuffer(func(s *session, args []string) error {
			return s.runNew(args[0])
		}),
	}
}

func (a *App) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <env>",
		Short: "Deletes existing environment",
		Args:  cobra.ExactArgs(1),
		RunE: a.withBuffer(func(s *session, args []string) error {
			return s.runDelete(args[0])
		}),
	}
}

func (a *App) newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <env>",
		Short: "Switches to existing environment",
		Args:  cobra.ExactArgs(1),
		RunE: a.withBuffer(func(s *session, args []string) error {
			return s.runLoad(args[0])
		}),
	}
}

func (a *App) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Displays existing environments",
		Args:  cobra.NoArgs,
		RunE: a.withBuffer(func(s *session, args []string) error {
			return s.runShow()
		}),
	}
}

func (s *session) runNew(name string) error {
	if err := s.store.Create(name); err != nil {
		switch {
		case errors.Is(err, envstore.ErrInvalidName):
			return checkName(name)
		case errors.Is(err, envstore.ErrAlreadyExists):
			return fail(err, "Environment %s already exists.", name)
		default:
			return fail(err, "Cannot create directory - insufficient permissions?")
		}
	}
	s.logger.Info("environment created", zap.String("env", name))

	if err := s.apply(tracker.NewPlan(s.marker, name)); err != nil {
		// 전환에 실패하면 방금 만든 환경을 남기지 않는다.
		if derr := s.store.Delete(name); derr != nil {
			s.logger.Warn("rollback failed", zap.String("env", name), zap.Error(derr))
		}
		return err
	}
	return nil
}

// checkName은 사용자가 준 환경 이름을 저장소에 묻기 전에 검사한다.
func checkName(name string) error {
	if err := envstore.ValidateName(name); err != nil {
		return fail(err, "Not a valid environment name. Only numbers, letters, period, underscore, and hyphen allowed.")
	}
	return nil
}

func (s *session) runDelete(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	exists, err := s.store.Exists(name)
	if err != nil {
		return fail(err, "Unable to read directory")
	}
	if !exists {
		return fail(envstore.ErrNotFound, "No such environment: %s", name)
	}

	// unalias 문장은 alias 파일이 지워지기 전에 만들어야 한다.
	if err := s.apply(tracker.DeletePlan(s.marker, name)); err != nil {
		return err
	}
	if err := s.store.Delete(name); err != nil {
		return fail(err, "Unable to delete environment")
	}
	return nil
}

func (s *session) runLoad(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	exists, err := s.store.Exists(name)
	if err != nil {
		return fail(err, "Unable to read directory")
	}
	if !exists {
		return fail(envstore.ErrNotFound, "Environment %s does not exist.", name)
	}

	plan, err := tracker.LoadPlan(s.marker, name)
	if err != nil {
		return fail(err, "Environment already loaded")
	}
	return s.apply(plan)
}

func (s *session) runShow() error {
	names, err := s.store.List()
	if err != nil {
		return fail(err, "Unable to read directory")
	}
	for _, name := range names {
		if s.marker.Is(name) {
			s.emitter.EmitEcho(name + "*")
			continue
		}
		s.emitter.EmitEcho(name)
	}
	return nil
}
