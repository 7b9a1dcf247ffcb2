package cli

import (
	"errors"
	"fmt"

	"github.com/hbjs97/alienv/internal/aliasfile"
	"github.com/hbjs97/alienv/internal/config"
	"github.com/hbjs97/alienv/internal/envstore"
	"github.com/hbjs97/alienv/internal/setup"
	"github.com/hbjs97/alienv/internal/shell"
	"github.com/hbjs97/alienv/internal/tracker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session은 한 번의 실행 동안 읽은 상태와 출력 버퍼다.
type session struct {
	cfg           *config.Config
	store         *envstore.Store
	emitter       *shell.Emitter
	marker        tracker.Marker
	markerPresent bool
	logger        *zap.Logger
}

// dialect는 --shell, 설정 파일, $SHELL 순으로 셸을 고른다.
func (a *App) dialect(cfgShell string) shell.Dialect {
	switch {
	case a.shellName != "":
		return setup.ResolveDialect(a.shellName)
	case cfgShell != "":
		return setup.ResolveDialect(cfgShell)
	default:
		return setup.ResolveDialect(setup.DetectShell())
	}
}

// begin은 설정을 읽고 저장소 루트를 준비한 뒤 마커를 한 번 읽는다.
// 마커 변수가 아직 없으면 sentinel 설정 문장을 먼저 버퍼에 넣는다.
func (a *App) begin(ensureRoot bool) (*session, error) {
	cfg, err := config.LoadOrDefault(a.CfgPath)
	if err != nil {
		return nil, fail(err, "Invalid config file %s", a.CfgPath)
	}
	home, err := a.homeDir()
	if err != nil {
		return nil, err
	}

	logger := a.logger()
	store := envstore.New(cfg.ResolveRootDir(home), logger)
	if ensureRoot {
		if err := store.EnsureRoot(); err != nil {
			return nil, fail(err, "Cannot initialize alienv - insufficient permissions?")
		}
	}

	d := a.dialect(cfg.Shell)
	a.active = d
	marker, present := tracker.Read(a.lookupEnv(), cfg.MarkerVar)
	s := &session{
		cfg:           cfg,
		store:         store,
		emitter:       shell.NewEmitter(d, cfg.MarkerVar),
		marker:        marker,
		markerPresent: present,
		logger:        logger,
	}
	if !present {
		s.emitter.EmitSetMarker(tracker.Sentinel)
	}
	logger.Debug("session started",
		zap.String("root", store.Root),
		zap.String("shell", d.Name()),
		zap.Stringer("marker", marker),
		zap.Bool("marker_present", present),
	)
	return s, nil
}

// withBuffer는 버퍼를 쓰는 명령의 RunE를 만든다. fn이 성공해야만 버퍼가 출력된다.
func (a *App) withBuffer(fn func(s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return a.runBuffered(true, fn, args)
	}
}

func (a *App) runBuffered(ensureRoot bool, fn func(s *session, args []string) error, args []string) error {
	s, err := a.begin(ensureRoot)
	if err != nil {
		return err
	}
	if err := fn(s, args); err != nil {
		return err
	}
	out, err := s.emitter.Flush()
	if err != nil {
		return fmt.Errorf("cli: %w", err)
	}
	fmt.Fprintln(a.stdout, out)
	return nil
}

// aliases는 env의 alias 파일을 읽어 이름별 마지막 레코드만 반환한다.
func (s *session) aliases(env string) ([]aliasfile.Alias, error) {
	all, err := aliasfile.Open(s.store.AliasFile(env), s.logger).ReadAll()
	if err != nil {
		if errors.Is(err, aliasfile.ErrCorruptFile) {
			return nil, fail(err, "Invalid alias file")
		}
		return nil, fail(err, "Unable to access aliases")
	}
	return aliasfile.LastWins(all), nil
}

// apply는 전이 계획을 버퍼 문장으로 바꾼다.
func (s *session) apply(plan tracker.Plan) error {
	for _, step := range plan {
		switch step.Kind {
		case tracker.StepUnload:
			exists, err := s.store.Exists(step.Env)
			if err != nil {
				return fail(err, "Unable to read directory")
			}
			if !exists {
				// 다른 셸에서 이미 지워진 환경은 해제할 alias 목록이 없다.
				s.logger.Warn("active environment missing, skipping unload", zap.String("env", step.Env))
				continue
			}
			aliases, err := s.aliases(step.Env)
			if err != nil {
				return err
			}
			for _, al := range aliases {
				s.emitter.EmitUnalias(al.Name)
			}
		case tracker.StepSetMarker:
			s.emitter.EmitSetMarker(step.Marker.Value())
		case tracker.StepLoad:
			aliases, err := s.aliases(step.Env)
			if err != nil {
				return err
			}
			for _, al := range aliases {
				s.emitter.EmitAlias(al.Name, al.Command)
			}
		default:
			return fmt.Errorf("cli.apply: unknown step %s", step.Kind)
		}
	}
	return nil
}

// activeEnv는 alias 명령이 대상으로 삼을 활성 환경을 반환한다.
func (s *session) activeEnv() (string, error) {
	if !s.markerPresent {
		return "", fail(tracker.ErrNoActiveEnvironment, "$%s does not exist. Rerun setup.", s.cfg.MarkerVar)
	}
	env, err := tracker.RequireActive(s.marker)
	if err != nil {
		return "", fail(err, "No alias env active.")
	}
	exists, err := s.store.Exists(env)
	if err != nil {
		return "", fail(err, "Unable to read directory")
	}
	if !exists {
		return "", fail(envstore.ErrNotFound, "Environment %s does not exist.", env)
	}
	return env, nil
}
