package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hbjs97/alienv/internal/config"
	"github.com/hbjs97/alienv/internal/setup"
	"github.com/hbjs97/alienv/internal/shell"
	"github.com/hbjs97/alienv/internal/tracker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App은 CLI 실행에 필요한 외부 의존성을 묶는다. 테스트에서는 필드를 직접 채운다.
type App struct {
	// CfgPath는 설정 파일 경로다. 비어 있으면 ~/.config/alienv/config.toml.
	CfgPath string
	// Home은 ~ 확장에 쓰는 홈 디렉토리다. 비어 있으면 os.UserHomeDir.
	Home string
	// LookupEnv는 마커 변수 조회 함수다. nil이면 os.LookupEnv.
	LookupEnv tracker.Lookup
	// Logger가 nil이면 --verbose에 맞춰 stderr logger를 만든다.
	Logger *zap.Logger
	// FormRunner는 setup 명령의 입력 폼이다. nil이면 stderr에 그리는 huh 폼.
	FormRunner setup.FormRunner

	shellName string
	verbose   bool
	stdout    io.Writer
	// active는 이번 실행에서 설정까지 반영해 고른 dialect다.
	active shell.Dialect
}

// NewApp은 프로세스 환경을 쓰는 App을 만든다.
func NewApp() *App {
	return &App{LookupEnv: os.LookupEnv}
}

// Run은 args를 실행하고 종료 코드를 반환한다.
// 성공하면 버퍼 한 줄이, 실패하면 echo 'Error: ...' 한 문장만 stdout에 출력된다.
func (a *App) Run(args []string, stdout, stderr io.Writer) ExitCode {
	a.stdout = stdout
	a.active = nil

	cmd := a.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(stdout, shell.ErrorStatement(a.errorDialect(), UserMessage(err)))
	}
	return MapExitCode(err)
}

// NewRootCmd는 alienv CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alienv",
		Short: "Alias environment manager",
		Long: `alienv manages named alias environments. Every command prints shell
statements to stdout; evaluate them in the current shell:

  eval "$(alienv init)"   # installs an alienv() wrapper that does this for you`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.defaultCfgPath(), "config file path")
	cmd.PersistentFlags().StringVar(&a.shellName, "shell", "", "shell dialect (bash, zsh, sh, fish)")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "debug logging to stderr")

	cmd.AddCommand(
		a.newNewCmd(),
		a.newDeleteCmd(),
		a.newLoadCmd(),
		a.newShowCmd(),
		a.newAddCmd(),
		a.newRemCmd(),
		a.newAliasesCmd(),
		a.newInitCmd(),
		a.newSetupCmd(),
		a.newDoctorCmd(),
	)
	return cmd
}

// errorDialect는 성공 출력과 같은 dialect를 고른다.
// 설정을 읽기 전에 실패했으면 설정 파일을 다시 읽어 본다.
func (a *App) errorDialect() shell.Dialect {
	if a.active != nil {
		return a.active
	}
	if cfg, err := config.LoadOrDefault(a.CfgPath); err == nil {
		return a.dialect(cfg.Shell)
	}
	return a.dialect("")
}

func (a *App) initLogger() error {
	if a.Logger != nil {
		return nil
	}
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("cli: logger 초기화 실패: %w", err)
	}
	a.Logger = logger
	return nil
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *App) homeDir() (string, error) {
	if a.Home != "" {
		return a.Home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fail(fmt.Errorf("cli.homeDir: %v: %w", err, ErrFile), "No home directory detected")
	}
	return home, nil
}

func (a *App) defaultCfgPath() string {
	if a.CfgPath != "" {
		return a.CfgPath
	}
	home, err := a.homeDir()
	if err != nil {
		return filepath.Join(".config", "alienv", "config.toml")
	}
	return filepath.Join(home, ".config", "alienv", "config.toml")
}

func (a *App) lookupEnv() tracker.Lookup {
	if a.LookupEnv == nil {
		return os.LookupEnv
	}
	return a.LookupEnv
}
