package setup

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hbjs97/alienv/internal/config"
	"github.com/hbjs97/alienv/internal/shell"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
// stdout은 셸이 eval하므로 폼은 Output(기본 stderr)에만 그린다.
type HuhFormRunner struct {
	Output io.Writer
}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunConfigForm은 shell, root_dir, unique_aliases 입력 폼을 실행한다.
func (h *HuhFormRunner) RunConfigForm(defaults *config.Config) (*config.Config, error) {
	out := *defaults
	shellName := out.Shell
	if shellName == "" {
		shellName = ResolveDialect(DetectShell()).Name()
	}
	rootDir := out.RootDir
	unique := out.IsUniqueAliases()

	rootValidate := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("저장소 경로를 입력하세요")
		}
		return nil
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("셸").
			Options(huh.NewOptions(shell.Supported()...)...).
			Value(&shellName),
		huh.NewInput().
			Title("환경 저장소 경로").
			Value(&rootDir).
			Validate(rootValidate),
		huh.NewConfirm().
			Title("같은 이름의 alias는 덮어쓸까요?").
			Value(&unique),
	)).WithOutput(h.output())

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("setup.RunConfigForm: %w", err)
	}

	out.Shell = shellName
	out.RootDir = strings.TrimSpace(rootDir)
	out.UniqueAliases = &unique
	return &out, nil
}

func (h *HuhFormRunner) output() io.Writer {
	if h.Output == nil {
		return os.Stderr
	}
	return h.Output
}
