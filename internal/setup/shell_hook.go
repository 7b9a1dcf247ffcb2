package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/alienv/internal/shell"
)

// hookMarker는 rc 파일에 hook이 이미 설치되었는지 판단하는 문자열이다.
const hookMarker = "alienv shell integration"

// DetectShell은 현재 사용자의 셸을 감지한다.
func DetectShell() string {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return ""
	}
	return filepath.Base(sh)
}

// ResolveDialect는 셸 이름에 맞는 dialect를 반환한다. 모르는 셸이면 기본 dialect를 쓴다.
func ResolveDialect(name string) shell.Dialect {
	if d, ok := shell.Lookup(name); ok {
		return d
	}
	d, _ := shell.Lookup(shell.DefaultDialect)
	return d
}

// ShellRCPath는 셸별 RC 파일 경로를 반환한다.
func ShellRCPath(shellType, home string) string {
	switch shellType {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	case "sh":
		return filepath.Join(home, ".profile")
	case "fish":
		return filepath.Join(home, ".config", "fish", "conf.d", "alienv.fish")
	default:
		return ""
	}
}

// InstallShellHook은 셸 RC 파일에 alienv wrapper 함수를 추가한다.
// 이미 설치되어 있으면 false를 반환하고 파일을 건드리지 않는다.
func InstallShellHook(d shell.Dialect, bin, rcPath string) (bool, error) {
	if rcPath == "" {
		return false, fmt.Errorf("setup.InstallShellHook: 지원하지 않는 셸: %s", d.Name())
	}

	existing, _ := os.ReadFile(rcPath) // 파일이 없으면 빈 바이트
	if strings.Contains(string(existing), hookMarker) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0700); err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", d.Hook(bin)); err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	return true, nil
}
