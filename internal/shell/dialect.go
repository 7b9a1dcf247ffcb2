package shell

import (
	"fmt"
	"sort"
	"strings"
)

// Dialect는 셸 하나의 문법을 추상화한다.
type Dialect interface {
	// Name은 셸 이름이다 (bash, zsh, sh, fish).
	Name() string
	// SetEnv는 환경변수를 설정하는 문장이다.
	SetEnv(key, value string) string
	// Alias는 alias를 정의하는 문장이다. command는 따옴표 안에 그대로 들어간다.
	Alias(name, command string) string
	// Unalias는 alias를 해제하는 문장이다.
	Unalias(name string) string
	// Echo는 text를 그대로 출력하는 문장이다.
	Echo(text string) string
	// Hook은 출력 결과를 자동으로 eval하는 wrapper 함수 스니펫이다.
	Hook(bin string) string
}

// posix는 bash, zsh, sh 공통 문법이다.
type posix struct {
	name string
}

func (p posix) Name() string { return p.name }

func (p posix) SetEnv(key, value string) string {
	return fmt.Sprintf("export %s=%s", key, quotePosix(value))
}

func (p posix) Alias(name, command string) string {
	return fmt.Sprintf("alias %s=\"%s\"", name, command)
}

func (p posix) Unalias(name string) string {
	return "unalias " + name
}

func (p posix) Echo(text string) string {
	return "echo " + quotePosix(text)
}

func (p posix) Hook(bin string) string {
	return fmt.Sprintf(`# alienv shell integration (%s)
%s() {
  eval "$(command %s "$@")"
}
`, p.name, bin, bin)
}

// fish는 fish 셸 문법이다.
type fish struct{}

func (fish) Name() string { return "fish" }

func (fish) SetEnv(key, value string) string {
	return fmt.Sprintf("set -gx %s %s", key, quoteFish(value))
}

func (fish) Alias(name, command string) string {
	return fmt.Sprintf("alias %s \"%s\"", name, command)
}

func (fish) Unalias(name string) string {
	return "functions -e " + name
}

func (fish) Echo(text string) string {
	return "echo " + quoteFish(text)
}

func (fish) Hook(bin string) string {
	return fmt.Sprintf(`# alienv shell integration (fish)
function %s
  eval (command %s $argv | string collect)
end
`, bin, bin)
}

var dialects = map[string]Dialect{
	"bash": posix{name: "bash"},
	"zsh":  posix{name: "zsh"},
	"sh":   posix{name: "sh"},
	"fish": fish{},
}

// DefaultDialect는 알 수 없는 셸에 쓰는 기본 dialect 이름이다.
const DefaultDialect = "bash"

// Lookup은 이름으로 dialect를 찾는다.
func Lookup(name string) (Dialect, bool) {
	d, ok := dialects[name]
	return d, ok
}

// Supported는 지원하는 셸 이름을 정렬해 반환한다.
func Supported() []string {
	names := make([]string, 0, len(dialects))
	for n := range dialects {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ErrorStatement는 에러 메시지 하나를 출력하는 문장이다.
func ErrorStatement(d Dialect, msg string) string {
	return d.Echo("Error: " + msg)
}

func quotePosix(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func quoteFish(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}
