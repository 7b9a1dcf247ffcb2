// Package aliasfile는 환경 하나의 alias 파일을 줄 단위로 읽고 고쳐 쓴다.
// 한 줄에 레코드 하나, 형식은 alias <name>="<command>" 이다.
package aliasfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrCorruptFile은 레코드 형식에 맞지 않는 줄이 있을 때의 에러다.
	ErrCorruptFile = errors.New("corrupt alias file")
	// ErrFile은 alias 파일을 열거나 쓸 수 없을 때의 에러다.
	ErrFile = errors.New("alias file error")
	// ErrAliasNotFound는 지울 alias가 파일에 없을 때의 에러다.
	ErrAliasNotFound = errors.New("alias not found")
	// ErrInvalidRecord는 한 줄 레코드로 쓰고 다시 읽을 수 없는 alias다.
	ErrInvalidRecord = errors.New("alias cannot be stored as a single record")
)

var recordPattern = regexp.MustCompile(`^alias ([^=\s]+)="(.*)"$`)

// Alias는 이름과 명령 문자열 쌍이다.
type Alias struct {
	Name    string
	Command string
}

// FormatLine은 alias 레코드 한 줄을 만든다.
func FormatLine(a Alias) string {
	return fmt.Sprintf("alias %s=\"%s\"", a.Name, a.Command)
}

// ParseLine은 레코드 한 줄을 Alias로 파싱한다.
func ParseLine(line string) (Alias, error) {
	m := recordPattern.FindStringSubmatch(line)
	if m == nil {
		return Alias{}, fmt.Errorf("aliasfile.ParseLine: %q: %w", line, ErrCorruptFile)
	}
	return Alias{Name: m[1], Command: m[2]}, nil
}

// checkRecord는 a를 레코드로 쓴 뒤 같은 값으로 다시 읽히는지 확인한다.
func checkRecord(a Alias) error {
	parsed, err := ParseLine(FormatLine(a))
	if err != nil || parsed != a {
		return fmt.Errorf("aliasfile: %q: %w", a.Name, ErrInvalidRecord)
	}
	return nil
}

// File은 alias 파일 하나를 다룬다.
type File struct {
	Path   string
	Logger *zap.Logger
}

// Open은 path의 alias 파일 핸들을 만든다. 파일을 실제로 열지는 않는다.
func Open(path string, logger *zap.Logger) *File {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &File{Path: path, Logger: logger}
}

// Append는 레코드 한 줄을 파일 끝에 추가한다. 이름 중복은 검사하지 않는다.
func (f *File) Append(name, command string) error {
	if err := checkRecord(Alias{Name: name, Command: command}); err != nil {
		return fmt.Errorf("aliasfile.Append: %w", err)
	}
	fh, err := os.OpenFile(f.Path, os.O_APPEND|os.O_RDWR, 0600)
	if err != nil {
		return fmt.Errorf("aliasfile.Append: %v: %w", err, ErrFile)
	}
	defer fh.Close()

	line := FormatLine(Alias{Name: name, Command: command}) + "\n"
	missing, err := missingTrailingNewline(fh)
	if err != nil {
		return fmt.Errorf("aliasfile.Append: %v: %w", err, ErrFile)
	}
	if missing {
		line = "\n" + line
	}
	if _, err := fh.WriteString(line); err != nil {
		return fmt.Errorf("aliasfile.Append: %v: %w", err, ErrFile)
	}
	f.Logger.Debug("alias appended", zap.String("alias", name), zap.String("path", f.Path))
	return nil
}

// Remove는 name에 해당하는 레코드를 모두 지우고 삭제 여부를 반환한다.
// 지울 줄이 없으면 파일을 건드리지 않는다.
func (f *File) Remove(name string) (bool, error) {
	lines, err := f.readLines()
	if err != nil {
		return false, err
	}

	kept := filterOut(lines, name)
	if len(kept) == len(lines) {
		return false, nil
	}
	if err := f.rewrite(kept); err != nil {
		return false, err
	}
	f.Logger.Debug("alias removed",
		zap.String("alias", name),
		zap.Int("records", len(lines)-len(kept)),
		zap.String("path", f.Path),
	)
	return true, nil
}

// Put은 같은 이름의 기존 레코드를 지우고 새 레코드를 끝에 둔다.
// 파일은 한 번만 다시 쓴다. 기존 레코드가 있었으면 true를 반환한다.
func (f *File) Put(name, command string) (bool, error) {
	if err := checkRecord(Alias{Name: name, Command: command}); err != nil {
		return false, fmt.Errorf("aliasfile.Put: %w", err)
	}
	lines, err := f.readLines()
	if err != nil {
		return false, err
	}

	kept := filterOut(lines, name)
	replaced := len(kept) != len(lines)
	if !replaced {
		return false, f.Append(name, command)
	}

	kept = append(kept, FormatLine(Alias{Name: name, Command: command}))
	if err := f.rewrite(kept); err != nil {
		return false, err
	}
	f.Logger.Debug("alias replaced", zap.String("alias", name), zap.String("path", f.Path))
	return true, nil
}

// ReadAll은 모든 레코드를 파일 순서대로 파싱한다. 빈 줄은 건너뛴다.
func (f *File) ReadAll() ([]Alias, error) {
	lines, err := f.readLines()
	if err != nil {
		return nil, err
	}

	aliases := make([]Alias, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		a, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("aliasfile.ReadAll: %s:%d: %w", f.Path, i+1, err)
		}
		aliases = append(aliases, a)
	}
	return aliases, nil
}

// LastWins는 같은 이름이 여러 번 나오면 마지막 레코드만 남긴다.
// 결과 순서는 각 이름이 마지막으로 나온 위치를 따른다.
func LastWins(aliases []Alias) []Alias {
	last := make(map[string]int, len(aliases))
	for i, a := range aliases {
		last[a.Name] = i
	}
	out := make([]Alias, 0, len(last))
	for i, a := range aliases {
		if last[a.Name] == i {
			out = append(out, a)
		}
	}
	return out
}

// Duplicates는 두 번 이상 나오는 alias 이름을 처음 나온 순서대로 반환한다.
func Duplicates(aliases []Alias) []string {
	count := make(map[string]int, len(aliases))
	var names []string
	for _, a := range aliases {
		count[a.Name]++
		if count[a.Name] == 2 {
			names = append(names, a.Name)
		}
	}
	return names
}

func (f *File) readLines() ([]string, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("aliasfile: open %s: %v: %w", f.Path, err, ErrFile)
	}
	defer fh.Close()

	var lines []string
	scanner := bufio.NewScanner(fh)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("aliasfile: read %s: %v: %w", f.Path, err, ErrFile)
	}
	return lines, nil
}

// rewrite는 임시 파일에 쓴 뒤 rename으로 교체한다.
func (f *File) rewrite(lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), "."+filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("aliasfile.rewrite: %v: %w", err, ErrFile)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("aliasfile.rewrite: %v: %w", err, ErrFile)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("aliasfile.rewrite: %v: %w", err, ErrFile)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("aliasfile.rewrite: %v: %w", err, ErrFile)
	}
	if err := os.Rename(tmpPath, f.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("aliasfile.rewrite: %v: %w", err, ErrFile)
	}
	return nil
}

// missingTrailingNewline은 비어 있지 않은 파일이 줄바꿈으로 끝나지 않는지 확인한다.
func missingTrailingNewline(fh *os.File) (bool, error) {
	info, err := fh.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := fh.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}

func filterOut(lines []string, name string) []string {
	prefix := fmt.Sprintf("alias %s=", name)
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}
