// Package envstore는 환경(environment)별 디렉토리를 관리하는 저장소다.
// 루트 디렉토리 아래 환경 하나당 디렉토리 하나, 그 안에 alias 파일 하나를 둔다.
package envstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/hbjs97/alienv/internal/tracker"
	"go.uber.org/zap"
)

// AliasFileName은 환경 디렉토리 안의 alias 파일 이름이다.
const AliasFileName = "aliases"

var (
	// ErrInvalidName은 환경 이름이 허용 문자 집합을 벗어나거나 sentinel과 같을 때의 에러다.
	ErrInvalidName = errors.New("invalid environment name")
	// ErrAlreadyExists는 같은 이름의 환경이 이미 있을 때의 에러다.
	ErrAlreadyExists = errors.New("environment already exists")
	// ErrNotFound는 환경이 존재하지 않을 때의 에러다.
	ErrNotFound = errors.New("environment not found")
	// ErrFile은 디렉토리/파일 I/O 실패를 나타낸다.
	ErrFile = errors.New("file error")
)

var validName = regexp.MustCompile(`^[-_.A-Za-z0-9]+$`)

// ValidateName은 환경 이름이 허용되는지 검사한다.
func ValidateName(name string) error {
	if name == tracker.Sentinel || name == "." || name == ".." || !validName.MatchString(name) {
		return fmt.Errorf("envstore.ValidateName: %q: %w", name, ErrInvalidName)
	}
	return nil
}

// Store는 루트 디렉토리 기반 환경 저장소다.
type Store struct {
	Root   string
	Logger *zap.Logger
}

// New는 root 경로를 사용하는 Store를 생성한다. logger가 nil이면 no-op logger를 쓴다.
func New(root string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{Root: root, Logger: logger}
}

// EnsureRoot는 루트 디렉토리가 없으면 생성한다.
func (s *Store) EnsureRoot() error {
	if _, err := os.Stat(s.Root); err == nil {
		return nil
	}
	if err := os.MkdirAll(s.Root, 0700); err != nil {
		return fmt.Errorf("envstore.EnsureRoot: %v: %w", err, ErrFile)
	}
	s.Logger.Debug("root created", zap.String("path", s.Root))
	return nil
}

// Dir은 환경 디렉토리 경로를 반환한다.
func (s *Store) Dir(name string) string {
	return filepath.Join(s.Root, name)
}

// AliasFile은 환경의 alias 파일 경로를 반환한다.
func (s *Store) AliasFile(name string) string {
	return filepath.Join(s.Root, name, AliasFileName)
}

// Create는 환경 디렉토리와 빈 alias 파일을 만든다.
func (s *Store) Create(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	exists, err := s.Exists(name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("envstore.Create: %q: %w", name, ErrAlreadyExists)
	}

	dir := s.Dir(name)
	if err := os.Mkdir(dir, 0700); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("envstore.Create: %q: %w", name, ErrAlreadyExists)
		}
		return fmt.Errorf("envstore.Create: %v: %w", err, ErrFile)
	}

	f, err := os.OpenFile(s.AliasFile(name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		_ = os.Remove(dir) // 빈 디렉토리만 남지 않도록 정리
		return fmt.Errorf("envstore.Create: %v: %w", err, ErrFile)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("envstore.Create: %v: %w", err, ErrFile)
	}

	s.Logger.Debug("environment created", zap.String("env", name), zap.String("path", dir))
	return nil
}

// Exists는 루트 디렉토리를 나열해 name과 정확히 같은 항목이 있는지 확인한다.
func (s *Store) Exists(name string) (bool, error) {
	names, err := s.List()
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// Delete는 환경 디렉토리를 재귀적으로 삭제한다. 되돌릴 수 없다.
func (s *Store) Delete(name string) error {
	exists, err := s.Exists(name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("envstore.Delete: %q: %w", name, ErrNotFound)
	}
	dir := s.Dir(name)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("envstore.Delete: %v: %w", err, ErrFile)
	}
	s.Logger.Debug("environment deleted", zap.String("env", name), zap.String("path", dir))
	return nil
}

// List는 존재하는 환경 이름을 디렉토리 나열 순서대로 반환한다.
// 정렬을 보장하지 않는다.
func (s *Store) List() ([]string, error) {
	f, err := os.Open(s.Root)
	if err != nil {
		return nil, fmt.Errorf("envstore.List: %v: %w", err, ErrFile)
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("envstore.List: %v: %w", err, ErrFile)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
