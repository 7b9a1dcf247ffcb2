package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("config error")

const (
	// DefaultMarkerVar는 활성 환경을 담는 셸 변수 이름이다.
	DefaultMarkerVar = "ALIAS_ENV"
	// DefaultRootDir은 환경 저장소 루트 기본값이다.
	DefaultRootDir = "~/.alienv"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config는 alienv 설정 파일의 최상위 구조체다.
type Config struct {
	RootDir       string `toml:"root_dir"`
	Shell         string `toml:"shell"`
	MarkerVar     string `toml:"marker_var"`
	UniqueAliases *bool  `toml:"unique_aliases"`
}

// Default는 설정 파일이 없을 때 쓰는 기본 설정이다.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %v: %w", err, ErrConfig)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault는 파일이 없으면 기본 설정을 반환한다. 그 외 오류는 그대로 반환한다.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Save는 설정을 TOML로 저장한다 (0600 권한).
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// IsUniqueAliases는 unique_aliases 설정값을 반환한다.
func (c *Config) IsUniqueAliases() bool {
	if c.UniqueAliases == nil {
		return true
	}
	return *c.UniqueAliases
}

// ResolveRootDir은 root_dir의 ~를 home으로 펼친 절대 경로를 반환한다.
func (c *Config) ResolveRootDir(home string) string {
	return ExpandHome(c.RootDir, home)
}

// ExpandHome은 경로 앞의 ~ 를 home으로 치환한다.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func (c *Config) applyDefaults() {
	if c.RootDir == "" {
		c.RootDir = DefaultRootDir
	}
	if c.MarkerVar == "" {
		c.MarkerVar = DefaultMarkerVar
	}
	if c.UniqueAliases == nil {
		t := true
		c.UniqueAliases = &t
	}
}

func (c *Config) validate() error {
	if !identPattern.MatchString(c.MarkerVar) {
		return fmt.Errorf("config.Load: marker_var %q는 셸 변수 이름이 아닙니다: %w", c.MarkerVar, ErrConfig)
	}
	return nil
}
