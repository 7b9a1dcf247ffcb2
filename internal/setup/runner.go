package setup

import (
	"fmt"

	"github.com/hbjs97/alienv/internal/config"
)

// Configure는 기존 설정(없으면 기본값)을 폼에 채워 보여주고 결과를 저장한다.
// 폼이 실패하면 파일을 건드리지 않는다.
func Configure(runner FormRunner, cfgPath string) (*config.Config, error) {
	current, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return nil, err
	}

	updated, err := runner.RunConfigForm(current)
	if err != nil {
		return nil, err
	}

	if err := config.Save(cfgPath, updated); err != nil {
		return nil, fmt.Errorf("setup.Configure: %w", err)
	}
	// 저장한 값이 다시 읽히는지 확인한다.
	saved, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("setup.Configure: %w", err)
	}
	return saved, nil
}
