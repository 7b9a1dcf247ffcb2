package setup

import "github.com/hbjs97/alienv/internal/config"

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunConfigForm은 설정 입력 폼을 실행한다. defaults 값을 기본값으로 표시한다.
	RunConfigForm(defaults *config.Config) (*config.Config, error)
}
