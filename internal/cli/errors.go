package cli

import (
	"errors"
	"fmt"

	"github.com/hbjs97/alienv/internal/aliasfile"
	"github.com/hbjs97/alienv/internal/config"
	"github.com/hbjs97/alienv/internal/envstore"
	"github.com/hbjs97/alienv/internal/tracker"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrInvalidName는 환경 이름 검증 실패다.
	ErrInvalidName = envstore.ErrInvalidName
	// ErrAlreadyExists는 이미 존재하는 환경을 만들 때의 에러다.
	ErrAlreadyExists = envstore.ErrAlreadyExists
	// ErrNotFound는 존재하지 않는 환경을 다룰 때의 에러다.
	ErrNotFound = envstore.ErrNotFound
	// ErrAlreadyLoaded는 활성 환경을 다시 load할 때의 에러다.
	ErrAlreadyLoaded = tracker.ErrAlreadyLoaded
	// ErrNoActiveEnvironment는 활성 환경 없이 alias를 다룰 때의 에러다.
	ErrNoActiveEnvironment = tracker.ErrNoActiveEnvironment
	// ErrCorruptFile는 alias 레코드 파싱 실패다.
	ErrCorruptFile = aliasfile.ErrCorruptFile
	// ErrAliasNotFound는 지울 alias가 없을 때의 에러다.
	ErrAliasNotFound = aliasfile.ErrAliasNotFound
	// ErrFile는 I/O 실패다.
	ErrFile = envstore.ErrFile
	// ErrConfig는 설정 파일 오류다.
	ErrConfig = config.ErrConfig
)

// userError는 셸에 보여줄 메시지와 원인 에러를 함께 담는다.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }

func (e *userError) Unwrap() error { return e.err }

// fail은 cause를 감싸 사용자 메시지를 붙인다.
func fail(cause error, format string, args ...any) error {
	return &userError{msg: fmt.Sprintf(format, args...), err: cause}
}

// UserMessage는 에러를 "Error: ..." 뒤에 붙일 한 줄 메시지로 바꾼다.
func UserMessage(err error) string {
	var ue *userError
	if errors.As(err, &ue) {
		return ue.msg
	}
	return err.Error()
}
