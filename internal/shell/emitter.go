package shell

import (
	"errors"
	"strings"
)

// ErrAlreadyFlushed는 버퍼를 두 번 flush할 때의 에러다.
var ErrAlreadyFlushed = errors.New("command buffer already flushed")

// Emitter는 한 번의 실행 동안 셸 문장을 순서대로 모은다.
// 버퍼는 한 번만 flush할 수 있다.
type Emitter struct {
	dialect   Dialect
	markerVar string
	stmts     []string
	flushed   bool
}

// NewEmitter는 dialect와 마커 변수 이름으로 Emitter를 만든다.
func NewEmitter(d Dialect, markerVar string) *Emitter {
	return &Emitter{dialect: d, markerVar: markerVar}
}

// Emit은 문장 하나를 버퍼 끝에 추가한다. 빈 문장은 무시한다.
func (e *Emitter) Emit(stmt string) {
	if e.flushed {
		panic("shell: emit after flush")
	}
	if stmt == "" {
		return
	}
	e.stmts = append(e.stmts, stmt)
}

// EmitSetMarker는 마커 변수 설정 문장을 추가한다.
func (e *Emitter) EmitSetMarker(value string) {
	e.Emit(e.dialect.SetEnv(e.markerVar, value))
}

// EmitAlias는 alias 정의 문장을 추가한다.
func (e *Emitter) EmitAlias(name, command string) {
	e.Emit(e.dialect.Alias(name, command))
}

// EmitUnalias는 alias 해제 문장을 추가한다.
func (e *Emitter) EmitUnalias(name string) {
	e.Emit(e.dialect.Unalias(name))
}

// EmitEcho는 echo 문장을 추가한다.
func (e *Emitter) EmitEcho(text string) {
	e.Emit(e.dialect.Echo(text))
}

// Len은 지금까지 쌓인 문장 수다.
func (e *Emitter) Len() int { return len(e.stmts) }

// Statements는 쌓인 문장의 복사본을 반환한다.
func (e *Emitter) Statements() []string {
	out := make([]string, len(e.stmts))
	copy(out, e.stmts)
	return out
}

// Flush는 각 문장 뒤에 ';'를 붙여 이어 붙인 전체 버퍼를 반환한다.
func (e *Emitter) Flush() (string, error) {
	if e.flushed {
		return "", ErrAlreadyFlushed
	}
	e.flushed = true

	var b strings.Builder
	for _, s := range e.stmts {
		b.WriteString(s)
		b.WriteByte(';')
	}
	return b.String(), nil
}
