// Package tracker는 셸이 보관하는 활성 환경 마커를 해석하고
// load/delete 시 필요한 전이 계획을 계산한다. 파일이나 환경변수를 직접 건드리지 않는다.
package tracker

import (
	"errors"
	"fmt"
)

// Sentinel은 마커 변수에 기록되는 "활성 환경 없음" 값이다.
const Sentinel = "NO ENV"

var (
	// ErrAlreadyLoaded는 이미 활성인 환경을 다시 load할 때의 에러다.
	ErrAlreadyLoaded = errors.New("environment already loaded")
	// ErrNoActiveEnvironment는 활성 환경 없이 alias를 추가/삭제할 때의 에러다.
	ErrNoActiveEnvironment = errors.New("no active environment")
)

// Marker는 Inactive 또는 Active(name) 두 상태 중 하나다. zero value는 Inactive다.
type Marker struct {
	env string
}

// Inactive는 활성 환경이 없는 마커를 반환한다.
func Inactive() Marker { return Marker{} }

// Active는 name 환경이 활성인 마커를 반환한다.
func Active(name string) Marker { return Marker{env: name} }

// IsActive는 어떤 환경이든 활성인지 반환한다.
func (m Marker) IsActive() bool { return m.env != "" }

// Env는 활성 환경 이름을 반환한다.
func (m Marker) Env() (string, bool) { return m.env, m.env != "" }

// Is는 name 환경이 활성인지 반환한다.
func (m Marker) Is(name string) bool { return m.env != "" && m.env == name }

// Value는 마커 변수에 기록할 문자열이다.
func (m Marker) Value() string {
	if m.env == "" {
		return Sentinel
	}
	return m.env
}

func (m Marker) String() string {
	if m.env == "" {
		return "Inactive"
	}
	return fmt.Sprintf("Active(%s)", m.env)
}

// Parse는 마커 변수 값을 해석한다. 빈 문자열과 sentinel은 Inactive다.
func Parse(value string) Marker {
	if value == "" || value == Sentinel {
		return Inactive()
	}
	return Active(value)
}

// Lookup은 os.LookupEnv와 같은 시그니처의 환경 조회 함수다.
type Lookup func(key string) (string, bool)

// Read는 varName 변수를 읽어 마커와 변수 존재 여부를 반환한다.
// 변수가 없으면 셸 초기화가 필요하다는 뜻이다.
func Read(lookup Lookup, varName string) (Marker, bool) {
	v, ok := lookup(varName)
	if !ok {
		return Inactive(), false
	}
	return Parse(v), true
}

// StepKind는 전이 계획 단계의 종류다.
type StepKind int

const (
	// StepUnload는 환경의 모든 alias를 해제한다.
	StepUnload StepKind = iota
	// StepSetMarker는 마커 변수를 설정한다.
	StepSetMarker
	// StepLoad는 환경의 모든 alias를 설정한다.
	StepLoad
)

func (k StepKind) String() string {
	switch k {
	case StepUnload:
		return "unload"
	case StepSetMarker:
		return "set-marker"
	case StepLoad:
		return "load"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step은 전이 계획의 한 단계다. Env는 unload/load 대상, Marker는 set-marker 값이다.
type Step struct {
	Kind   StepKind
	Env    string
	Marker Marker
}

// Plan은 순서가 있는 단계 목록이다.
type Plan []Step

// LoadPlan은 current에서 target으로 전환하는 계획을 만든다.
// [unload(current)?, set-marker(target), load(target)]
func LoadPlan(current Marker, target string) (Plan, error) {
	if current.Is(target) {
		return nil, fmt.Errorf("tracker.LoadPlan: %s: %w", target, ErrAlreadyLoaded)
	}
	var plan Plan
	if env, ok := current.Env(); ok {
		plan = append(plan, Step{Kind: StepUnload, Env: env})
	}
	plan = append(plan,
		Step{Kind: StepSetMarker, Marker: Active(target)},
		Step{Kind: StepLoad, Env: target},
	)
	return plan, nil
}

// NewPlan은 새로 만든 환경을 자동으로 load하는 계획이다.
// 마커가 이미 같은 이름을 가리키면(다른 셸에서 지워졌다 다시 만든 경우) unload 없이 다시 설정한다.
func NewPlan(current Marker, target string) Plan {
	if current.Is(target) {
		return Plan{
			{Kind: StepSetMarker, Marker: Active(target)},
			{Kind: StepLoad, Env: target},
		}
	}
	plan, _ := LoadPlan(current, target) // current != target 이므로 에러 없음
	return plan
}

// DeletePlan은 target 삭제 전에 필요한 계획이다. 활성 환경이 아니면 빈 계획이다.
func DeletePlan(current Marker, target string) Plan {
	if !current.Is(target) {
		return nil
	}
	return Plan{
		{Kind: StepUnload, Env: target},
		{Kind: StepSetMarker, Marker: Inactive()},
	}
}

// RequireActive는 활성 환경 이름을 반환하고, 없으면 ErrNoActiveEnvironment를 반환한다.
func RequireActive(current Marker) (string, error) {
	env, ok := current.Env()
	if !ok {
		return "", fmt.Errorf("tracker.RequireActive: %w", ErrNoActiveEnvironment)
	}
	return env, nil
}
