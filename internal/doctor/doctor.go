package doctor

import (
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/alienv/internal/aliasfile"
	"github.com/hbjs97/alienv/internal/envstore"
	"github.com/hbjs97/alienv/internal/tracker"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckRoot는 저장소 루트 디렉토리가 존재하는지 확인한다.
func CheckRoot(store *envstore.Store) DiagResult {
	info, err := os.Stat(store.Root)
	if err != nil || !info.IsDir() {
		return DiagResult{
			Name:    "root",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 없음", store.Root),
			Fix:     "alienv show 를 한 번 실행하면 생성된다",
		}
	}
	return DiagResult{
		Name:    "root",
		Status:  StatusOK,
		Message: store.Root,
	}
}

// CheckMarker는 마커 변수가 설정되어 있고 존재하는 환경을 가리키는지 확인한다.
func CheckMarker(lookup tracker.Lookup, varName string, store *envstore.Store) DiagResult {
	marker, present := tracker.Read(lookup, varName)
	if !present {
		return DiagResult{
			Name:    "marker",
			Status:  StatusWarn,
			Message: fmt.Sprintf("$%s 미설정", varName),
			Fix:     "alienv init 으로 셸 통합을 설치한다",
		}
	}
	env, ok := marker.Env()
	if !ok {
		return DiagResult{
			Name:    "marker",
			Status:  StatusOK,
			Message: "활성 환경 없음",
		}
	}
	exists, err := store.Exists(env)
	if err != nil || !exists {
		return DiagResult{
			Name:    "marker",
			Status:  StatusFail,
			Message: fmt.Sprintf("활성 환경 %s 가 존재하지 않음", env),
			Fix:     fmt.Sprintf("export %s='%s'", varName, tracker.Sentinel),
		}
	}
	return DiagResult{
		Name:    "marker",
		Status:  StatusOK,
		Message: fmt.Sprintf("활성 환경 %s", env),
	}
}

// CheckAliasFiles는 모든 환경의 alias 파일을 파싱하고 중복 이름을 찾는다.
func CheckAliasFiles(store *envstore.Store) []DiagResult {
	names, err := store.List()
	if err != nil {
		return []DiagResult{{
			Name:    "environments",
			Status:  StatusFail,
			Message: err.Error(),
		}}
	}

	results := make([]DiagResult, 0, len(names))
	for _, name := range names {
		check := "env_" + name
		aliases, err := aliasfile.Open(store.AliasFile(name), store.Logger).ReadAll()
		if err != nil {
			results = append(results, DiagResult{
				Name:    check,
				Status:  StatusFail,
				Message: err.Error(),
				Fix:     fmt.Sprintf("%s 를 직접 수정한다", store.AliasFile(name)),
			})
			continue
		}
		if dups := aliasfile.Duplicates(aliases); len(dups) > 0 {
			results = append(results, DiagResult{
				Name:    check,
				Status:  StatusWarn,
				Message: fmt.Sprintf("중복 alias: %s", strings.Join(dups, ", ")),
				Fix:     "alienv rem 후 다시 add 한다",
			})
			continue
		}
		results = append(results, DiagResult{
			Name:    check,
			Status:  StatusOK,
			Message: fmt.Sprintf("alias %d개", len(aliases)),
		})
	}
	return results
}

// RunAll은 모든 진단을 실행한다.
func RunAll(store *envstore.Store, lookup tracker.Lookup, varName string) []DiagResult {
	var results []DiagResult
	results = append(results, CheckRoot(store))
	results = append(results, CheckMarker(lookup, varName, store))
	results = append(results, CheckAliasFiles(store)...)
	return results
}
