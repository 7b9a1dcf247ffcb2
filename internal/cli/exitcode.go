package cli

// ExitCode는 alienv의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 보고된 모든 에러다.
	ExitGeneral ExitCode = 1
)

// MapExitCode는 에러 유무로 종료 코드를 결정한다.
// 셸은 출력된 echo 문장으로 원인을 보므로 에러 종류와 관계없이 1이다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	return ExitGeneral
}
