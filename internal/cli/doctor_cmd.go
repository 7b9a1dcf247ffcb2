package cli

import (
	"fmt"

	"github.com/hbjs97/alienv/internal/doctor"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnoses the alias environment store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// 진단 중에는 루트 디렉토리를 만들지 않는다.
			return a.runBuffered(false, a.runDoctor, args)
		},
	}
}

func (a *App) runDoctor(s *session, _ []string) error {
	results := doctor.RunAll(s.store, a.lookupEnv(), s.cfg.MarkerVar)
	printDiagResults(s, results)
	return nil
}

// printDiagResults는 진단 결과를 echo 문장으로 버퍼에 넣는다.
func printDiagResults(s *session, results []doctor.DiagResult) {
	for _, r := range results {
		s.emitter.EmitEcho(fmt.Sprintf("[%s] %s: %s", statusIcon(r.Status), r.Name, r.Message))
		if r.Fix != "" {
			s.emitter.EmitEcho(fmt.Sprintf("      Fix: %s", r.Fix))
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
