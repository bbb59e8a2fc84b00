package pipeline

import (
	"fmt"

	"github.com/ajepson/stavekit/errs"
)

// Result is what every stage hands back to the orchestrator: either a
// success with a human-readable detail, or a classified failure whose
// detail is still plain text the calling agent can relay verbatim.
type Result struct {
	OK     bool
	Kind   errs.Kind
	Detail string
}

func Ok(detail string) Result {
	return Result{OK: true, Detail: detail}
}

func Err(err error) Result {
	return Result{OK: false, Kind: errs.KindOf(err), Detail: err.Error()}
}

func (r Result) String() string {
	return r.Detail
}

// Stage is one strategy in a fallback chain.
type Stage func() (string, error)

// Chain tries strategies in order and returns the first success. Each
// strategy runs inside its own failure boundary, so a panicking tier
// just moves the chain along. The last error is returned when every
// tier fails.
func Chain(stages ...Stage) (string, error) {
	var last error
	for _, stage := range stages {
		detail, err := runSafe(stage)
		if err == nil {
			return detail, nil
		}
		last = err
	}
	return "", last
}

func runSafe(stage Stage) (detail string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("stage panicked: %v", r)
		}
	}()
	return stage()
}
