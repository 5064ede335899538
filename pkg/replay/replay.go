// Package replay evaluates scenario cases through the clamper and compares
// them with their recorded expectations.
package replay

import (
	"fmt"

	"github.com/ChicagoDave/relcoords/pkg/geo"
	"github.com/ChicagoDave/relcoords/pkg/spec"
	"github.com/ChicagoDave/relcoords/pkg/validation"
)

// CaseResult is the evaluation of a single observer.
type CaseResult struct {
	Name     string        `json:"name"`
	Observer geo.Point2D   `json:"observer"`
	Got      geo.BlockPos  `json:"got"`
	Point    geo.Point2D   `json:"point"`
	Clamped  bool          `json:"clamped"`
	Distance float64       `json:"distance"`
	Expect   *geo.BlockPos `json:"expect,omitempty"`
	Pass     bool          `json:"pass"`
}

// Outcome is the evaluation of a whole scenario.
type Outcome struct {
	Event  geo.Point2D        `json:"event"`
	Radius float64            `json:"radius"`
	Cases  []CaseResult       `json:"cases"`
	Passed int                `json:"passed"`
	Failed int                `json:"failed"`
	Report *validation.Report `json:"report"`
}

// Run evaluates every case of s. A case without an expectation always passes.
func Run(s *spec.Scenario) *Outcome {
	radius := s.Radius()
	out := &Outcome{
		Event:  s.Event,
		Radius: radius,
		Cases:  make([]CaseResult, 0, len(s.Cases)),
		Report: validation.NewReport(),
	}

	for i, c := range s.Cases {
		clamped := geo.Clamp(s.Event, c.Observer, radius)
		res := CaseResult{
			Name:     c.Label(i),
			Observer: c.Observer,
			Got:      clamped.Pos,
			Point:    clamped.Point,
			Clamped:  clamped.Clamped,
			Distance: s.Event.Distance(c.Observer),
			Expect:   c.Expect,
			Pass:     c.Expect == nil || *c.Expect == clamped.Pos,
		}
		out.Cases = append(out.Cases, res)

		if res.Pass {
			out.Report.RecordPass()
			continue
		}
		out.Report.RecordFailure(validation.Result{
			Level:       validation.LevelReplay,
			Message:     fmt.Sprintf("case %s: observer %v perceives event at %v", res.Name, c.Observer, res.Got),
			Path:        fmt.Sprintf("cases[%d].expect", i),
			ActualValue: res.Got.String(),
			Expected:    c.Expect.String(),
		})
	}
	out.Passed, out.Failed = out.Report.Passed, out.Report.Failed
	return out
}
