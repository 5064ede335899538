package validation

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/relcoords/pkg/spec"
)

// Validate runs schema validation on the raw document followed by range
// validation on the parsed scenario.
func Validate(raw []byte, s *spec.Scenario) *Report {
	r := ValidateSchema(raw)
	r.Merge(ValidateScenario(s))
	return r
}

// ParseAndValidate runs schema validation on raw, then parses and range
// validates the scenario. The scenario is nil when raw could not be parsed,
// in which case the report is invalid and explains why.
func ParseAndValidate(raw []byte) (*spec.Scenario, *Report) {
	r := ValidateSchema(raw)

	s, err := spec.Parse(raw)
	if err != nil {
		// Schema findings already describe most decode failures.
		if r.Valid {
			r.AddError(Result{Level: LevelSchema, Message: err.Error()})
		}
		return nil, r
	}

	r.Merge(ValidateScenario(s))
	return s, r
}

// ValidateScenario checks that every case of a parsed scenario has a
// defined result.
func ValidateScenario(s *spec.Scenario) *Report {
	r := NewReport()

	validateRadius(s, r)
	validateEvent(s, r)
	validateCases(s, r)

	return r
}

func validateRadius(s *spec.Scenario, r *Report) {
	if !s.HasRadius() {
		r.AddError(Result{
			Level:       LevelRange,
			Message:     "scenario must set radius or view_distance",
			Path:        "radius",
			Suggestions: []string{"Set radius in blocks, or view_distance in chunks"},
		})
		return
	}
	if s.RadiusBlocks != nil && s.ViewDistance != nil {
		r.AddWarning(Result{
			Level:        LevelRange,
			Message:      fmt.Sprintf("both radius and view_distance set; using radius %g", *s.RadiusBlocks),
			Path:         "view_distance",
			ActualValue:  *s.ViewDistance,
			ConflictWith: "radius",
		})
	}
	radius := s.Radius()
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		r.AddError(Result{
			Level:       LevelRange,
			Message:     fmt.Sprintf("radius %v must be finite and non-negative", radius),
			Path:        "radius",
			ActualValue: fmt.Sprint(radius),
			Expected:    ">= 0",
		})
	}
}

func validateEvent(s *spec.Scenario, r *Report) {
	if !s.Event.IsFinite() {
		r.AddError(Result{
			Level:       LevelRange,
			Message:     fmt.Sprintf("event position %v must be finite", s.Event),
			Path:        "event",
			ActualValue: s.Event.String(),
		})
		return
	}
	if !s.Event.WithinBlockRange(0) {
		r.AddError(Result{
			Level:       LevelRange,
			Message:     fmt.Sprintf("event position %v is outside the block range", s.Event),
			Path:        "event",
			ActualValue: s.Event.String(),
			Expected:    "|x|, |z| < 2^63",
		})
	}
}

func validateCases(s *spec.Scenario, r *Report) {
	if len(s.Cases) == 0 {
		r.AddError(Result{
			Level:    LevelRange,
			Message:  "cases must contain at least one observer",
			Path:     "cases",
			Expected: "at least 1 case",
		})
		return
	}

	reach := s.Radius()
	if math.IsNaN(reach) || math.IsInf(reach, 0) || reach < 0 {
		reach = 0
	}

	seen := map[string]int{}
	for i, c := range s.Cases {
		path := fmt.Sprintf("cases[%d]", i)

		if !c.Observer.IsFinite() {
			r.AddError(Result{
				Level:       LevelRange,
				Message:     fmt.Sprintf("case %s: observer position %v must be finite", c.Label(i), c.Observer),
				Path:        path + ".observer",
				ActualValue: c.Observer.String(),
			})
		} else if !c.Observer.WithinBlockRange(reach) {
			r.AddError(Result{
				Level:       LevelRange,
				Message:     fmt.Sprintf("case %s: observer position %v with radius %g reaches outside the block range", c.Label(i), c.Observer, reach),
				Path:        path + ".observer",
				ActualValue: c.Observer.String(),
				Expected:    "|x|, |z| + radius < 2^63",
			})
		}

		if c.Name == "" {
			r.AddInfo(Result{
				Level:   LevelRange,
				Message: fmt.Sprintf("case %s has no name", c.Label(i)),
				Path:    path + ".name",
			})
			continue
		}
		if prev, ok := seen[c.Name]; ok {
			r.AddWarning(Result{
				Level:        LevelRange,
				Message:      fmt.Sprintf("duplicate case name %q", c.Name),
				Path:         path + ".name",
				ConflictWith: fmt.Sprintf("cases[%d].name", prev),
			})
			continue
		}
		seen[c.Name] = i
	}
}

