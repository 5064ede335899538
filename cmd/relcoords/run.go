package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ChicagoDave/relcoords/pkg/geo"
	"github.com/ChicagoDave/relcoords/pkg/replay"
	"github.com/ChicagoDave/relcoords/pkg/spec"
	"github.com/ChicagoDave/relcoords/pkg/validation"
)

// errInvalidScenario is returned when a scenario fails validation; the
// report has already been printed.
var errInvalidScenario = errors.New("scenario has validation errors")

type computeInput struct {
	eventX, eventZ       float64
	observerX, observerZ float64
	radius               float64
	viewDistance         float64
	radiusSet            bool
	viewDistanceSet      bool
	verbose              bool
}

func (in computeInput) resolvedRadius() float64 {
	if in.viewDistanceSet && !in.radiusSet {
		return in.viewDistance * spec.ChunkSize
	}
	return in.radius
}

func runCompute(w io.Writer, in computeInput) error {
	event := geo.Pt(in.eventX, in.eventZ)
	observer := geo.Pt(in.observerX, in.observerZ)
	radius := in.resolvedRadius()

	if err := geo.ValidateInputs(event, observer, radius); err != nil {
		return err
	}

	c := geo.Clamp(event, observer, radius)
	fmt.Fprintf(w, "%d %d\n", c.Pos.X, c.Pos.Z)
	if in.verbose {
		printClamped(w, event, observer, radius, c)
	}
	return nil
}

// loadAndValidate loads the scenario and runs schema and range validation.
// The scenario is nil when the report shows it could not be parsed.
func loadAndValidate(projectPath string) (*spec.Scenario, *validation.Report, error) {
	raw, err := os.ReadFile(spec.ProjectFile(projectPath))
	if err != nil {
		return nil, nil, fmt.Errorf("loading scenario: %w", err)
	}
	scenario, report := validation.ParseAndValidate(raw)
	return scenario, report, nil
}

func runValidate(w io.Writer, projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(w, report)

	if !report.Valid {
		return errInvalidScenario
	}
	return nil
}

func runCheck(w io.Writer, projectPath string, asJSON bool) error {
	scenario, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(w, report)
		return errInvalidScenario
	}

	out := replay.Run(scenario)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		printOutcome(w, out)
		if len(report.Warnings) > 0 {
			fmt.Fprintln(w)
			printValidationReport(w, report)
		}
	}

	if out.Failed > 0 {
		return fmt.Errorf("%d of %d cases failed", out.Failed, len(out.Cases))
	}
	return nil
}
