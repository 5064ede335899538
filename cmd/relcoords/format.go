package main

import (
	"fmt"
	"io"

	"github.com/ChicagoDave/relcoords/pkg/geo"
	"github.com/ChicagoDave/relcoords/pkg/replay"
	"github.com/ChicagoDave/relcoords/pkg/validation"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Fprintf(w, "    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Fprintf(w, "    expected: %s\n", e.Expected)
			}
			if e.ConflictWith != "" {
				fmt.Fprintf(w, "    conflicts with: %s\n", e.ConflictWith)
			}
			for _, s := range e.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, wr := range r.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", wr.Level, wr.Message)
			if wr.Path != "" {
				fmt.Fprintf(w, "    -> %s = %v\n", wr.Path, wr.ActualValue)
			}
			if wr.ConflictWith != "" {
				fmt.Fprintf(w, "    conflicts with: %s\n", wr.ConflictWith)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printClamped(w io.Writer, event, observer geo.Point2D, radius float64, c geo.Clamped) {
	branch := "in range (floored)"
	if c.Clamped {
		branch = "clamped (truncated toward zero)"
	}
	fmt.Fprintf(w, "  event:    %v\n", event)
	fmt.Fprintf(w, "  observer: %v\n", observer)
	fmt.Fprintf(w, "  radius:   %g (distance %.3f)\n", radius, event.Distance(observer))
	fmt.Fprintf(w, "  point:    (%.9f, %.9f)\n", c.Point.X, c.Point.Z)
	fmt.Fprintf(w, "  branch:   %s\n", branch)
}

func printOutcome(w io.Writer, out *replay.Outcome) {
	fmt.Fprintf(w, "Event at %v, radius %g\n\n", out.Event, out.Radius)

	fmt.Fprintf(w, "%-14s %26s %22s %22s %-7s %s\n",
		"Case", "Observer", "Got", "Expected", "Branch", "Result")
	fmt.Fprintf(w, "%-14s %26s %22s %22s %-7s %s\n",
		"--------------", "--------------------------", "----------------------", "----------------------", "-------", "------")

	for _, c := range out.Cases {
		expected := "-"
		if c.Expect != nil {
			expected = c.Expect.String()
		}
		branch := "direct"
		if c.Clamped {
			branch = "clamp"
		}
		result := "PASS"
		if !c.Pass {
			result = "FAIL"
		}
		fmt.Fprintf(w, "%-14s %26s %22s %22s %-7s %s\n",
			c.Name, c.Observer, c.Got, expected, branch, result)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Passed: %d  Failed: %d\n", out.Passed, out.Failed)
	fmt.Fprintf(w, "Summary: %s\n", out.Report.Summary)
}
