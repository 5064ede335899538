package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ChicagoDave/relcoords/pkg/geo"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestComputeClamped(t *testing.T) {
	out, err := execute(t, "compute",
		"--event-x", "1000000", "--event-z", "1000000",
		"--observer-x", "100000", "--observer-z", "-100000",
		"--radius", "160")
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if out != "100101 -99876\n" {
		t.Errorf("output = %q, want %q", out, "100101 -99876\n")
	}
}

func TestComputeViewDistance(t *testing.T) {
	out, err := execute(t, "compute",
		"--event-x", "64.5", "--event-z", "-20.25",
		"--observer-x", "1000", "--observer-z", "-20.25",
		"--view-distance", "10", "-v")
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if !strings.HasPrefix(out, "839 -20\n") {
		t.Errorf("output = %q, want prefix %q", out, "839 -20\n")
	}
	if !strings.Contains(out, "clamped (truncated toward zero)") {
		t.Errorf("verbose output missing branch: %q", out)
	}
}

func TestComputeRequiresRadius(t *testing.T) {
	if _, err := execute(t, "compute", "--event-x", "1"); err == nil {
		t.Error("expected error without radius or view distance")
	}
}

func TestComputeNegativeRadius(t *testing.T) {
	_, err := execute(t, "compute", "--radius=-5")
	if !errors.Is(err, geo.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCheckGolden(t *testing.T) {
	var buf bytes.Buffer
	if err := runCheck(&buf, "../../examples/golden", false); err != nil {
		t.Fatalf("check failed: %v\n%s", err, buf.String())
	}
	if !strings.Contains(buf.String(), "Passed: 8  Failed: 0") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestCheckJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := runCheck(&buf, "../../examples/view-distance", true); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	var out struct {
		Radius float64 `json:"radius"`
		Passed int     `json:"passed"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if out.Radius != 160 || out.Passed != 2 {
		t.Errorf("radius/passed = %v/%d, want 160/2", out.Radius, out.Passed)
	}
}

func TestCheckMismatch(t *testing.T) {
	dir := t.TempDir()
	doc := "event: {x: 100, z: 0}\nradius: 10\ncases:\n  - name: off\n    observer: {x: 0, z: 0}\n    expect: {x: 10, z: 0}\n"
	if err := os.WriteFile(filepath.Join(dir, "scenario.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := runCheck(&buf, dir, false)
	if err == nil {
		t.Fatal("expected failure for mismatching case")
	}
	// Both coordinates land exactly on integers and lose one to the epsilon nudge.
	if !strings.Contains(buf.String(), "(9, -1)") {
		t.Errorf("expected got (9, -1) in output:\n%s", buf.String())
	}
}

func TestValidateInvalid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "scenario.yaml"), []byte("event: {x: 0, z: 0}\ncases: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := runValidate(&buf, dir)
	if !errors.Is(err, errInvalidScenario) {
		t.Errorf("expected errInvalidScenario, got %v", err)
	}
	if !strings.Contains(buf.String(), "Result: INVALID") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestValidateFractionalExpect(t *testing.T) {
	dir := t.TempDir()
	doc := "event: {x: 0, z: 0}\nradius: 16\ncases:\n  - observer: {x: 1, z: 1}\n    expect: {x: 0.5, z: 0}\n"
	if err := os.WriteFile(filepath.Join(dir, "scenario.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runValidate(&buf, dir); !errors.Is(err, errInvalidScenario) {
		t.Errorf("expected errInvalidScenario, got %v", err)
	}
	if !strings.Contains(buf.String(), "/cases/0/expect/x") {
		t.Errorf("expected schema finding for expect.x in output:\n%s", buf.String())
	}
	buf.Reset()
	if err := runCheck(&buf, dir, false); !errors.Is(err, errInvalidScenario) {
		t.Errorf("check: expected errInvalidScenario, got %v", err)
	}
}

func TestComputeBeyondBlockRange(t *testing.T) {
	_, err := execute(t, "compute", "--event-x=1e19", "--observer-x=1e19", "--radius=10")
	if !errors.Is(err, geo.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestValidateMissingProject(t *testing.T) {
	var buf bytes.Buffer
	if err := runValidate(&buf, "/nonexistent/path"); err == nil {
		t.Error("expected error for missing project")
	}
}
