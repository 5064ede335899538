package validation

import "fmt"

// Level indicates which stage produced a finding.
type Level string

const (
	LevelSchema Level = "schema"
	LevelRange  Level = "range"
	LevelReplay Level = "replay"
)

// Severity indicates how critical a finding is. Only errors make a
// report invalid.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single finding about a scenario document.
type Result struct {
	Level        Level    `json:"level"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	Path         string   `json:"path"`
	ActualValue  any      `json:"actual_value,omitempty"`
	Expected     string   `json:"expected,omitempty"`
	ConflictWith string   `json:"conflict_with,omitempty"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

// Report collects the findings for one scenario and, once it has been
// replayed, the tally of passing and failing cases.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Passed   int      `json:"passed"`
	Failed   int      `json:"failed"`
	Summary  string   `json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
	r.updateSummary()
	return r
}

// AddError adds an error and marks the report invalid.
func (r *Report) AddError(result Result) { r.add(SeverityError, result) }

// AddWarning adds a warning.
func (r *Report) AddWarning(result Result) { r.add(SeverityWarning, result) }

// AddInfo adds an informational note.
func (r *Report) AddInfo(result Result) { r.add(SeverityInfo, result) }

// RecordPass tallies a replayed case that matched its expectation.
func (r *Report) RecordPass() {
	r.Passed++
	r.updateSummary()
}

// RecordFailure tallies a replayed case that did not match and adds the
// mismatch as an error.
func (r *Report) RecordFailure(result Result) {
	r.Failed++
	r.add(SeverityError, result)
}

// Merge combines another report into this one.
func (r *Report) Merge(other *Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	r.Passed += other.Passed
	r.Failed += other.Failed
	r.Valid = r.Valid && other.Valid
	r.updateSummary()
}

func (r *Report) add(sev Severity, result Result) {
	result.Severity = sev
	switch sev {
	case SeverityError:
		r.Errors = append(r.Errors, result)
		r.Valid = false
	case SeverityWarning:
		r.Warnings = append(r.Warnings, result)
	default:
		r.Info = append(r.Info, result)
	}
	r.updateSummary()
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%s, %s, %d info",
		count(len(r.Errors), "error"), count(len(r.Warnings), "warning"), len(r.Info))
	if total := r.Passed + r.Failed; total > 0 {
		r.Summary += fmt.Sprintf("; %d/%d cases passed", r.Passed, total)
	}
}

func count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
