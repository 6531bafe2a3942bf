// Package eligibility compares a student's credentials against a program's
// minimum thresholds. Pure logic, no I/O.
package eligibility

// Requirement is a program's minimum thresholds. A nil threshold means the
// program sets no minimum for that leg, never that the leg is impossible.
type Requirement struct {
	MinSSCGPA       *float64
	MinHSCGPA       *float64
	MinOLevelPoints *int
	MinALevelPoints *int
}

// ActivePair returns the thresholds for the given scheme, with absent
// thresholds treated as 0.
func (r Requirement) ActivePair(system System) Pair {
	switch system {
	case SystemBD:
		return Pair{First: deref(r.MinSSCGPA), Second: deref(r.MinHSCGPA)}
	default:
		return Pair{
			First:  float64(derefInt(r.MinOLevelPoints)),
			Second: float64(derefInt(r.MinALevelPoints)),
		}
	}
}

// Result is the outcome of one eligibility check. It is ephemeral: computed on
// demand for display, never persisted as-is.
type Result struct {
	Eligible bool   `json:"eligible"`
	System   System `json:"system"`
	Student  Pair   `json:"student_values"`
	Required Pair   `json:"required_values"`
}

// Evaluate applies the decision rule: both legs must independently clear their
// threshold, equality included. Conjunctive, no partial credit, no rounding
// tolerance. Same inputs always yield the same result.
func Evaluate(system System, student Pair, req Requirement) Result {
	required := req.ActivePair(system)
	return Result{
		Eligible: student.First >= required.First && student.Second >= required.Second,
		System:   system,
		Student:  student,
		Required: required,
	}
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
