package eligibility

import (
	"fmt"
	"strconv"
	"strings"
)

// System selects which credential scheme is authoritative.
type System string

const (
	SystemBD        System = "BD"
	SystemCambridge System = "Cambridge"
)

func (s System) Valid() bool {
	return s == SystemBD || s == SystemCambridge
}

// ParseSystem accepts the wire value case-insensitively.
func ParseSystem(raw string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "bd":
		return SystemBD, nil
	case "cambridge":
		return SystemCambridge, nil
	default:
		return "", fmt.Errorf("unknown education system %q", raw)
	}
}

// ParseError reports a credential field that could not be parsed. Evaluation
// refuses to run on a ParseError instead of defaulting the value to zero.
type ParseError struct {
	Field string
	Raw   string
}

func (e *ParseError) Error() string {
	if strings.TrimSpace(e.Raw) == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s: invalid value %q", e.Field, e.Raw)
}

// Credentials holds the raw text input for both schemes. Switching the active
// system does not clear the inactive scheme's values; only the active pair is
// ever read at evaluation time.
type Credentials struct {
	System    System
	SSCGPARaw string
	HSCGPARaw string
	OLevelRaw string
	ALevelRaw string
}

func (c *Credentials) SetSystem(s System) { c.System = s }

func (c *Credentials) SetValue(field, raw string) {
	switch field {
	case "ssc_gpa":
		c.SSCGPARaw = raw
	case "hsc_gpa":
		c.HSCGPARaw = raw
	case "o_level_points":
		c.OLevelRaw = raw
	case "a_level_points":
		c.ALevelRaw = raw
	}
}

// Pair is the two compared credential values. For the BD system this is
// (SSC GPA, HSC GPA); for Cambridge it is (O-Level points, A-Level points).
type Pair struct {
	First  float64
	Second float64
}

// ActivePair parses the active scheme's values. The inactive scheme's fields
// are ignored even if populated.
func (c *Credentials) ActivePair() (Pair, error) {
	switch c.System {
	case SystemBD:
		ssc, err := parseGPA("ssc_gpa", c.SSCGPARaw)
		if err != nil {
			return Pair{}, err
		}
		hsc, err := parseGPA("hsc_gpa", c.HSCGPARaw)
		if err != nil {
			return Pair{}, err
		}
		return Pair{First: ssc, Second: hsc}, nil
	case SystemCambridge:
		o, err := parsePoints("o_level_points", c.OLevelRaw)
		if err != nil {
			return Pair{}, err
		}
		a, err := parsePoints("a_level_points", c.ALevelRaw)
		if err != nil {
			return Pair{}, err
		}
		return Pair{First: float64(o), Second: float64(a)}, nil
	default:
		return Pair{}, fmt.Errorf("unknown education system %q", c.System)
	}
}

func parseGPA(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ParseError{Field: field, Raw: raw}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 5.0 {
		return 0, &ParseError{Field: field, Raw: raw}
	}
	return v, nil
}

func parsePoints(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ParseError{Field: field, Raw: raw}
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, &ParseError{Field: field, Raw: raw}
	}
	return v, nil
}
