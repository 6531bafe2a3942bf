package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }

func TestEvaluateBDBothLegsPass(t *testing.T) {
	res := Evaluate(SystemBD, Pair{First: 5.0, Second: 5.0}, Requirement{
		MinSSCGPA: f64(4.5),
		MinHSCGPA: f64(4.0),
	})
	assert.True(t, res.Eligible)
	assert.Equal(t, SystemBD, res.System)
	assert.Equal(t, Pair{First: 4.5, Second: 4.0}, res.Required)
}

func TestEvaluateBDOneLegFails(t *testing.T) {
	// hsc clears its threshold but ssc does not; the rule is conjunctive
	res := Evaluate(SystemBD, Pair{First: 3.0, Second: 5.0}, Requirement{
		MinSSCGPA: f64(4.5),
		MinHSCGPA: f64(4.0),
	})
	assert.False(t, res.Eligible)
}

func TestEvaluateCambridgeExactEquality(t *testing.T) {
	res := Evaluate(SystemCambridge, Pair{First: 40, Second: 15}, Requirement{
		MinOLevelPoints: i(40),
		MinALevelPoints: i(15),
	})
	assert.True(t, res.Eligible, "equality at the threshold passes")
}

func TestEvaluateAbsentThresholdNeverBlocks(t *testing.T) {
	res := Evaluate(SystemBD, Pair{First: 0, Second: 3.0}, Requirement{
		MinHSCGPA: f64(3.0),
	})
	assert.True(t, res.Eligible)
}

func TestEvaluateVacuousPass(t *testing.T) {
	for _, sys := range []System{SystemBD, SystemCambridge} {
		res := Evaluate(sys, Pair{}, Requirement{})
		assert.True(t, res.Eligible, "empty requirement must pass every pair (%s)", sys)
	}
}

func TestEvaluateMonotonic(t *testing.T) {
	req := Requirement{MinSSCGPA: f64(4.0), MinHSCGPA: f64(3.5)}
	base := Pair{First: 4.0, Second: 3.5}
	require.True(t, Evaluate(SystemBD, base, req).Eligible)

	// raising either value cannot flip the decision to false
	for _, p := range []Pair{
		{First: 4.5, Second: 3.5},
		{First: 4.0, Second: 5.0},
		{First: 5.0, Second: 5.0},
	} {
		assert.True(t, Evaluate(SystemBD, p, req).Eligible)
	}
}

func TestActivePairUsesOnlyActiveScheme(t *testing.T) {
	creds := Credentials{
		System:    SystemBD,
		SSCGPARaw: "4.8",
		HSCGPARaw: "4.2",
		// stale Cambridge values must not leak into the decision
		OLevelRaw: "not a number",
		ALevelRaw: "",
	}

	pair, err := creds.ActivePair()
	require.NoError(t, err)
	assert.Equal(t, Pair{First: 4.8, Second: 4.2}, pair)

	creds.SetSystem(SystemCambridge)
	creds.SetValue("o_level_points", "40")
	creds.SetValue("a_level_points", "15")
	pair, err = creds.ActivePair()
	require.NoError(t, err)
	assert.Equal(t, Pair{First: 40, Second: 15}, pair)
}

func TestActivePairRefusesBadInput(t *testing.T) {
	cases := []struct {
		name  string
		creds Credentials
		field string
	}{
		{"empty ssc", Credentials{System: SystemBD, SSCGPARaw: "", HSCGPARaw: "4.0"}, "ssc_gpa"},
		{"malformed hsc", Credentials{System: SystemBD, SSCGPARaw: "4.0", HSCGPARaw: "4,0"}, "hsc_gpa"},
		{"gpa above scale", Credentials{System: SystemBD, SSCGPARaw: "5.5", HSCGPARaw: "4.0"}, "ssc_gpa"},
		{"negative points", Credentials{System: SystemCambridge, OLevelRaw: "-1", ALevelRaw: "10"}, "o_level_points"},
		{"fractional points", Credentials{System: SystemCambridge, OLevelRaw: "40.5", ALevelRaw: "10"}, "o_level_points"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.creds.ActivePair()
			require.Error(t, err)
			perr, ok := err.(*ParseError)
			require.True(t, ok, "expected *ParseError, got %T", err)
			assert.Equal(t, tc.field, perr.Field)
		})
	}
}

func TestParseSystem(t *testing.T) {
	s, err := ParseSystem(" bd ")
	require.NoError(t, err)
	assert.Equal(t, SystemBD, s)

	s, err = ParseSystem("Cambridge")
	require.NoError(t, err)
	assert.Equal(t, SystemCambridge, s)

	_, err = ParseSystem("IB")
	assert.Error(t, err)
}
