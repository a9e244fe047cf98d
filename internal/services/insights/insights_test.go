package insights

import (
	"testing"

	"VolScan/internal/domain/models"
)

func TestRiskLevels(t *testing.T) {
	cases := []struct {
		avg  float64
		want string
	}{
		{6.0, models.RiskVeryHigh},
		{5.0, models.RiskHigh}, // boundary stays in the lower band
		{3.5, models.RiskHigh},
		{2.0, models.RiskModerate},
		{1.5, models.RiskLow},
		{0.4, models.RiskLow},
	}
	for _, c := range cases {
		got := Analyze("X", models.WindowLast30Days, models.WindowStats{AvgRange: c.avg})
		if got.RiskLevel != c.want {
			t.Errorf("avg %v: expected %s, got %s", c.avg, c.want, got.RiskLevel)
		}
	}
}

func TestProfiles(t *testing.T) {
	cases := []struct {
		consistency float64
		want        string
	}{
		{5.5, models.ProfileConsistent},
		{3.0, models.ProfileModeratelyConsistent},
		{2.0, models.ProfileInconsistent},
		{0, models.ProfileInconsistent},
	}
	for _, c := range cases {
		got := Analyze("X", models.WindowLast30Days, models.WindowStats{Consistency: c.consistency})
		if got.Profile != c.want {
			t.Errorf("consistency %v: expected %s, got %s", c.consistency, c.want, got.Profile)
		}
	}
}

func TestSignalTags(t *testing.T) {
	ws := models.WindowStats{
		AvgRange:      4.5,
		Consistency:   4.5,
		DaysInWindow:  30,
		Swing2PctDays: 20, // 66% of days
		Swing3PctDays: 10, // 33% of days
		ExtremeDays:   4,  // 13% of days
	}
	report := Analyze("HOT", models.WindowLast30Days, ws)

	want := map[string]bool{
		models.SignalSwingTrading:  true,
		models.SignalExtremeMoves:  true,
		models.SignalMeanReversion: true,
		models.SignalMomentum:      true,
	}
	got := map[string]bool{}
	for _, s := range report.Signals {
		got[s] = true
	}
	for tag := range want {
		if !got[tag] {
			t.Errorf("expected signal %s", tag)
		}
	}
	if got[models.SignalLowVolatility] {
		t.Errorf("low volatility tag should not fire at 4.5%% average range")
	}
}

func TestLowVolatilitySignal(t *testing.T) {
	ws := models.WindowStats{AvgRange: 0.8, Consistency: 3.5, DaysInWindow: 30}
	report := Analyze("CALM", models.WindowLast30Days, ws)
	if len(report.Signals) != 1 || report.Signals[0] != models.SignalLowVolatility {
		t.Fatalf("expected only the low volatility signal, got %v", report.Signals)
	}
}

func TestEmptyWindowProducesNoSignals(t *testing.T) {
	report := Analyze("NIL", models.WindowToday, models.WindowStats{})
	if len(report.Signals) != 0 {
		t.Errorf("zero metrics must not produce signals, got %v", report.Signals)
	}
	if len(report.Observations) != 0 {
		t.Errorf("zero metrics must not produce observations, got %v", report.Observations)
	}
	if report.RiskLevel != models.RiskLow || report.Profile != models.ProfileInconsistent {
		t.Errorf("zero metrics should label low/inconsistent, got %s/%s", report.RiskLevel, report.Profile)
	}
}

func TestObservations(t *testing.T) {
	ws := models.WindowStats{
		AvgRange:         2.0,
		StdRange:         1.5,
		RealizedVol:      60,
		UltraExtremeDays: 2,
		DaysInWindow:     10,
		Swing2PctDays:    8,
		Swing3PctDays:    5,
	}
	report := Analyze("OBS", models.WindowLast7Days, ws)
	if len(report.Observations) != 5 {
		t.Fatalf("expected 5 observations, got %d: %v", len(report.Observations), report.Observations)
	}
}
