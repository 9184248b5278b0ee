package materials

import (
	"strings"
	"testing"
)

const (
	noteDuplex   = "High chlorides & elevated temperature → duplex class for pitting resistance."
	noteChloride = "Moderate chlorides and acidic conditions increase pitting/SCC risk."
	noteAcidic   = "Acidic conditions aggressive to CS and 300-series SS."
	noteHighTemp = "High temperature accelerates corrosion; verify chloride SCC risk."
)

func TestSuggestBranches(t *testing.T) {
	tests := []struct {
		name       string
		in         Conditions
		suggestion string
		notes      string
		rule       string
	}{
		{
			name:       "high chloride and temperature",
			in:         Conditions{ChloridePPM: 20000, PH: 7, TempC: 60},
			suggestion: "Super duplex stainless steel (e.g., UNS S32750)",
			notes:      noteDuplex,
			rule:       RuleHighChlorideHighTemp,
		},
		{
			name:       "moderate chloride acidic",
			in:         Conditions{ChloridePPM: 1000, PH: 6.0, TempC: 25},
			suggestion: "316L stainless or 2205 duplex; consider corrosion inhibitor",
			notes:      noteChloride,
			rule:       RuleChlorideAcidic,
		},
		{
			name:       "acidic only",
			in:         Conditions{ChloridePPM: 100, PH: 4.5, TempC: 25},
			suggestion: "Alloy 625 / 825 or lined carbon steel; inhibitor required",
			notes:      noteAcidic,
			rule:       RuleAcidic,
		},
		{
			name:       "baseline",
			in:         Conditions{ChloridePPM: 100, PH: 7, TempC: 25},
			suggestion: FallbackSuggestion,
			notes:      BaselineNote,
			rule:       "",
		},
		{
			name:       "high chloride below temperature threshold falls through to chloride acidic",
			in:         Conditions{ChloridePPM: 25000, PH: 4.0, TempC: 59.9},
			suggestion: "316L stainless or 2205 duplex; consider corrosion inhibitor",
			notes:      noteChloride,
			rule:       RuleChlorideAcidic,
		},
		{
			name:       "first match wins over later acidic rule",
			in:         Conditions{ChloridePPM: 30000, PH: 3.0, TempC: 70},
			suggestion: "Super duplex stainless steel (e.g., UNS S32750)",
			notes:      noteDuplex,
			rule:       RuleHighChlorideHighTemp,
		},
		{
			name:       "physically implausible values still classified",
			in:         Conditions{ChloridePPM: -5, PH: -2, TempC: -300},
			suggestion: "Alloy 625 / 825 or lined carbon steel; inhibitor required",
			notes:      noteAcidic,
			rule:       RuleAcidic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.in)
			if got.Suggestion != tt.suggestion {
				t.Errorf("suggestion = %q, want %q", got.Suggestion, tt.suggestion)
			}
			if got.Notes != tt.notes {
				t.Errorf("notes = %q, want %q", got.Notes, tt.notes)
			}
			if got.MatchedRule != tt.rule {
				t.Errorf("matched rule = %q, want %q", got.MatchedRule, tt.rule)
			}
		})
	}
}

// TestHighTemperatureNoteIsIndependent verifies the supplementary note is
// appended after whatever the ladder produced.
func TestHighTemperatureNoteIsIndependent(t *testing.T) {
	tests := []struct {
		name       string
		in         Conditions
		suggestion string
		notes      string
	}{
		{
			name:       "with super duplex",
			in:         Conditions{ChloridePPM: 20000, PH: 7, TempC: 85},
			suggestion: "Super duplex stainless steel (e.g., UNS S32750)",
			notes:      noteDuplex + " " + noteHighTemp,
		},
		{
			name:       "with chloride acidic",
			in:         Conditions{ChloridePPM: 5000, PH: 5, TempC: 80},
			suggestion: "316L stainless or 2205 duplex; consider corrosion inhibitor",
			notes:      noteChloride + " " + noteHighTemp,
		},
		{
			name:       "with acidic",
			in:         Conditions{ChloridePPM: 0, PH: 3, TempC: 95},
			suggestion: "Alloy 625 / 825 or lined carbon steel; inhibitor required",
			notes:      noteAcidic + " " + noteHighTemp,
		},
		{
			name:       "with fallback replaces baseline",
			in:         Conditions{ChloridePPM: 0, PH: 7, TempC: 80},
			suggestion: FallbackSuggestion,
			notes:      noteHighTemp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.in)
			if got.Suggestion != tt.suggestion {
				t.Errorf("suggestion = %q, want %q", got.Suggestion, tt.suggestion)
			}
			if got.Notes != tt.notes {
				t.Errorf("notes = %q, want %q", got.Notes, tt.notes)
			}
			if len(got.FiredChecks) != 1 || got.FiredChecks[0] != CheckHighTemperature {
				t.Errorf("fired checks = %v", got.FiredChecks)
			}
			if strings.Contains(got.Notes, BaselineNote) {
				t.Error("baseline note must not appear when a check fired")
			}
		})
	}
}

func TestSeawaterProcessExample(t *testing.T) {
	got := Suggest(Conditions{ChloridePPM: 5000, PH: 5.0, TempC: 70})
	if got.MatchedRule != RuleChlorideAcidic {
		t.Errorf("expected chloride-acidic rule, got %q", got.MatchedRule)
	}
	if got.Notes != noteChloride {
		t.Errorf("notes = %q", got.Notes)
	}
}

func TestCustomLadder(t *testing.T) {
	ladder := Ladder{
		{Name: "never", Matches: func(Conditions) bool { return false }, Suggestion: "x", Note: "x"},
		{Name: "always", Matches: func(Conditions) bool { return true }, Suggestion: "Titanium Grade 2", Note: "Custom."},
		{Name: "shadowed", Matches: func(Conditions) bool { return true }, Suggestion: "y", Note: "y"},
	}
	engine := NewEngine(ladder, nil)

	got := engine.Suggest(Conditions{})
	if got.Suggestion != "Titanium Grade 2" || got.Notes != "Custom." || got.MatchedRule != "always" {
		t.Errorf("unexpected result %+v", got)
	}
	if len(engine.Rules()) != 3 {
		t.Errorf("Rules() returned %d rules", len(engine.Rules()))
	}
}

func TestEmptyLadderFallsBack(t *testing.T) {
	got := NewEngine(nil, nil).Suggest(Conditions{PH: 1})
	if got.Suggestion != FallbackSuggestion || got.Notes != BaselineNote {
		t.Errorf("unexpected result %+v", got)
	}
}
