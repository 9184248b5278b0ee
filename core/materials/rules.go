// Package materials provides the rule-based material suggestion engine.
//
// Suggestions are advisory. They illustrate screening logic for chloride, pH
// and temperature and are not a certified materials selection.
package materials

import "strings"

// Conditions describes the service environment. Any real value is accepted.
type Conditions struct {
	ChloridePPM float64 `json:"chloride_ppm" yaml:"chloride_ppm"`
	PH          float64 `json:"pH" yaml:"pH"`
	TempC       float64 `json:"temp_C" yaml:"temp_C"`
}

// Rule is one row of the suggestion ladder
type Rule struct {
	// Name identifies the rule in results and logs
	Name string

	// Matches reports whether the rule applies
	Matches func(c Conditions) bool

	// Suggestion is the recommended material class
	Suggestion string

	// Note explains the recommendation
	Note string
}

// Check is an independent note evaluated after the ladder regardless of
// which rule, if any, matched.
type Check struct {
	Name    string
	Matches func(c Conditions) bool
	Note    string
}

// Ladder is an ordered rule list; the first matching rule wins.
type Ladder []Rule

// Find returns the first rule that matches, or nil
func (l Ladder) Find(c Conditions) *Rule {
	for i := range l {
		if l[i].Matches(c) {
			return &l[i]
		}
	}
	return nil
}

const (
	// FallbackSuggestion applies when no ladder rule matches
	FallbackSuggestion = "Carbon steel with coating"

	// BaselineNote is returned when no rule matched and no check fired
	BaselineNote = "Baseline service; verify with detailed materials selection."
)

// Rule names
const (
	RuleHighChlorideHighTemp = "high-chloride-high-temp"
	RuleChlorideAcidic       = "chloride-acidic"
	RuleAcidic               = "acidic"
	CheckHighTemperature     = "high-temperature"
)

// DefaultLadder returns the screening rules in evaluation order
func DefaultLadder() Ladder {
	return Ladder{
		{
			Name:       RuleHighChlorideHighTemp,
			Matches:    func(c Conditions) bool { return c.ChloridePPM >= 20000 && c.TempC >= 60 },
			Suggestion: "Super duplex stainless steel (e.g., UNS S32750)",
			Note:       "High chlorides & elevated temperature → duplex class for pitting resistance.",
		},
		{
			Name:       RuleChlorideAcidic,
			Matches:    func(c Conditions) bool { return c.ChloridePPM >= 1000 && c.PH <= 6.0 },
			Suggestion: "316L stainless or 2205 duplex; consider corrosion inhibitor",
			Note:       "Moderate chlorides and acidic conditions increase pitting/SCC risk.",
		},
		{
			Name:       RuleAcidic,
			Matches:    func(c Conditions) bool { return c.PH <= 4.5 },
			Suggestion: "Alloy 625 / 825 or lined carbon steel; inhibitor required",
			Note:       "Acidic conditions aggressive to CS and 300-series SS.",
		},
	}
}

// DefaultChecks returns the supplementary checks in evaluation order
func DefaultChecks() []Check {
	return []Check{
		{
			Name:    CheckHighTemperature,
			Matches: func(c Conditions) bool { return c.TempC >= 80 },
			Note:    "High temperature accelerates corrosion; verify chloride SCC risk.",
		},
	}
}

// Suggestion is the engine output
type Suggestion struct {
	Suggestion string `json:"suggestion"`
	Notes      string `json:"notes"`

	// MatchedRule is empty when the fallback applied
	MatchedRule string `json:"matched_rule,omitempty"`

	// FiredChecks lists the supplementary checks that added a note
	FiredChecks []string `json:"fired_checks,omitempty"`
}

// Engine evaluates a ladder followed by its checks
type Engine struct {
	ladder   Ladder
	checks   []Check
	fallback string
}

// NewEngine creates an engine over the given ladder and checks
func NewEngine(ladder Ladder, checks []Check) *Engine {
	return &Engine{
		ladder:   ladder,
		checks:   checks,
		fallback: FallbackSuggestion,
	}
}

// NewDefaultEngine creates an engine over DefaultLadder and DefaultChecks
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultLadder(), DefaultChecks())
}

// Rules returns the ladder the engine evaluates
func (e *Engine) Rules() Ladder {
	return e.ladder
}

// Suggest evaluates the conditions
func (e *Engine) Suggest(c Conditions) Suggestion {
	out := Suggestion{Suggestion: e.fallback}
	var notes []string

	if rule := e.ladder.Find(c); rule != nil {
		out.Suggestion = rule.Suggestion
		out.MatchedRule = rule.Name
		notes = append(notes, rule.Note)
	}

	for _, check := range e.checks {
		if check.Matches(c) {
			notes = append(notes, check.Note)
			out.FiredChecks = append(out.FiredChecks, check.Name)
		}
	}

	if len(notes) == 0 {
		out.Notes = BaselineNote
	} else {
		out.Notes = strings.Join(notes, " ")
	}
	return out
}

var defaultEngine = NewDefaultEngine()

// Suggest evaluates the conditions against the default rules
func Suggest(c Conditions) Suggestion {
	return defaultEngine.Suggest(c)
}
