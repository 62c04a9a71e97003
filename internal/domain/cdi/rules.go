package cdi

import (
	"fmt"
	"strings"
)

// Finding is one documentation gap flagged by the analyzer. Unlike a stored
// Nudge it has no lifecycle; it exists only in the analyze response.
type Finding struct {
	ID            string   `json:"id"`
	Severity      string   `json:"severity"`
	Prompt        string   `json:"prompt"`
	Fields        []string `json:"fields"`
	SuggestedText string   `json:"suggested_text,omitempty"`
}

// AnalyzeResult is the full analyzer response for one draft note.
type AnalyzeResult struct {
	Nudges  []Finding `json:"nudges"`
	Summary string    `json:"summary"`
}

type rule struct {
	keyword   string
	negations []string
	finding   Finding
}

// ruleTable is the deterministic gap ruleset. A rule fires when its keyword
// appears in the note and none of its negation keywords do; a negation
// means the physician already supplied the specificity the rule asks for.
var ruleTable = []rule{
	{
		keyword:   "pneumonia",
		negations: []string{"organism", "bacterial", "viral", "lobar", "atypical"},
		finding: Finding{
			ID:       "pneumonia_specificity",
			Severity: SeverityWarning,
			Prompt:   "Specify the causative organism for 'pneumonia' if known (e.g., bacterial, viral, or specific organism).",
		},
	},
	{
		keyword:   "urinary tract infection",
		negations: []string{"cystitis", "pyelonephritis", "urosepsis", "catheter-associated"},
		finding: Finding{
			ID:       "uti_specificity",
			Severity: SeverityWarning,
			Prompt:   "Specify the site for 'urinary tract infection' if known (e.g., cystitis, pyelonephritis).",
		},
	},
	{
		keyword:   "fracture",
		negations: []string{"left", "right", "bilateral"},
		finding: Finding{
			ID:       "fracture_laterality",
			Severity: SeverityCritical,
			Prompt:   "Specify laterality (left, right) for the diagnosed 'fracture'.",
		},
	},
}

// Analyze runs the draft note through the rule table and returns the gaps
// found, in rule order.
func Analyze(note string) AnalyzeResult {
	lower := strings.ToLower(note)
	findings := []Finding{}
	for _, r := range ruleTable {
		if !strings.Contains(lower, r.keyword) {
			continue
		}
		satisfied := false
		for _, neg := range r.negations {
			if strings.Contains(lower, neg) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			f := r.finding
			f.Fields = []string{}
			findings = append(findings, f)
		}
	}
	return AnalyzeResult{
		Nudges:  findings,
		Summary: fmt.Sprintf("Found %d potential documentation improvement(s).", len(findings)),
	}
}
