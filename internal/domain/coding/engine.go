package coding

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"
)

// EngineVersion tags results produced by this rule table.
const EngineVersion = "0.1.0"

// VisitLowComplexity is the visit complexity value that qualifies a
// high-confidence job for autonomous submission.
const VisitLowComplexity = "low-complexity outpatient"

// Fallback code emitted when no term matches a note.
const (
	FallbackCode       = "Z00.00"
	fallbackDesc       = "General medical examination, unspecified"
	fallbackConfidence = 0.50
)

// ErrEmptyNote is returned when the clinical note is empty or whitespace.
var ErrEmptyNote = errors.New("clinical note is empty")

// Options carries the per-note classification flags.
type Options struct {
	// UseExternalNLP simulates a call to an external NLP service. The
	// matching itself is unchanged; only latency and the caller's audit
	// tag differ.
	UseExternalNLP bool
	// VisitComplexity feeds the autonomy decision.
	VisitComplexity string
}

// Result is the outcome of classifying one note.
type Result struct {
	EngineVersion   string
	Codes           []SuggestedCode
	ConfidenceScore float64
	Phase           string
	Status          string
}

type termEntry struct {
	synonyms   []string
	code       string
	desc       string
	confidence float64
}

// termTable maps clinical terms to ICD-10 codes. Entries are tested in
// order; per entry the first matching synonym wins and the rest are skipped.
var termTable = []termEntry{
	{[]string{"pneumonia", "pneumonitis", "سعال شديد"}, "J18.9", "Pneumonia, unspecified organism", 0.85},
	{[]string{"myocardial infarction", "mi", "heart attack", "myocardial infarct"}, "I21.9", "Acute MI, unspecified", 0.99},
	{[]string{"appendicitis", "appendix pain", "appendix inflammation", "ألم الزائدة"}, "K37", "Unspecified appendicitis", 0.95},
	{[]string{"uti", "urinary tract infection"}, "N39.0", "Urinary tract infection, site not specified", 0.80},
	{[]string{"left leg fracture", "left tibia fracture"}, "S82.202A", "Unspecified fracture of shaft of left tibia, initial encounter", 0.88},
	{[]string{"right leg fracture", "right tibia fracture"}, "S82.201A", "Unspecified fracture of shaft of right tibia, initial encounter", 0.88},
	{[]string{"fracture", "broken bone", "كسر"}, "S82.90XA", "Unspecified fracture of lower leg, check laterality", 0.75},
	{[]string{"diabetes", "sukari", "diabetic"}, "E11.9", "Type 2 diabetes mellitus without complications", 0.92},
	{[]string{"hypertension", "high blood pressure", "ضغط دم مرتفع"}, "I10", "Essential (primary) hypertension", 0.98},
	{[]string{"cough"}, "R05", "Cough", 0.95},
}

// Engine classifies clinical notes against the term table. The random
// source drives the confidence jitter and is injected so tests can pin it.
type Engine struct {
	mu         sync.Mutex
	rng        *rand.Rand
	nlpLatency time.Duration
}

// NewEngine creates an engine with the given jitter source and simulated
// external-NLP latency.
func NewEngine(rng *rand.Rand, nlpLatency time.Duration) *Engine {
	return &Engine{rng: rng, nlpLatency: nlpLatency}
}

// Classify maps a note to suggested codes, an aggregate confidence score,
// and the autonomy phase/status decision. Fails with ErrEmptyNote on empty
// or whitespace-only input. When external NLP is requested the call incurs
// a bounded simulated delay; the decision itself is unaffected.
func (e *Engine) Classify(_ context.Context, note string, opts Options) (Result, error) {
	if strings.TrimSpace(note) == "" {
		return Result{}, ErrEmptyNote
	}

	if opts.UseExternalNLP && e.nlpLatency > 0 {
		time.Sleep(e.nlpLatency)
	}

	codes := e.match(note)
	if len(codes) == 0 {
		codes = append(codes, SuggestedCode{Code: FallbackCode, Desc: fallbackDesc, Confidence: fallbackConfidence})
	}

	var sum float64
	for _, c := range codes {
		sum += c.Confidence
	}
	score := round2(sum / float64(len(codes)))

	phase, status := decide(score, opts.VisitComplexity)
	return Result{
		EngineVersion:   EngineVersion,
		Codes:           codes,
		ConfidenceScore: score,
		Phase:           phase,
		Status:          status,
	}, nil
}

func (e *Engine) match(note string) []SuggestedCode {
	var codes []SuggestedCode
	seen := make(map[string]bool)
	for _, entry := range termTable {
		for _, syn := range entry.synonyms {
			if !containsPhrase(note, syn) {
				continue
			}
			if !seen[entry.code] {
				codes = append(codes, SuggestedCode{
					Code:       entry.code,
					Desc:       entry.desc,
					Confidence: e.jitter(entry.confidence),
				})
				seen[entry.code] = true
			}
			break
		}
	}
	return codes
}

// jitter applies uniform variance of ±0.05 to a base confidence, clamped
// at 0.99 and rounded to 2 decimals.
func (e *Engine) jitter(base float64) float64 {
	e.mu.Lock()
	v := base + (e.rng.Float64()*0.10 - 0.05)
	e.mu.Unlock()
	if v > 0.99 {
		v = 0.99
	}
	return round2(v)
}

// decide applies the autonomy rules in precedence order.
func decide(score float64, visitComplexity string) (phase, status string) {
	switch {
	case score > 0.98 && visitComplexity == VisitLowComplexity:
		return PhaseAutonomous, StatusSentToNphies
	case score > 0.90:
		return PhaseSemiAutonomous, StatusAutoDrop
	default:
		return PhaseCAC, StatusNeedsReview
	}
}

// containsPhrase reports whether phrase occurs in note as a case-insensitive
// whole-word match. Phrases may span multiple words and are matched as a
// contiguous run; the characters adjacent to the match must not be letters
// or digits.
func containsPhrase(note, phrase string) bool {
	n := strings.ToLower(note)
	p := strings.ToLower(phrase)
	if p == "" {
		return false
	}
	for offset := 0; ; {
		i := strings.Index(n[offset:], p)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(p)
		if !wordCharBefore(n, start) && !wordCharAt(n, end) {
			return true
		}
		offset = start + 1
	}
}

func wordCharBefore(s string, idx int) bool {
	if idx == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:idx])
	return isWordChar(r)
}

func wordCharAt(s string, idx int) bool {
	if idx >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[idx:])
	return isWordChar(r)
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
