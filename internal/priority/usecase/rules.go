package usecase

import "strings"

// keywordRule assigns value when any keyword is a substring of the text.
type keywordRule struct {
	name     string
	keywords []string
	value    float64
}

// gradeWeightRules is evaluated top to bottom; the first family found in the
// title wins, so exam words beat every other family.
var gradeWeightRules = []keywordRule{
	{name: "exam", keywords: []string{"ujian", "uts", "uas", "exam", "final"}, value: 1.0},
	{name: "thesis", keywords: []string{"tugas akhir", "thesis", "skripsi", "proposal"}, value: 0.95},
	{name: "presentation", keywords: []string{"presentasi", "presentation"}, value: 0.85},
	{name: "report", keywords: []string{"laporan", "report", "essay", "paper"}, value: 0.7},
	{name: "quiz", keywords: []string{"quiz", "kuis"}, value: 0.6},
	{name: "practice", keywords: []string{"latihan", "practice", "exercise"}, value: 0.4},
}

var (
	highComplexityKeywords = []string{
		"analisis", "analysis", "desain", "design", "implementasi", "implementation",
		"coding", "programming", "develop", "build", "create", "research",
		"penelitian", "sistem", "system", "aplikasi", "application",
	}
	mediumComplexityKeywords = []string{
		"laporan", "report", "presentasi", "presentation", "essay",
		"review", "summary", "rangkuman", "study", "belajar",
	}
	lowComplexityKeywords = []string{
		"baca", "read", "latihan", "practice", "exercise", "simple",
	}
)

// keywordHits counts distinct keywords of each complexity family present in a text.
type keywordHits struct {
	high, medium, low int
}

type complexityRule struct {
	name  string
	match func(keywordHits) bool
	value float64
}

// complexityRules is evaluated top to bottom; no match leaves baseComplexity.
var complexityRules = []complexityRule{
	{name: "high>=2", match: func(h keywordHits) bool { return h.high >= 2 }, value: 0.9},
	{name: "high>=1", match: func(h keywordHits) bool { return h.high >= 1 }, value: 0.75},
	{name: "medium>=2", match: func(h keywordHits) bool { return h.medium >= 2 }, value: 0.6},
	{name: "medium>=1", match: func(h keywordHits) bool { return h.medium >= 1 }, value: 0.5},
	{name: "low>=1", match: func(h keywordHits) bool { return h.low >= 1 }, value: 0.3},
}

// estimateGradeWeight classifies a task title into a grade-weight factor.
func estimateGradeWeight(title string) float64 {
	t := strings.ToLower(title)
	for _, r := range gradeWeightRules {
		if containsAny(t, r.keywords) {
			return r.value
		}
	}
	return defaultGradeWeight
}

// estimateComplexity scores description and title. The result is capped at
// maxComplexity but never drops below baseComplexity.
func estimateComplexity(description, title string) float64 {
	text := strings.ToLower(description + " " + title)

	hits := keywordHits{
		high:   countContained(text, highComplexityKeywords),
		medium: countContained(text, mediumComplexityKeywords),
		low:    countContained(text, lowComplexityKeywords),
	}

	complexity := baseComplexity
	for _, r := range complexityRules {
		if r.match(hits) {
			complexity = r.value
			break
		}
	}

	if len(strings.Fields(text)) > longTextWordCount {
		complexity += longTextBonus
	}

	if complexity > maxComplexity {
		complexity = maxComplexity
	}
	return complexity
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func countContained(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}
