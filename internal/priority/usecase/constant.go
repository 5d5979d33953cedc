package usecase

// Log prefixes
const (
	logPrefixCalculate = "internal.priority.usecase.Calculate"
	logPrefixEstimate  = "internal.priority.usecase.EstimateTime"
	logPrefixRank      = "internal.priority.usecase.Rank"
)

// Component weights. Each factor in [0,1] is multiplied by its weight.
const (
	gradeWeightPoints = 35
	complexityPoints  = 25

	farDeadlineScore = 10
)

// Tier thresholds on the unrounded total.
const (
	highTierMin   = 70
	mediumTierMin = 40
)

// Complexity tuning.
const (
	baseComplexity    = 0.3
	longTextWordCount = 50
	longTextBonus     = 0.1
	maxComplexity     = 1.0
)

// Factor thresholds used by reasons, recommendations and estimates.
const (
	defaultGradeWeight  = 0.5
	highComplexityMin   = 0.7
	mediumComplexityMin = 0.5
	veryImportantMin    = 0.8
	quiteImportantMin   = 0.6
)

const defaultRankLimit = 5

// Reason phrases
const (
	reasonDeadlineDay     = "Deadline sangat dekat (≤1 hari)"
	reasonDeadlineSoon    = "Deadline mendekat (≤3 hari)"
	reasonDeadlineWeek    = "Deadline minggu ini"
	reasonComplexityHigh  = "Kompleksitas tinggi"
	reasonComplexityMed   = "Kompleksitas sedang"
	reasonGradeVeryImport = "Bobot nilai sangat penting"
	reasonGradeQuite      = "Bobot nilai cukup penting"
	reasonStandard        = "Tugas standar"
	reasonSeparator       = " + "
)

// Recommendations
const (
	recommendNow        = "🚨 Kerjakan SEKARANG! Deadline sangat dekat."
	recommendStartToday = "⚡ Mulai hari ini! Tugas ini membutuhkan waktu signifikan."
	recommendPrioritize = "📌 Prioritaskan tugas ini dalam 1-2 hari ke depan."
	recommendPlanSoon   = "📅 Rencanakan untuk mulai dalam 1-2 hari."
	recommendThisWeek   = "✅ Jadwalkan minggu ini, masih ada waktu cukup."
	recommendNextWeek   = "📝 Bisa dijadwalkan untuk minggu depan."
)

// Best time to work
const (
	bestTimeMorning         = "Pagi (9:00 - 11:00 AM) - Peak productivity time"
	bestTimeAfternoon       = "Sore (14:00 - 16:00 PM) - Good focus time"
	bestTimeTomorrowMorning = "Besok pagi (9:00 - 11:00 AM) - Fresh mind"
)

// Estimates
const (
	estimateLabel         = "%d jam"
	estimateLabelMultiDay = "%d jam (spread over multiple days)"
	multiDayHours         = 6
)
