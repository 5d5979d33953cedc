package usecase

import "time"

// Log prefixes
const (
	logPrefixParseTask      = "internal.extraction.usecase.ParseTask"
	logPrefixParseSchedule  = "internal.extraction.usecase.ParseSchedule"
	logPrefixDetectType     = "internal.extraction.usecase.DetectType"
	logPrefixExtract        = "internal.extraction.usecase.Extract"
	logPrefixExportSchedule = "internal.extraction.usecase.ExportSchedule"
	logPrefixExportTask     = "internal.extraction.usecase.ExportTask"
)

// Confidence
const (
	baseConfidence = 50
	maxConfidence  = 100

	taskTitleBonus    = 10
	taskCourseBonus   = 15
	taskDateBonus     = 20
	taskTimeBonus     = 5
	taskUrgencyBonus  = 10
	scheduleCourse    = 20
	scheduleDay       = 15
	scheduleTimeRange = 15
	scheduleLocation  = 10
)

// Task draft limits and fallbacks
const (
	minTitleRunes      = 10
	maxTitleRunes      = 100
	maxDescRunes       = 500
	truncationMarker   = "..."
	fallbackTitle      = "Tugas "
	fallbackTitleTopic = "Kuliah"
	fallbackCourse     = "General"
	fallbackDesc       = "No description provided"
)

// Schedule fallbacks
const (
	defaultStartTime = "08:00"
	defaultEndTime   = "10:00"
	unknownCourse    = "Unknown Course"
	unknownLocation  = "TBA"
)

// Calendar export
const (
	classSlotDuration     = 100 * time.Minute
	deadlineEventDuration = 30 * time.Minute
	deadlineSummaryPrefix = "Deadline: "
)

// courseVocabulary is matched case-insensitively, in this order.
var courseVocabulary = []string{
	"pemrograman web",
	"basis data",
	"algoritma",
	"struktur data",
	"sistem informasi",
	"desain ui/ux",
	"metodologi penelitian",
	"kalkulus",
	"statistika",
	"jaringan komputer",
	"machine learning",
	"artificial intelligence",
	"mobile programming",
}

var actionVocabulary = []string{
	"kumpulkan", "submit", "kirim", "buat", "create", "develop",
	"presentasi", "present", "kerjakan", "selesaikan", "complete",
}

var (
	urgentKeywords      = []string{"urgent", "penting", "segera", "asap", "deadline"}
	lowPriorityKeywords = []string{"optional", "opsional", "bonus"}
)

var (
	taskTypeKeywords     = []string{"tugas", "task", "assignment", "kumpulkan", "submit", "deadline"}
	scheduleTypeKeywords = []string{"jadwal", "schedule", "kelas", "class", "kuliah", "lecture"}
)
