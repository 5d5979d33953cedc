package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"univio/internal/extraction"
)

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "collapse and trim", in: "  Kumpulkan \t\n tugas  ", want: "Kumpulkan tugas"},
		{name: "strip tags", in: "  <p>Halo</p>\n\n  dunia  ", want: "Halo dunia"},
		{name: "adjacent tags", in: "a<br>b", want: "ab"},
		{name: "curly quotes", in: "“Tugas” ‘A’", want: `"Tugas" 'A'`},
		{name: "non-breaking space", in: "a  b", want: "a b"},
		{name: "empty", in: "", want: ""},
		{name: "unclosed tag kept", in: "a < b", want: "a < b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Preprocess(tt.in))
		})
	}
}

func TestPreprocess_Idempotent(t *testing.T) {
	inputs := []string{
		"  <div>\n Kumpulkan <b>laporan</b>   </div>  ",
		"a <span> b </span> c",
		"<<a>>  “x” y",
		"plain text",
		"\n\n",
	}

	for _, in := range inputs {
		once := Preprocess(in)
		assert.Equal(t, once, Preprocess(once), "input %q", in)
	}
}

func TestExtractEntities(t *testing.T) {
	cleaned := Preprocess("Senin, 15 Desember 2025 jam 2:30 PM di Gedung A lalu 16-12-2025, kumpulkan tugas Basis Data dan Algoritma")
	got := ExtractEntities(cleaned)

	assert.Equal(t, extraction.Entities{
		Dates:     []string{"15 Desember 2025", "16-12-2025", "Senin, 15 Desember"},
		Times:     []string{"2:30 PM"},
		Courses:   []string{"basis data", "algoritma"},
		Locations: []string{"Gedung A lalu 16"},
		Actions:   []string{"kumpulkan"},
	}, got)
}

func TestExtractEntities_Empty(t *testing.T) {
	assert.Equal(t, extraction.Entities{}, ExtractEntities(""))
}

func TestDetectTextType(t *testing.T) {
	tests := []struct {
		in   string
		want extraction.TextType
	}{
		{in: "Tugas: kumpulkan laporan", want: extraction.TextTypeTask},
		{in: "Deadline submission hari Jumat", want: extraction.TextTypeTask},
		{in: "Jadwal kelas Basis Data", want: extraction.TextTypeSchedule},
		{in: "Tugas kuliah", want: extraction.TextTypeUnknown},
		{in: "halo", want: extraction.TextTypeUnknown},
		{in: "", want: extraction.TextTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectTextType(tt.in))
		})
	}
}
