package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalysisPrompt(t *testing.T) {
	p := AnalysisPrompt(IncidentFacts{
		StudentName:   "Ayşe Yılmaz",
		StudentGrade:  "9-A",
		StudentNumber: "123",
		Date:          "2025-03-10",
		Location:      "Bahçe",
		Description:   "Kavga",
	})
	assert.Contains(t, p, "Ayşe Yılmaz (9-A - 123)")
	assert.Contains(t, p, "Yer: Bahçe")
	assert.Contains(t, p, "Analiz ve Yol Haritası")
}

func TestReasonPrompt(t *testing.T) {
	p := ReasonPrompt("Ali Demir", "Kopya", "KINAMA", "Lise")
	assert.Contains(t, p, "Verilen Ceza: KINAMA")
	assert.Contains(t, p, "Okul Türü: Lise")
}

func TestSearchPromptCitesBothRegulations(t *testing.T) {
	p := SearchPrompt("devamsızlık")
	assert.Contains(t, p, `"devamsızlık"`)
	assert.Contains(t, p, "MevzuatNo=19942")
	assert.Contains(t, p, "MevzuatNo=18812")
}

func TestBoardInfoPrompt(t *testing.T) {
	p := BoardInfoPrompt("https://www.mevzuat.gov.tr/x", "Ortaokul")
	assert.Contains(t, p, `"Ortaokul"`)
	assert.Contains(t, p, "Mevzuat Adresi: https://www.mevzuat.gov.tr/x")
}

func TestGenerateRequiresKey(t *testing.T) {
	c := New("")
	_, err := c.Generate(context.Background(), "test", false)
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
}
