package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/pkg/apperrors"
)

func testInstitution() models.Institution {
	return models.Institution{
		Name:        "Atatürk Anadolu Lisesi",
		Type:        "Lise",
		Province:    "Ankara",
		District:    "Çankaya",
		ManagerName: "Hasan Kaya",
		EBYSCode:    "E-12345",
	}
}

func testStudent() *models.Student {
	return &models.Student{
		ID: "s1", Number: "123", Name: "Ayşe Yılmaz", Grade: "9-A",
		TCNo: "12345678901", ParentName: "Mehmet Yılmaz",
		BirthPlaceDate: "Ankara / 12.03.2010",
		Address:        "Bahçelievler Mah. No:5",
	}
}

func testIncident() *models.Incident {
	return &models.Incident{
		ID: "i1", Code: "OLAY2025-001", Title: "Kopya çekmek",
		Date: "2025-03-10", Time: "10:30", Location: "Sınıf",
		Description: "Yazılı sınavda kopya çekti.",
	}
}

func baseRequest(t Type) Request {
	return Request{
		Type:        t,
		Student:     testStudent(),
		Incident:    testIncident(),
		Institution: testInstitution(),
		Board: []models.BoardMember{
			{Role: "BAŞKAN", MainName: "Veli Demir"},
			{Role: "1. ÜYE", MainName: "Zeynep Ak"},
		},
		Meeting:  models.Meeting{Date: "2025-03-20", Time: "12:30", Location: "Müdür Yardımcısı Odası"},
		Decision: Decision{No: "2025/1", Date: "2025-03-21", Penalty: "KINAMA", Reason: "Madde 164/2-ı) Kopya çekmek veya çekilmesine yardımcı olmak", Score: "10"},
		Now:      time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestRenderEveryTemplate(t *testing.T) {
	e := NewEngine()
	for _, info := range Catalog {
		req := baseRequest(info.Type)
		req.Involvement = &models.InvolvedStudent{StudentID: "s1", Role: models.RoleSuspect, Decision: "KINAMA"}
		res, err := e.Render(req)
		require.NoError(t, err, string(info.Type))
		assert.NotEmpty(t, res.Body, string(info.Type))
		assert.Equal(t, info.Title, res.Title)
	}
}

func TestRenderUnknownType(t *testing.T) {
	e := NewEngine()
	_, err := e.Render(Request{Type: "bogus"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownTemplate)
}

func TestRenderRequiresSelection(t *testing.T) {
	e := NewEngine()

	req := baseRequest(TypeDefenseRequest)
	req.Student = nil
	_, err := e.Render(req)
	assert.ErrorIs(t, err, apperrors.ErrContextMissing)

	req = baseRequest(TypeDefenseRequest)
	req.Incident = nil
	_, err = e.Render(req)
	assert.ErrorIs(t, err, apperrors.ErrContextMissing)

	// The board meeting call needs neither.
	req = baseRequest(TypeEK1Meeting)
	req.Student = nil
	req.Incident = nil
	_, err = e.Render(req)
	assert.NoError(t, err)

	// The observation request needs only the student.
	req = baseRequest(TypeRemovalObservation)
	req.Incident = nil
	_, err = e.Render(req)
	assert.NoError(t, err)
}

func TestRenderBlankKeepsPlaceholders(t *testing.T) {
	e := NewEngine()
	req := baseRequest(TypeDefenseRequest)
	req.Blank = true
	req.Student = nil
	req.Incident = nil

	res, err := e.Render(req)
	require.NoError(t, err)
	assert.Contains(t, res.Body, "..............................................")
	assert.NotContains(t, res.Body, "Ayşe")
	// The school name stays real even on blank forms.
	assert.Contains(t, res.Body, "Atatürk Anadolu Lisesi")
}

func TestRenderBoundValues(t *testing.T) {
	e := NewEngine()
	res, err := e.Render(baseRequest(TypeStudentSummons))
	require.NoError(t, err)

	assert.Contains(t, res.Body, "Ayşe Yılmaz")
	assert.Contains(t, res.Body, "10.03.2025") // incident date, display form
	assert.Contains(t, res.Body, "20.03.2025") // meeting date
	assert.Contains(t, res.Body, "Hasan Kaya")
}

func TestSummonsRoleWording(t *testing.T) {
	e := NewEngine()

	req := baseRequest(TypeStudentSummons)
	req.Involvement = &models.InvolvedStudent{StudentID: "s1", Role: models.RoleSuspect}
	res, err := e.Render(req)
	require.NoError(t, err)
	assert.Contains(t, res.Body, "savunmanızı vermek üzere")

	req.Involvement = &models.InvolvedStudent{StudentID: "s1", Role: models.RoleWitness}
	res, err = e.Render(req)
	require.NoError(t, err)
	assert.Contains(t, res.Body, "görgü tanığı olarak")
	assert.Contains(t, res.Body, "ifadenize başvurulamayacağını")
}

func TestHeaderSelection(t *testing.T) {
	e := NewEngine()

	// District set: variant forms carry the Kaymakamlık line.
	res, err := e.Render(baseRequest(TypeDefenseRequest))
	require.NoError(t, err)
	assert.Contains(t, res.Body, "ÇANKAYA KAYMAKAMLIĞI")

	// No district: fall back to the Valilik line.
	req := baseRequest(TypeDefenseRequest)
	req.Institution.District = ""
	res, err = e.Render(req)
	require.NoError(t, err)
	assert.Contains(t, res.Body, "ANKARA VALİLİĞİ")

	// EK-10 always shows the province chain.
	res, err = e.Render(baseRequest(TypeEK10Decision))
	require.NoError(t, err)
	assert.Contains(t, res.Body, "ANKARA VALİLİĞİ")
	assert.NotContains(t, res.Body, "KAYMAKAMLIĞI")

	// Inventory forms carry no letterhead.
	res, err = e.Render(baseRequest(TypeDiziPusulasi))
	require.NoError(t, err)
	assert.NotContains(t, res.Body, "VALİLİĞİ")
}

func TestRemainingScore(t *testing.T) {
	assert.Equal(t, "90", remainingScore("10"))
	assert.Equal(t, "100", remainingScore("0"))
	assert.Equal(t, "NaN", remainingScore("abc"))
	assert.Equal(t, "NaN", remainingScore(""))
}

func TestSanctionRemainingInBody(t *testing.T) {
	e := NewEngine()

	res, err := e.Render(baseRequest(TypeSanctionStudent))
	require.NoError(t, err)
	assert.Contains(t, res.Body, ">90<")

	req := baseRequest(TypeSanctionStudent)
	req.Decision.Score = "on puan"
	res, err = e.Render(req)
	require.NoError(t, err)
	assert.Contains(t, res.Body, ">NaN<")

	// Blank forms keep the dotted score lines.
	req = baseRequest(TypeSanctionStudent)
	req.Blank = true
	res, err = e.Render(req)
	require.NoError(t, err)
	assert.NotContains(t, res.Body, "NaN")
}

func TestEK10ReasonArticle(t *testing.T) {
	e := NewEngine()
	res, err := e.Render(baseRequest(TypeEK10Decision))
	require.NoError(t, err)
	assert.Contains(t, res.Body, ": Madde 164/2-ı)")
	// Board columns split the full width.
	assert.Contains(t, res.Body, "width:50%")
}

func TestRemovalMeetingQuotesDecision(t *testing.T) {
	e := NewEngine()
	req := baseRequest(TypeRemovalMeeting)
	req.Involvement = &models.InvolvedStudent{StudentID: "s1", Role: models.RoleSuspect, Decision: "KINAMA"}
	res, err := e.Render(req)
	require.NoError(t, err)
	assert.Contains(t, res.Body, `"KINAMA"`)
	assert.Contains(t, res.Body, "Ortaöğretim Kurumları Yönetmeliğinin 171. Maddesi")

	req.Institution.Type = models.InstitutionTypeMiddle
	res, err = e.Render(req)
	require.NoError(t, err)
	assert.Contains(t, res.Body, "İlköğretim Kurumları Yönetmeliğinin 58. Maddesi")
}
