package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/app/models/dto"
	"github.com/oguzk/disiplintakip/internal/pkg/apperrors"
	"github.com/oguzk/disiplintakip/internal/pkg/gemini"
)

type stubAIClient struct {
	online bool
	text   string
	err    error

	prompts []string
}

func (c *stubAIClient) Online() bool { return c.online }

func (c *stubAIClient) Generate(_ context.Context, prompt string, _ bool) (string, error) {
	c.prompts = append(c.prompts, prompt)
	if c.err != nil {
		return "", c.err
	}
	return c.text, nil
}

func stubClient(svc *Services, stub *stubAIClient) {
	svc.AI.newClient = func(string) aiClient { return stub }
}

func analysisTarget(t *testing.T, svc *Services) (incidentID, studentID string) {
	t.Helper()
	student := createStudent(t, svc, "101", "Ali Veli")
	incident := createIncident(t, svc, "Kavga")
	_, err := svc.Incident.AddInvolvement(incident.ID, dto.AddInvolvementRequest{
		StudentID: student.ID, Role: models.RoleSuspect,
	})
	require.NoError(t, err)
	return incident.ID, student.ID
}

func TestAnalyzeCachesResult(t *testing.T) {
	svc := newTestServices(t)
	stub := &stubAIClient{online: true, text: "Analiz raporu"}
	stubClient(svc, stub)

	incidentID, studentID := analysisTarget(t, svc)
	resp, err := svc.AI.Analyze(context.Background(), dto.AnalyzeRequest{
		IncidentID: incidentID, StudentID: studentID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Analiz raporu", resp.Text)
	assert.False(t, resp.Fallback)

	incident, err := svc.Incident.Get(incidentID)
	require.NoError(t, err)
	assert.Equal(t, "Analiz raporu", incident.Involvement(studentID).AIAnalysis)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "Ali Veli")
	assert.Contains(t, stub.prompts[0], "Olay Tanımı")
}

func TestAnalyzeOffline(t *testing.T) {
	svc := newTestServices(t)
	stubClient(svc, &stubAIClient{online: false})

	incidentID, studentID := analysisTarget(t, svc)
	resp, err := svc.AI.Analyze(context.Background(), dto.AnalyzeRequest{
		IncidentID: incidentID, StudentID: studentID,
	})
	require.NoError(t, err)
	assert.Equal(t, gemini.OfflineAnalysis, resp.Text)
	assert.True(t, resp.Fallback)

	// Fallback texts are never cached on the involvement.
	incident, err := svc.Incident.Get(incidentID)
	require.NoError(t, err)
	assert.Empty(t, incident.Involvement(studentID).AIAnalysis)
}

func TestAnalyzeFailedCall(t *testing.T) {
	svc := newTestServices(t)
	stubClient(svc, &stubAIClient{online: true, err: errors.New("quota exceeded")})

	incidentID, studentID := analysisTarget(t, svc)
	resp, err := svc.AI.Analyze(context.Background(), dto.AnalyzeRequest{
		IncidentID: incidentID, StudentID: studentID,
	})
	require.NoError(t, err)
	assert.Equal(t, gemini.FailedAnalysis, resp.Text)
	assert.True(t, resp.Fallback)
}

func TestAnalyzeMissingKeySurfaces(t *testing.T) {
	svc := newTestServices(t)
	stubClient(svc, &stubAIClient{online: true, err: gemini.ErrAPIKeyMissing})

	incidentID, studentID := analysisTarget(t, svc)
	_, err := svc.AI.Analyze(context.Background(), dto.AnalyzeRequest{
		IncidentID: incidentID, StudentID: studentID,
	})
	assert.ErrorIs(t, err, gemini.ErrAPIKeyMissing)
}

func TestAnalyzeUnknownInvolvement(t *testing.T) {
	svc := newTestServices(t)
	stubClient(svc, &stubAIClient{online: true, text: "x"})

	incidentID, _ := analysisTarget(t, svc)
	_, err := svc.AI.Analyze(context.Background(), dto.AnalyzeRequest{
		IncidentID: incidentID, StudentID: "missing",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvolvementNotFound)
}

func TestGenerateReasonIncludesSchoolType(t *testing.T) {
	svc := newTestServices(t)
	stub := &stubAIClient{online: true, text: "Gerekçe metni"}
	stubClient(svc, stub)

	incidentID, studentID := analysisTarget(t, svc)
	resp, err := svc.AI.GenerateReason(context.Background(), dto.GenerateReasonRequest{
		IncidentID: incidentID, StudentID: studentID, Penalty: "KINAMA",
	})
	require.NoError(t, err)
	assert.Equal(t, "Gerekçe metni", resp.Text)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "KINAMA")
	assert.Contains(t, stub.prompts[0], "Lise")
}

func TestGenerateReasonOffline(t *testing.T) {
	svc := newTestServices(t)
	stubClient(svc, &stubAIClient{online: false})

	incidentID, studentID := analysisTarget(t, svc)
	resp, err := svc.AI.GenerateReason(context.Background(), dto.GenerateReasonRequest{
		IncidentID: incidentID, StudentID: studentID, Penalty: "KINAMA",
	})
	require.NoError(t, err)
	assert.Equal(t, gemini.OfflineReason, resp.Text)
	assert.True(t, resp.Fallback)
}

func TestSearchRegulationsOfflineAndFailure(t *testing.T) {
	svc := newTestServices(t)

	stubClient(svc, &stubAIClient{online: false})
	resp, err := svc.AI.SearchRegulations(context.Background(), dto.SearchRegulationsRequest{Query: "devamsızlık"})
	require.NoError(t, err)
	assert.Equal(t, gemini.OfflineSearch, resp.Text)

	stubClient(svc, &stubAIClient{online: true, err: errors.New("boom")})
	resp, err = svc.AI.SearchRegulations(context.Background(), dto.SearchRegulationsRequest{Query: "devamsızlık"})
	require.NoError(t, err)
	assert.Equal(t, gemini.FailedSearch, resp.Text)
	assert.True(t, resp.Fallback)
}

func TestFetchBoardInfoUsesSchoolType(t *testing.T) {
	svc := newTestServices(t)

	inst := svc.Settings.Institution()
	inst.Type = models.InstitutionTypeMiddle
	svc.Settings.SaveInstitution(inst)

	stub := &stubAIClient{online: true, text: "Kurul özeti"}
	stubClient(svc, stub)

	resp, err := svc.AI.FetchBoardInfo(context.Background(), dto.BoardInfoRequest{URL: "https://www.mevzuat.gov.tr/x"})
	require.NoError(t, err)
	assert.Equal(t, "Kurul özeti", resp.Text)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "Ortaokul")
	assert.Contains(t, stub.prompts[0], "https://www.mevzuat.gov.tr/x")
}

func TestStoredKeyWinsOverEnvKey(t *testing.T) {
	svc := newTestServices(t)
	svc.AI.envKey = "env-key"

	assert.Equal(t, "env-key", svc.AI.key())
	svc.Settings.SaveAPIKey("stored-key")
	assert.Equal(t, "stored-key", svc.AI.key())
}
