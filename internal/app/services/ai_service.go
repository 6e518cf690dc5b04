package services

import (
	"context"
	"errors"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/app/models/dto"
	"github.com/oguzk/disiplintakip/internal/app/repositories"
	"github.com/oguzk/disiplintakip/internal/pkg/apperrors"
	"github.com/oguzk/disiplintakip/internal/pkg/gemini"
	"github.com/oguzk/disiplintakip/internal/pkg/logger"
)

// aiClient is the slice of the Gemini client the service uses, kept as
// an interface so tests can stub connectivity and generation.
type aiClient interface {
	Online() bool
	Generate(ctx context.Context, prompt string, grounding bool) (string, error)
}

// AIService drives the Gemini-backed features: incident analysis,
// decision reason drafting, regulation search and board info lookup.
// Every call degrades to a fixed Turkish fallback text when the machine
// is offline, so the application stays usable without connectivity.
type AIService struct {
	incidents *IncidentService
	students  *StudentService
	settings  *repositories.SettingsRepository

	// envKey backs the stored key, mirroring the key precedence of the
	// settings screen: a key saved there always wins.
	envKey string

	newClient func(key string) aiClient
	validate  func(ctx context.Context, key string) bool
}

// NewAIService creates a new AI service instance. envKey is the
// process-level fallback API key, usually from configuration.
func NewAIService(incidents *IncidentService, students *StudentService, settings *repositories.SettingsRepository, envKey string) *AIService {
	return &AIService{
		incidents: incidents,
		students:  students,
		settings:  settings,
		envKey:    envKey,
		newClient: func(key string) aiClient { return gemini.New(key) },
		validate:  gemini.ValidateKey,
	}
}

// key resolves the active API key: the stored key wins over the
// environment fallback.
func (s *AIService) key() string {
	if k := s.settings.APIKey(); k != "" {
		return k
	}
	return s.envKey
}

// involvementFacts loads the incident, the involvement and the resolved
// student for one analysis target.
func (s *AIService) involvementFacts(incidentID, studentID string) (models.Incident, *models.InvolvedStudent, models.Student, error) {
	incident, err := s.incidents.Get(incidentID)
	if err != nil {
		return models.Incident{}, nil, models.Student{}, err
	}
	rel := incident.Involvement(studentID)
	if rel == nil {
		return models.Incident{}, nil, models.Student{}, apperrors.ErrInvolvementNotFound
	}
	return incident, rel, s.students.Resolve(studentID), nil
}

// Analyze produces a severity assessment and procedural roadmap for one
// suspect and caches it on the involvement. Offline and failed calls
// return fixed texts flagged as fallbacks and are not cached.
func (s *AIService) Analyze(ctx context.Context, req dto.AnalyzeRequest) (dto.AITextResponse, error) {
	incident, _, student, err := s.involvementFacts(req.IncidentID, req.StudentID)
	if err != nil {
		return dto.AITextResponse{}, err
	}

	client := s.newClient(s.key())
	if !client.Online() {
		return dto.AITextResponse{Text: gemini.OfflineAnalysis, Fallback: true}, nil
	}

	prompt := gemini.AnalysisPrompt(gemini.IncidentFacts{
		StudentName:   student.Name,
		StudentGrade:  student.Grade,
		StudentNumber: student.Number,
		Date:          incident.Date,
		Location:      incident.Location,
		Description:   incident.Description,
	})

	text, err := client.Generate(ctx, prompt, false)
	if errors.Is(err, gemini.ErrAPIKeyMissing) {
		return dto.AITextResponse{}, err
	}
	if err != nil {
		logger.Warn().Err(err).Str("incidentId", req.IncidentID).Msg("AI analysis failed")
		return dto.AITextResponse{Text: gemini.FailedAnalysis, Fallback: true}, nil
	}

	if _, err := s.incidents.ApplyInvolvementPatch(req.IncidentID, req.StudentID,
		func(rel *models.InvolvedStudent) { rel.AIAnalysis = text }); err != nil {
		return dto.AITextResponse{}, err
	}
	return dto.AITextResponse{Text: text}, nil
}

// GenerateReason drafts a formal decision justification for a penalty.
func (s *AIService) GenerateReason(ctx context.Context, req dto.GenerateReasonRequest) (dto.AITextResponse, error) {
	incident, _, student, err := s.involvementFacts(req.IncidentID, req.StudentID)
	if err != nil {
		return dto.AITextResponse{}, err
	}

	client := s.newClient(s.key())
	if !client.Online() {
		return dto.AITextResponse{Text: gemini.OfflineReason, Fallback: true}, nil
	}

	prompt := gemini.ReasonPrompt(student.Name, incident.Description, req.Penalty, s.schoolType())
	text, err := client.Generate(ctx, prompt, false)
	if err != nil {
		return dto.AITextResponse{}, err
	}
	return dto.AITextResponse{Text: text}, nil
}

// SearchRegulations answers a free-text regulation question with Google
// Search grounding on the official MEB texts.
func (s *AIService) SearchRegulations(ctx context.Context, req dto.SearchRegulationsRequest) (dto.AITextResponse, error) {
	client := s.newClient(s.key())
	if !client.Online() {
		return dto.AITextResponse{Text: gemini.OfflineSearch, Fallback: true}, nil
	}

	text, err := client.Generate(ctx, gemini.SearchPrompt(req.Query), true)
	if errors.Is(err, gemini.ErrAPIKeyMissing) {
		return dto.AITextResponse{}, err
	}
	if err != nil {
		logger.Warn().Err(err).Msg("Regulation search failed")
		return dto.AITextResponse{Text: gemini.FailedSearch, Fallback: true}, nil
	}
	return dto.AITextResponse{Text: text}, nil
}

// FetchBoardInfo summarizes the board composition mandated for the
// configured school type, grounded on the given regulation URL.
func (s *AIService) FetchBoardInfo(ctx context.Context, req dto.BoardInfoRequest) (dto.AITextResponse, error) {
	client := s.newClient(s.key())
	if !client.Online() {
		return dto.AITextResponse{Text: gemini.OfflineBoardInfo, Fallback: true}, nil
	}

	text, err := client.Generate(ctx, gemini.BoardInfoPrompt(req.URL, s.schoolType()), true)
	if errors.Is(err, gemini.ErrAPIKeyMissing) {
		return dto.AITextResponse{}, err
	}
	if err != nil {
		logger.Warn().Err(err).Msg("Board info lookup failed")
		return dto.AITextResponse{Text: gemini.FailedBoardInfo, Fallback: true}, nil
	}
	return dto.AITextResponse{Text: text}, nil
}

// ValidateKey checks a candidate API key against the live API.
func (s *AIService) ValidateKey(ctx context.Context, key string) bool {
	return s.validate(ctx, key)
}

// schoolType names the institution profile for the prompts.
func (s *AIService) schoolType() string {
	if s.settings.Institution().IsMiddleSchool() {
		return models.InstitutionTypeMiddle
	}
	return "Lise"
}
