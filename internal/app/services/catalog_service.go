package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/app/models/dto"
	"github.com/oguzk/disiplintakip/internal/app/repositories"
	"github.com/oguzk/disiplintakip/internal/pkg/apperrors"
	"github.com/oguzk/disiplintakip/internal/pkg/regulation"
)

// CatalogService exposes the active penalty dataset and applies its
// articles to involvements as decision proposals.
type CatalogService struct {
	incidents *IncidentService
	settings  *repositories.SettingsRepository

	now func() time.Time
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(incidents *IncidentService, settings *repositories.SettingsRepository) *CatalogService {
	return &CatalogService{incidents: incidents, settings: settings, now: time.Now}
}

// Dataset returns the penalty catalog matching the configured
// institution type.
func (s *CatalogService) Dataset() regulation.Dataset {
	return regulation.Select(s.settings.Institution().IsMiddleSchool())
}

// Apply records a catalog article as a decision proposal on one
// involvement. The proposal carries no decision number; finalizing is a
// separate involvement update.
func (s *CatalogService) Apply(req dto.ApplyCatalogRequest) (models.Incident, error) {
	dataset := s.Dataset()
	category, ok := dataset.Category(req.CategoryKey)
	if !ok {
		return models.Incident{}, apperrors.ErrCategoryNotFound
	}
	article, ok := category.Article(req.ArticleCode)
	if !ok {
		return models.Incident{}, apperrors.ErrArticleNotFound
	}

	incident, err := s.incidents.Get(req.IncidentID)
	if err != nil {
		return models.Incident{}, err
	}
	rel := incident.Involvement(req.StudentID)
	if rel == nil {
		return models.Incident{}, apperrors.ErrInvolvementNotFound
	}
	if rel.Role != models.RoleSuspect {
		return models.Incident{}, apperrors.NewValidationError("ceza teklifi yalnızca zanlı öğrenciye uygulanabilir")
	}

	reason := fmt.Sprintf("Madde %s/%s-%s) %s",
		dataset.ArticleRoot, dataset.ArticleSub, article.Code, article.Text)
	today := s.now().Format("2006-01-02")

	return s.incidents.ApplyInvolvementPatch(req.IncidentID, req.StudentID,
		func(rel *models.InvolvedStudent) {
			rel.Decision = strings.ToUpper(category.Title)
			rel.DecisionReason = reason
			rel.DecisionDate = today
		})
}
