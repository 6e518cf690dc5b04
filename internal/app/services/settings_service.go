package services

import (
	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/app/repositories"
	"github.com/oguzk/disiplintakip/internal/pkg/apperrors"
	"github.com/oguzk/disiplintakip/internal/pkg/logger"
)

// SettingsService manages the institution profile, the board seat list
// and the stored AI API key.
type SettingsService struct {
	settings *repositories.SettingsRepository
}

// NewSettingsService creates a new settings service instance.
func NewSettingsService(settings *repositories.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Institution returns the school configuration.
func (s *SettingsService) Institution() models.Institution {
	return s.settings.Institution()
}

// SaveInstitution replaces the school configuration.
func (s *SettingsService) SaveInstitution(inst models.Institution) models.Institution {
	s.settings.SaveInstitution(inst)
	logger.Info().Str("name", inst.Name).Str("type", inst.Type).Msg("Institution settings saved")
	return inst
}

// BoardMembers returns the board seat list.
func (s *SettingsService) BoardMembers() []models.BoardMember {
	return s.settings.BoardMembers()
}

// SaveBoardMembers replaces the full board seat list.
func (s *SettingsService) SaveBoardMembers(members []models.BoardMember) []models.BoardMember {
	s.settings.SaveBoardMembers(members)
	return s.settings.BoardMembers()
}

// DeleteBoardMember removes one seat. The board may never shrink below
// the regulation minimum through deletion; a shorter list loaded from
// disk is tolerated as is.
func (s *SettingsService) DeleteBoardMember(id string) ([]models.BoardMember, error) {
	members := s.settings.BoardMembers()
	if len(members) <= models.MinBoardMembers {
		return nil, apperrors.ErrBoardTooSmall
	}

	kept := make([]models.BoardMember, 0, len(members)-1)
	found := false
	for _, m := range members {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return nil, apperrors.ErrBoardMemberNotFound
	}

	s.settings.SaveBoardMembers(kept)
	return kept, nil
}

// APIKey returns the stored AI API key.
func (s *SettingsService) APIKey() string {
	return s.settings.APIKey()
}

// SaveAPIKey replaces the stored AI API key.
func (s *SettingsService) SaveAPIKey(key string) {
	s.settings.SaveAPIKey(key)
	logger.Info().Msg("AI API key updated")
}
