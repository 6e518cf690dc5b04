package services

import (
	"math"
	"sort"
	"strings"

	"github.com/oguzk/disiplintakip/internal/app/models"
	"github.com/oguzk/disiplintakip/internal/app/models/dto"
	"github.com/oguzk/disiplintakip/internal/app/repositories"
)

// acquittalMarker appears in decisions that cleared the student; such
// decisions count as decided but not as penalties.
const acquittalMarker = "YER OLMADIĞINA"

// topIncidentTypes caps the incident type breakdown.
const topIncidentTypes = 5

// StatsService aggregates the dashboard figures from the incident and
// student stores.
type StatsService struct {
	incidents *repositories.IncidentRepository
	students  *repositories.StudentRepository
}

// NewStatsService creates a new statistics service instance.
func NewStatsService(incidents *repositories.IncidentRepository, students *repositories.StudentRepository) *StatsService {
	return &StatsService{incidents: incidents, students: students}
}

// Overview computes the full dashboard snapshot in one pass over the
// incident store.
func (s *StatsService) Overview() dto.StatisticsResponse {
	incidents := s.incidents.List()

	resp := dto.StatisticsResponse{
		TotalIncidents:    len(incidents),
		TopPenalties:      []dto.PenaltyCount{},
		GradeDistribution: []dto.GradeCount{},
	}

	totalDecisions := 0
	totalPenalties := 0
	titleCounts := map[string]int{}
	gradeCounts := map[string]int{}

	for _, inc := range incidents {
		if inc.Status == models.StatusDecided {
			resp.DecidedIncidents++
		}

		if title := strings.TrimSpace(inc.Title); title != "" {
			titleCounts[title]++
		}

		hasPenalty := false
		for _, rel := range inc.InvolvedStudents {
			if rel.Decision != "" {
				totalDecisions++
				if !strings.Contains(rel.Decision, acquittalMarker) {
					totalPenalties++
					hasPenalty = true
				}
			}
			if student, ok := s.students.Get(rel.StudentID); ok && student.Grade != "" {
				gradeCounts[student.Grade]++
			}
		}
		if hasPenalty {
			resp.PenaltyIncidentCount++
		}
	}

	resp.PendingIncidents = resp.TotalIncidents - resp.DecidedIncidents
	if totalDecisions > 0 {
		resp.PenaltyRate = int(math.Round(100 * float64(totalPenalties) / float64(totalDecisions)))
	}

	for title, count := range titleCounts {
		resp.TopPenalties = append(resp.TopPenalties, dto.PenaltyCount{Title: title, Count: count})
	}
	sort.Slice(resp.TopPenalties, func(i, j int) bool {
		if resp.TopPenalties[i].Count != resp.TopPenalties[j].Count {
			return resp.TopPenalties[i].Count > resp.TopPenalties[j].Count
		}
		return resp.TopPenalties[i].Title < resp.TopPenalties[j].Title
	})
	if len(resp.TopPenalties) > topIncidentTypes {
		resp.TopPenalties = resp.TopPenalties[:topIncidentTypes]
	}

	for grade, count := range gradeCounts {
		resp.GradeDistribution = append(resp.GradeDistribution, dto.GradeCount{Grade: grade, Count: count})
	}
	sort.Slice(resp.GradeDistribution, func(i, j int) bool {
		if resp.GradeDistribution[i].Count != resp.GradeDistribution[j].Count {
			return resp.GradeDistribution[i].Count > resp.GradeDistribution[j].Count
		}
		return resp.GradeDistribution[i].Grade < resp.GradeDistribution[j].Grade
	})

	return resp
}
