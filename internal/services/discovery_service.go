package services

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"projectmatch-service/internal/metrics"
	"projectmatch-service/internal/models"
	"projectmatch-service/internal/repository"
	"projectmatch-service/internal/utils"
)

// DiscoveryService narrows and orders candidate projects for the swipe deck.
type DiscoveryService struct {
	repo    repository.ProjectRepository
	metrics *metrics.Collector
}

// NewDiscoveryService creates a new DiscoveryService with the given project repository.
func NewDiscoveryService(repo repository.ProjectRepository, collector *metrics.Collector) *DiscoveryService {
	return &DiscoveryService{repo: repo, metrics: collector}
}

// FilterProjects applies the criteria predicates in sequence and returns the
// surviving projects ordered by computed distance. Projects without a
// computed distance sort after all projects that have one, keeping their
// original relative order.
func FilterProjects(projects []models.Project, criteria models.FilterCriteria) []models.SuggestedProject {
	results := make([]models.SuggestedProject, 0, len(projects))
	for _, p := range projects {
		results = append(results, models.SuggestedProject{Project: p})
	}

	if criteria.Sector != "" {
		results = keep(results, func(p models.SuggestedProject) bool {
			return p.Sector == criteria.Sector
		})
	}

	// Projects that carry no duration are excluded whenever a duration
	// criterion is set.
	if criteria.Duration != "" {
		results = keep(results, func(p models.SuggestedProject) bool {
			return p.Duration != nil && *p.Duration == criteria.Duration
		})
	}

	if criteria.UserCoordinate != nil && criteria.MaxDistanceKm != nil {
		filtered := results[:0]
		for _, p := range results {
			if p.Location == nil {
				continue
			}
			d := utils.HaversineDistance(*criteria.UserCoordinate, p.Location.Coordinate)
			if d > *criteria.MaxDistanceKm {
				continue
			}
			p.DistanceKm = &d
			filtered = append(filtered, p)
		}
		results = filtered
	}

	if criteria.City != "" {
		city := strings.ToLower(criteria.City)
		results = keep(results, func(p models.SuggestedProject) bool {
			return p.Location != nil && strings.Contains(strings.ToLower(p.Location.City), city)
		})
	}

	if criteria.PostalCode != "" {
		results = keep(results, func(p models.SuggestedProject) bool {
			return p.Location != nil && strings.Contains(p.Location.PostalCode, criteria.PostalCode)
		})
	}

	if criteria.Department != "" {
		results = keep(results, func(p models.SuggestedProject) bool {
			return p.Location != nil && strings.Contains(p.Location.Department, criteria.Department)
		})
	}

	// Two-tier order: rows with a distance first, ascending; rows without
	// one trail in their original order.
	sort.SliceStable(results, func(i, j int) bool {
		di, dj := results[i].DistanceKm, results[j].DistanceKm
		switch {
		case di != nil && dj != nil:
			return *di < *dj
		case di != nil:
			return true
		default:
			return false
		}
	})

	return results
}

func keep(projects []models.SuggestedProject, pred func(models.SuggestedProject) bool) []models.SuggestedProject {
	filtered := projects[:0]
	for _, p := range projects {
		if pred(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Suggestions loads candidate projects and runs them through FilterProjects.
// The caller's own projects never show up in their deck. When a coordinate
// and radius are given the repository narrows candidates with a bounding box
// before the exact per-project distance check.
func (s *DiscoveryService) Suggestions(callerID uuid.UUID, criteria models.FilterCriteria) ([]models.SuggestedProject, error) {
	var (
		projects []models.Project
		err      error
	)
	if criteria.UserCoordinate != nil && criteria.MaxDistanceKm != nil {
		projects, err = s.repo.ListProjectsWithinRadius(*criteria.UserCoordinate, *criteria.MaxDistanceKm)
	} else {
		projects, err = s.repo.ListProjects()
	}
	if err != nil {
		return nil, err
	}

	candidates := projects[:0]
	for _, p := range projects {
		if p.OwnerID != callerID {
			candidates = append(candidates, p)
		}
	}

	results := FilterProjects(candidates, criteria)
	if s.metrics != nil {
		s.metrics.RecordSuggestionQuery(len(results))
	}
	return results, nil
}
