package services

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"projectmatch-service/internal/metrics"
	"projectmatch-service/internal/models"
	"projectmatch-service/internal/repository"
)

// MatchService records swipe decisions and owner-side transitions.
type MatchService struct {
	matches  repository.MatchRepository
	projects repository.ProjectRepository
	metrics  *metrics.Collector
}

// NewMatchService creates a new MatchService with the given repositories.
func NewMatchService(matches repository.MatchRepository, projects repository.ProjectRepository, collector *metrics.Collector) *MatchService {
	return &MatchService{matches: matches, projects: projects, metrics: collector}
}

// RecordSwipe looks up or creates the Match for the (user, project) pair and
// applies the action: like puts the pair into pending, pass into passed.
// A later swipe overwrites the previous status, so a pass followed by a like
// leaves the pair pending with no residual passed state.
func (s *MatchService) RecordSwipe(userID, projectID uuid.UUID, action models.SwipeAction) (*models.Match, error) {
	var status models.MatchStatus
	switch action {
	case models.SwipeLike:
		status = models.MatchPending
	case models.SwipePass:
		status = models.MatchPassed
	default:
		return nil, ErrInvalidAction
	}

	// The reference to the project is validated up front rather than
	// letting a dangling pair into the table.
	if _, err := s.projects.GetProject(projectID); err != nil {
		return nil, err
	}

	match := &models.Match{
		UserID:    userID,
		ProjectID: projectID,
		Status:    status,
	}
	if err := s.matches.UpsertMatch(match); err != nil {
		return nil, errors.Wrap(err, "could not record swipe")
	}

	// The upsert path does not report back the row it touched, so re-read
	// the pair to return the canonical record.
	stored, err := s.matches.FindByUserAndProject(userID, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "could not load recorded match")
	}

	if s.metrics != nil {
		s.metrics.RecordSwipe(string(action))
	}
	return stored, nil
}

// Decide applies the owner-driven transition on a match targeting one of the
// owner's projects: matched when the owner likes the seeker back, accepted
// when the owner lets the seeker in (unlocks chat downstream). These are the
// only paths to the matched and accepted statuses.
func (s *MatchService) Decide(ownerID, matchID uuid.UUID, status models.MatchStatus) (*models.Match, error) {
	if status != models.MatchMatched && status != models.MatchAccepted {
		return nil, ErrInvalidStatus
	}

	match, err := s.matches.GetMatch(matchID)
	if err != nil {
		return nil, err
	}

	project := match.Project
	if project == nil {
		project, err = s.projects.GetProject(match.ProjectID)
		if err != nil {
			return nil, err
		}
	}
	if project.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	match.Status = status
	if err := s.matches.UpdateMatch(match); err != nil {
		return nil, errors.Wrap(err, "could not update match status")
	}

	if s.metrics != nil {
		s.metrics.RecordDecision(string(status))
	}
	return match, nil
}

// ListMatches returns every match the user has recorded, newest first.
func (s *MatchService) ListMatches(userID uuid.UUID) ([]models.Match, error) {
	matches, err := s.matches.ListMatchesByUser(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return matches, nil
}
