package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"projectmatch-service/internal/models"
)

func errRecordNotFound() error { return gorm.ErrRecordNotFound }

// fakeMatchRepo is an in-memory repository.MatchRepository with the same
// one-row-per-pair semantics as the real upsert.
type fakeMatchRepo struct {
	matches map[uuid.UUID]*models.Match
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[uuid.UUID]*models.Match)}
}

func (f *fakeMatchRepo) GetMatch(id uuid.UUID) (*models.Match, error) {
	m, ok := f.matches[id]
	if !ok {
		return nil, errRecordNotFound()
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMatchRepo) FindByUserAndProject(userID, projectID uuid.UUID) (*models.Match, error) {
	for _, m := range f.matches {
		if m.UserID == userID && m.ProjectID == projectID {
			copied := *m
			return &copied, nil
		}
	}
	return nil, errRecordNotFound()
}

func (f *fakeMatchRepo) UpsertMatch(match *models.Match) error {
	for _, m := range f.matches {
		if m.UserID == match.UserID && m.ProjectID == match.ProjectID {
			m.Status = match.Status
			m.UpdatedAt = time.Now()
			return nil
		}
	}
	match.ID = uuid.New()
	match.CreatedAt = time.Now()
	match.UpdatedAt = match.CreatedAt
	copied := *match
	f.matches[match.ID] = &copied
	return nil
}

func (f *fakeMatchRepo) UpdateMatch(match *models.Match) error {
	if _, ok := f.matches[match.ID]; !ok {
		return errRecordNotFound()
	}
	copied := *match
	copied.UpdatedAt = time.Now()
	f.matches[match.ID] = &copied
	return nil
}

func (f *fakeMatchRepo) ListMatchesByUser(userID uuid.UUID) ([]models.Match, error) {
	var out []models.Match
	for _, m := range f.matches {
		if m.UserID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func newMatchFixture(t *testing.T) (*MatchService, *fakeMatchRepo, models.Project) {
	t.Helper()
	project := projectIn("p", "tech", nil)
	matchRepo := newFakeMatchRepo()
	svc := NewMatchService(matchRepo, newFakeProjectRepo(project), nil)
	return svc, matchRepo, project
}

func TestRecordSwipe_LikeCreatesPending(t *testing.T) {
	svc, _, project := newMatchFixture(t)
	userID := uuid.New()

	match, err := svc.RecordSwipe(userID, project.ID, models.SwipeLike)

	require.NoError(t, err)
	assert.Equal(t, models.MatchPending, match.Status)
	assert.Equal(t, userID, match.UserID)
	assert.Equal(t, project.ID, match.ProjectID)
}

func TestRecordSwipe_LikeThenPassLeavesOnePassedRecord(t *testing.T) {
	svc, repo, project := newMatchFixture(t)
	userID := uuid.New()

	_, err := svc.RecordSwipe(userID, project.ID, models.SwipeLike)
	require.NoError(t, err)
	match, err := svc.RecordSwipe(userID, project.ID, models.SwipePass)
	require.NoError(t, err)

	assert.Equal(t, models.MatchPassed, match.Status)
	assert.Len(t, repo.matches, 1)
}

func TestRecordSwipe_PassThenLikeReturnsToPending(t *testing.T) {
	svc, repo, project := newMatchFixture(t)
	userID := uuid.New()

	_, err := svc.RecordSwipe(userID, project.ID, models.SwipePass)
	require.NoError(t, err)
	match, err := svc.RecordSwipe(userID, project.ID, models.SwipeLike)
	require.NoError(t, err)

	assert.Equal(t, models.MatchPending, match.Status)
	assert.Len(t, repo.matches, 1)
}

func TestRecordSwipe_RejectsUnknownAction(t *testing.T) {
	svc, _, project := newMatchFixture(t)

	_, err := svc.RecordSwipe(uuid.New(), project.ID, "superlike")

	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestRecordSwipe_RejectsUnknownProject(t *testing.T) {
	svc, _, _ := newMatchFixture(t)

	_, err := svc.RecordSwipe(uuid.New(), uuid.New(), models.SwipeLike)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDecide_OwnerAcceptsMatch(t *testing.T) {
	project := projectIn("p", "tech", nil)
	matchRepo := newFakeMatchRepo()
	svc := NewMatchService(matchRepo, newFakeProjectRepo(project), nil)

	seeker := uuid.New()
	created, err := svc.RecordSwipe(seeker, project.ID, models.SwipeLike)
	require.NoError(t, err)

	updated, err := svc.Decide(project.OwnerID, created.ID, models.MatchAccepted)

	require.NoError(t, err)
	assert.Equal(t, models.MatchAccepted, updated.Status)
}

func TestDecide_MatchedOnlyThroughExplicitAssignment(t *testing.T) {
	project := projectIn("p", "tech", nil)
	matchRepo := newFakeMatchRepo()
	svc := NewMatchService(matchRepo, newFakeProjectRepo(project), nil)

	created, err := svc.RecordSwipe(uuid.New(), project.ID, models.SwipeLike)
	require.NoError(t, err)
	assert.Equal(t, models.MatchPending, created.Status)

	updated, err := svc.Decide(project.OwnerID, created.ID, models.MatchMatched)

	require.NoError(t, err)
	assert.Equal(t, models.MatchMatched, updated.Status)
}

func TestDecide_RejectsNonOwner(t *testing.T) {
	svc, _, project := newMatchFixture(t)

	created, err := svc.RecordSwipe(uuid.New(), project.ID, models.SwipeLike)
	require.NoError(t, err)

	_, err = svc.Decide(uuid.New(), created.ID, models.MatchAccepted)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDecide_RejectsInvalidStatus(t *testing.T) {
	svc, _, project := newMatchFixture(t)

	created, err := svc.RecordSwipe(uuid.New(), project.ID, models.SwipeLike)
	require.NoError(t, err)

	_, err = svc.Decide(project.OwnerID, created.ID, models.MatchPassed)

	assert.ErrorIs(t, err, ErrInvalidStatus)
}
