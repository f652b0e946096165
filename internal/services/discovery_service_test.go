package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectmatch-service/internal/models"
	"projectmatch-service/internal/utils"
)

var (
	parisCoord = models.Coordinate{Latitude: 48.8566, Longitude: 2.3522}
	lyonCoord  = models.Coordinate{Latitude: 45.7640, Longitude: 4.8357}
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func projectIn(title, sector string, loc *models.Location) models.Project {
	return models.Project{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Title:    title,
		Sector:   sector,
		Location: loc,
	}
}

func parisLocation() *models.Location {
	return &models.Location{City: "Paris", Department: "Paris", PostalCode: "75001", Coordinate: parisCoord}
}

func lyonLocation() *models.Location {
	return &models.Location{City: "Lyon", Department: "Rhône", PostalCode: "69001", Coordinate: lyonCoord}
}

func TestFilterProjects_SectorExactMatch(t *testing.T) {
	projects := []models.Project{
		projectIn("a", "tech", nil),
		projectIn("b", "design", nil),
	}

	results := FilterProjects(projects, models.FilterCriteria{Sector: "tech"})

	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].Title)
}

func TestFilterProjects_DurationExcludesProjectsWithoutOne(t *testing.T) {
	withDuration := projectIn("a", "tech", nil)
	withDuration.Duration = strPtr("3_months")
	withoutDuration := projectIn("b", "tech", nil)

	results := FilterProjects([]models.Project{withDuration, withoutDuration},
		models.FilterCriteria{Duration: "3_months"})

	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].Title)
}

func TestFilterProjects_MaxDistanceDropsFarAndLocationless(t *testing.T) {
	projects := []models.Project{
		projectIn("paris tech", "tech", parisLocation()),
		projectIn("lyon tech", "tech", lyonLocation()),
		projectIn("nowhere tech", "tech", nil),
	}

	results := FilterProjects(projects, models.FilterCriteria{
		Sector:         "tech",
		UserCoordinate: &parisCoord,
		MaxDistanceKm:  floatPtr(50),
	})

	require.Len(t, results, 1)
	assert.Equal(t, "paris tech", results[0].Title)
	require.NotNil(t, results[0].DistanceKm)
	assert.InDelta(t, 0, *results[0].DistanceKm, 1)
}

func TestFilterProjects_CityMatchIsCaseInsensitiveSubstring(t *testing.T) {
	projects := []models.Project{
		projectIn("a", "", parisLocation()),
		projectIn("b", "", lyonLocation()),
	}

	results := FilterProjects(projects, models.FilterCriteria{City: "pAr"})

	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].Title)
}

func TestFilterProjects_SortsByDistanceWithLocationlessTrailing(t *testing.T) {
	far := projectIn("far", "", lyonLocation())
	near := projectIn("near", "", parisLocation())
	noLoc1 := projectIn("no-loc-1", "", nil)
	noLoc2 := projectIn("no-loc-2", "", nil)

	// No MaxDistanceKm cutoff here, so locationless projects survive but
	// never receive a distance. Annotate manually through the criteria that
	// computes distances with a generous cutoff.
	results := FilterProjects([]models.Project{noLoc1, far, noLoc2, near},
		models.FilterCriteria{})

	// Without a coordinate nothing has a distance; original order is kept.
	require.Len(t, results, 4)
	assert.Equal(t, "no-loc-1", results[0].Title)
	assert.Equal(t, "far", results[1].Title)

	withDistances := FilterProjects([]models.Project{far, near},
		models.FilterCriteria{UserCoordinate: &parisCoord, MaxDistanceKm: floatPtr(1000)})

	require.Len(t, withDistances, 2)
	assert.Equal(t, "near", withDistances[0].Title)
	assert.Equal(t, "far", withDistances[1].Title)
	assert.Less(t, *withDistances[0].DistanceKm, *withDistances[1].DistanceKm)
	assert.InDelta(t, 392, *withDistances[1].DistanceKm, 5)
}

func TestFilterProjects_AbsentCriteriaKeepEverything(t *testing.T) {
	projects := []models.Project{
		projectIn("a", "tech", parisLocation()),
		projectIn("b", "design", nil),
	}

	results := FilterProjects(projects, models.FilterCriteria{})

	assert.Len(t, results, 2)
}

// fakeProjectRepo is an in-memory repository.ProjectRepository.
type fakeProjectRepo struct {
	projects map[uuid.UUID]models.Project
	order    []uuid.UUID
}

func newFakeProjectRepo(projects ...models.Project) *fakeProjectRepo {
	repo := &fakeProjectRepo{projects: make(map[uuid.UUID]models.Project)}
	for _, p := range projects {
		repo.projects[p.ID] = p
		repo.order = append(repo.order, p.ID)
	}
	return repo
}

func (f *fakeProjectRepo) CreateProject(p *models.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.projects[p.ID] = *p
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakeProjectRepo) GetProject(id uuid.UUID) (*models.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, errRecordNotFound()
	}
	return &p, nil
}

func (f *fakeProjectRepo) ListProjects() ([]models.Project, error) {
	var out []models.Project
	for _, id := range f.order {
		out = append(out, f.projects[id])
	}
	return out, nil
}

func (f *fakeProjectRepo) ListProjectsByOwner(ownerID uuid.UUID) ([]models.Project, error) {
	var out []models.Project
	for _, id := range f.order {
		if f.projects[id].OwnerID == ownerID {
			out = append(out, f.projects[id])
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) ListProjectsWithinRadius(center models.Coordinate, radiusKm float64) ([]models.Project, error) {
	var out []models.Project
	for _, id := range f.order {
		p := f.projects[id]
		if p.Location == nil {
			continue
		}
		if utils.HaversineDistance(center, p.Location.Coordinate) <= radiusKm {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) UpdateProject(p *models.Project) error {
	f.projects[p.ID] = *p
	return nil
}

func (f *fakeProjectRepo) DeleteProject(id uuid.UUID) error {
	delete(f.projects, id)
	return nil
}

func TestSuggestions_ExcludesCallersOwnProjects(t *testing.T) {
	caller := uuid.New()
	mine := projectIn("mine", "tech", parisLocation())
	mine.OwnerID = caller
	other := projectIn("theirs", "tech", parisLocation())

	svc := NewDiscoveryService(newFakeProjectRepo(mine, other), nil)

	results, err := svc.Suggestions(caller, models.FilterCriteria{})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "theirs", results[0].Title)
}

func TestSuggestions_RadiusNarrowsThroughRepository(t *testing.T) {
	paris := projectIn("paris", "tech", parisLocation())
	lyon := projectIn("lyon", "tech", lyonLocation())

	svc := NewDiscoveryService(newFakeProjectRepo(paris, lyon), nil)

	results, err := svc.Suggestions(uuid.New(), models.FilterCriteria{
		UserCoordinate: &parisCoord,
		MaxDistanceKm:  floatPtr(50),
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "paris", results[0].Title)
}
