package services

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/matching"
	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

// Candidates with this many reports or more never enter a feed.
const reportExclusionThreshold = 2

// Default width of the per-candidate fan-out.
const defaultFeedConcurrency = 8

// FeedRepository is the profile store the feed generator reads from. Sub-record
// lookups return (nil, nil) when the record does not exist.
type FeedRepository interface {
	GetProfile(ctx context.Context, userID int64) (*models.Profile, error)
	ListCandidates(ctx context.Context, viewerID int64) ([]models.Profile, error)
	GetLifestyle(ctx context.Context, userID int64) (*models.LifestyleProfile, error)
	GetHousing(ctx context.Context, userID int64) (*models.HousingProfile, error)
	GetPreferences(ctx context.Context, userID int64) (*models.PreferencesProfile, error)
}

type SwipeChecker interface {
	HasSwiped(ctx context.Context, swiperID, targetID int64) (bool, error)
}

type ReportCounter interface {
	CountForUser(ctx context.Context, userID int64) (int, error)
}

// RelationshipFlags feeds the scorer's penalty inputs. The provider is
// optional; a nil provider simply disables penalties.
type RelationshipFlags interface {
	WasBlocked(ctx context.Context, a, b int64) (bool, error)
	WasPassed(ctx context.Context, swiperID, targetID int64) (bool, error)
}

type FeedService struct {
	repo        FeedRepository
	swipes      SwipeChecker
	reports     ReportCounter
	relations   RelationshipFlags
	concurrency int
}

func NewFeedService(repo FeedRepository, swipes SwipeChecker, reports ReportCounter, relations RelationshipFlags) *FeedService {
	return &FeedService{
		repo:        repo,
		swipes:      swipes,
		reports:     reports,
		relations:   relations,
		concurrency: defaultFeedConcurrency,
	}
}

// GenerateFeed builds the ranked candidate feed for viewerID. Candidates are
// filtered for eligibility, scored concurrently with per-candidate isolation
// (a failing lookup drops that candidate, never the batch), radius-filtered,
// stably sorted by score descending and truncated to limit.
func (s *FeedService) GenerateFeed(ctx context.Context, viewerID int64, limit int) ([]models.FeedEntry, error) {
	viewer, err := s.repo.GetProfile(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if viewer == nil {
		return nil, ErrProfileNotFound
	}

	prefs, err := s.repo.GetPreferences(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		// A viewer without preferences gets an empty feed, not an error.
		return []models.FeedEntry{}, nil
	}

	// The viewer's own sub-records degrade to nil on failure; the affected
	// scoring factors just contribute zero.
	viewerLifestyle, _ := s.repo.GetLifestyle(ctx, viewerID)
	viewerHousing, _ := s.repo.GetHousing(ctx, viewerID)

	candidates, err := s.repo.ListCandidates(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	eligible := make([]models.Profile, 0, len(candidates))
	for _, candidate := range candidates {
		if s.eligible(viewer, prefs, &candidate) {
			eligible = append(eligible, candidate)
		}
	}

	// Collect into listing-order slots so ties keep their pre-sort relative
	// order regardless of fan-out scheduling.
	slots := make([]*models.FeedEntry, len(eligible))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range eligible {
		i := i
		candidate := eligible[i]
		g.Go(func() error {
			slots[i] = s.buildEntry(gctx, viewer, viewerLifestyle, viewerHousing, prefs, candidate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]models.FeedEntry, 0, len(slots))
	for _, entry := range slots {
		if entry != nil {
			entries = append(entries, *entry)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Compatibility.Score > entries[j].Compatibility.Score
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *FeedService) eligible(viewer *models.Profile, prefs *models.PreferencesProfile, candidate *models.Profile) bool {
	if candidate.UserID == viewer.UserID {
		return false
	}
	if candidate.Paused {
		return false
	}
	// An inverted age range disables the age filter instead of excluding
	// everyone; a candidate without an age is never excluded on age.
	if prefs.AgeMin <= prefs.AgeMax && candidate.Age != nil {
		if *candidate.Age < prefs.AgeMin || *candidate.Age > prefs.AgeMax {
			return false
		}
	}
	if prefs.CityOnly && !sameStringValue(viewer.City, candidate.City) {
		return false
	}
	if prefs.UniversityOnly && !sameStringValue(viewer.University, candidate.University) {
		return false
	}
	if candidate.PhotoCount == 0 {
		return false
	}
	return true
}

// buildEntry runs the per-candidate collaborator calls and scoring. Returning
// nil drops the candidate from the feed.
func (s *FeedService) buildEntry(
	ctx context.Context,
	viewer *models.Profile,
	viewerLifestyle *models.LifestyleProfile,
	viewerHousing *models.HousingProfile,
	prefs *models.PreferencesProfile,
	candidate models.Profile,
) *models.FeedEntry {
	swiped, err := s.swipes.HasSwiped(ctx, viewer.UserID, candidate.UserID)
	if err != nil || swiped {
		return nil
	}

	reportCount, err := s.reports.CountForUser(ctx, candidate.UserID)
	if err != nil || reportCount >= reportExclusionThreshold {
		return nil
	}

	candidateLifestyle, err := s.repo.GetLifestyle(ctx, candidate.UserID)
	if err != nil {
		return nil
	}
	candidateHousing, err := s.repo.GetHousing(ctx, candidate.UserID)
	if err != nil {
		return nil
	}
	candidatePrefs, err := s.repo.GetPreferences(ctx, candidate.UserID)
	if err != nil {
		return nil
	}

	var distance *float64
	if viewer.Lat != nil && viewer.Lng != nil && candidate.Lat != nil && candidate.Lng != nil {
		d := matching.DistanceKm(*viewer.Lat, *viewer.Lng, *candidate.Lat, *candidate.Lng)
		distance = &d
	}
	// Candidates with an unknown distance pass the radius filter.
	if distance != nil && prefs.MaxDistanceKm > 0 && *distance > prefs.MaxDistanceKm {
		return nil
	}

	var penalties matching.Penalties
	if s.relations != nil {
		blocked, err := s.relations.WasBlocked(ctx, viewer.UserID, candidate.UserID)
		if err != nil {
			return nil
		}
		passed, err := s.relations.WasPassed(ctx, candidate.UserID, viewer.UserID)
		if err != nil {
			return nil
		}
		penalties = matching.Penalties{Blocked: blocked, RepeatedPass: passed}
	}

	result := matching.Score(viewer, &candidate, matching.Records{
		ViewerLifestyle:    viewerLifestyle,
		CandidateLifestyle: candidateLifestyle,
		ViewerHousing:      viewerHousing,
		CandidateHousing:   candidateHousing,
		ViewerPrefs:        prefs,
		CandidatePrefs:     candidatePrefs,
	}, penalties)

	return &models.FeedEntry{
		Profile:       candidate,
		DistanceKm:    distance,
		Compatibility: result,
	}
}

func sameStringValue(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}
