package services

import (
	"context"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/matching"
	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

// FullProfile is the aggregate view returned to clients: the base profile
// plus whichever sub-records exist.
type FullProfile struct {
	Profile     models.Profile             `json:"profile"`
	Lifestyle   *models.LifestyleProfile   `json:"lifestyle,omitempty"`
	Housing     *models.HousingProfile     `json:"housing,omitempty"`
	Preferences *models.PreferencesProfile `json:"preferences,omitempty"`
}

type ProfileService struct {
	repo      FeedRepository
	relations RelationshipFlags
}

func NewProfileService(repo FeedRepository, relations RelationshipFlags) *ProfileService {
	return &ProfileService{repo: repo, relations: relations}
}

func (s *ProfileService) GetFullProfile(ctx context.Context, userID int64) (*FullProfile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	lifestyle, err := s.repo.GetLifestyle(ctx, userID)
	if err != nil {
		return nil, err
	}
	housing, err := s.repo.GetHousing(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs, err := s.repo.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &FullProfile{
		Profile:     *profile,
		Lifestyle:   lifestyle,
		Housing:     housing,
		Preferences: prefs,
	}, nil
}

// Compatibility scores a single candidate against the viewer, for the
// profile-detail screen. Sub-record handling and penalties mirror the feed.
func (s *ProfileService) Compatibility(ctx context.Context, viewerID, candidateID int64) (*models.FeedEntry, error) {
	viewer, err := s.repo.GetProfile(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	candidate, err := s.repo.GetProfile(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if viewer == nil || candidate == nil {
		return nil, ErrProfileNotFound
	}

	viewerLifestyle, _ := s.repo.GetLifestyle(ctx, viewerID)
	viewerHousing, _ := s.repo.GetHousing(ctx, viewerID)
	viewerPrefs, _ := s.repo.GetPreferences(ctx, viewerID)
	candidateLifestyle, _ := s.repo.GetLifestyle(ctx, candidateID)
	candidateHousing, _ := s.repo.GetHousing(ctx, candidateID)
	candidatePrefs, _ := s.repo.GetPreferences(ctx, candidateID)

	var penalties matching.Penalties
	if s.relations != nil {
		if blocked, err := s.relations.WasBlocked(ctx, viewerID, candidateID); err == nil {
			penalties.Blocked = blocked
		}
		if passed, err := s.relations.WasPassed(ctx, candidateID, viewerID); err == nil {
			penalties.RepeatedPass = passed
		}
	}

	var distance *float64
	if viewer.Lat != nil && viewer.Lng != nil && candidate.Lat != nil && candidate.Lng != nil {
		d := matching.DistanceKm(*viewer.Lat, *viewer.Lng, *candidate.Lat, *candidate.Lng)
		distance = &d
	}

	result := matching.Score(viewer, candidate, matching.Records{
		ViewerLifestyle:    viewerLifestyle,
		CandidateLifestyle: candidateLifestyle,
		ViewerHousing:      viewerHousing,
		CandidateHousing:   candidateHousing,
		ViewerPrefs:        viewerPrefs,
		CandidatePrefs:     candidatePrefs,
	}, penalties)

	return &models.FeedEntry{
		Profile:       *candidate,
		DistanceKm:    distance,
		Compatibility: result,
	}, nil
}
