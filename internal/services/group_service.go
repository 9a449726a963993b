package services

import (
	"context"
	"time"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/matching"
	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, groupID int64) (*models.Group, error)
}

// AvailabilityReader returns (nil, nil) when the user never saved a schedule.
type AvailabilityReader interface {
	GetAvailability(ctx context.Context, userID int64) (*models.AvailabilitySchedule, error)
}

type GroupService struct {
	groups       GroupRepository
	profiles     FeedRepository
	availability AvailabilityReader
	now          func() time.Time
}

func NewGroupService(groups GroupRepository, profiles FeedRepository, availability AvailabilityReader) *GroupService {
	return &GroupService{
		groups:       groups,
		profiles:     profiles,
		availability: availability,
		now:          time.Now,
	}
}

// CreateGroup registers a group of 2-5 members. The creator is always a
// member; duplicate ids collapse.
func (s *GroupService) CreateGroup(ctx context.Context, creatorID int64, name string, memberIDs []int64) (*models.Group, error) {
	seen := map[int64]struct{}{creatorID: {}}
	members := []int64{creatorID}
	for _, id := range memberIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		members = append(members, id)
	}
	if len(members) < models.GroupMinSize || len(members) > models.GroupMaxSize {
		return nil, ErrInvalidGroupSize
	}

	for _, id := range members {
		profile, err := s.profiles.GetProfile(ctx, id)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, ErrProfileNotFound
		}
	}

	group := &models.Group{
		Name:      name,
		CreatorID: creatorID,
		MemberIDs: members,
	}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// Compatibility computes the group's compatibility score on demand; the
// caller persists it if needed. Members whose profile cannot be loaded are
// skipped, and a group that degrades below two resolvable members scores
// zero.
func (s *GroupService) Compatibility(ctx context.Context, groupID int64) (int, error) {
	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return 0, err
	}
	if group == nil {
		return 0, ErrGroupNotFound
	}

	members := make([]matching.Member, 0, len(group.MemberIDs))
	for _, id := range group.MemberIDs {
		profile, err := s.profiles.GetProfile(ctx, id)
		if err != nil || profile == nil {
			continue
		}
		lifestyle, _ := s.profiles.GetLifestyle(ctx, id)
		housing, _ := s.profiles.GetHousing(ctx, id)
		prefs, _ := s.profiles.GetPreferences(ctx, id)
		members = append(members, matching.Member{
			Profile:   profile,
			Lifestyle: lifestyle,
			Housing:   housing,
			Prefs:     prefs,
		})
	}

	return matching.GroupScore(members), nil
}

// SuggestMeetingTimes proposes up to three meeting times across the group's
// schedules. A member without a schedule forces the fixed fallback
// suggestions.
func (s *GroupService) SuggestMeetingTimes(ctx context.Context, groupID int64) ([]string, error) {
	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	schedules := make([]*models.AvailabilitySchedule, 0, len(group.MemberIDs))
	for _, id := range group.MemberIDs {
		schedule, err := s.availability.GetAvailability(ctx, id)
		if err != nil {
			schedule = nil
		}
		schedules = append(schedules, schedule)
	}

	return matching.SuggestTimes(schedules, s.now()), nil
}
