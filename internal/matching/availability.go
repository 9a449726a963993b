package matching

import (
	"fmt"
	"time"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

const maxSuggestions = 3

// Weekday order is fixed so suggestions are deterministic.
var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// SuggestTimes proposes up to three meeting times where every schedule marks
// the weekday available with at least one slot. The suggested time is the
// first slot of the first schedule for that day; no interval intersection is
// attempted, so a day can be suggested even when the members' slots do not
// actually overlap. When no weekday qualifies, three fixed fallback
// suggestions anchored at now are returned.
func SuggestTimes(schedules []*models.AvailabilitySchedule, now time.Time) []string {
	suggestions := make([]string, 0, maxSuggestions)

	if len(schedules) > 0 {
		for _, day := range weekdays {
			slot, ok := commonDaySlot(schedules, day)
			if !ok {
				continue
			}
			suggestions = append(suggestions, fmt.Sprintf("%s at %s", day, slot.Start))
			if len(suggestions) == maxSuggestions {
				break
			}
		}
	}

	if len(suggestions) == 0 {
		return []string{
			"Tomorrow at 2:00 PM",
			now.AddDate(0, 0, 2).Format("Monday, Jan 2") + " at 10:00 AM",
			"This weekend at 11:00 AM",
		}
	}
	return suggestions
}

// commonDaySlot reports whether every schedule has the day marked available
// with at least one slot, returning the first member's first slot.
func commonDaySlot(schedules []*models.AvailabilitySchedule, day string) (models.TimeSlot, bool) {
	var first models.TimeSlot
	for i, schedule := range schedules {
		if schedule == nil {
			return models.TimeSlot{}, false
		}
		entry, ok := schedule.Days[day]
		if !ok || !entry.Available || len(entry.TimeSlots) == 0 {
			return models.TimeSlot{}, false
		}
		if i == 0 {
			first = entry.TimeSlots[0]
		}
	}
	return first, true
}
