package matching

import (
	"math"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

const groupHousingBonus = 10

// Member is one participant in a group compatibility computation.
type Member struct {
	Profile   *models.Profile
	Lifestyle *models.LifestyleProfile
	Housing   *models.HousingProfile
	Prefs     *models.PreferencesProfile
}

// GroupScore averages the pairwise compatibility of every unique pair in the
// group and adds a flat bonus when the group contains complementary housing
// (at least one member offering a room and at least one seeking). Pair
// penalties are ignored: groups are assumed consensual. Groups smaller than
// two score zero.
func GroupScore(members []Member) int {
	if len(members) < 2 {
		return 0
	}

	sum := 0
	pairs := 0
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			a, b := members[i], members[j]
			result := Score(a.Profile, b.Profile, Records{
				ViewerLifestyle:    a.Lifestyle,
				CandidateLifestyle: b.Lifestyle,
				ViewerHousing:      a.Housing,
				CandidateHousing:   b.Housing,
				ViewerPrefs:        a.Prefs,
				CandidatePrefs:     b.Prefs,
			}, Penalties{})
			sum += result.Score
			pairs++
		}
	}

	total := float64(sum) / float64(pairs)

	offers, seeks := false, false
	for _, m := range members {
		if m.Profile.HasRoom {
			offers = true
		} else {
			seeks = true
		}
	}
	if offers && seeks {
		total += groupHousingBonus
	}

	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}
	return int(math.Round(total))
}
