package matching

import (
	"math"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

// Factor weights for the pairwise compatibility model. Contributions are
// additive; the total is clamped to [0, 100] and rounded once at the end.
const (
	universityWeight    = 30
	cityWeight          = 20
	budgetWeight        = 15
	lifestyleMatchBonus = 3
	lifestyleCap        = 15
	hobbyWeight         = 8
	quizWeight          = 7
	moveInWeight        = 3
	moveInDecayDays     = 30
	complementaryBonus  = 2
	religionBonus       = 5
	genderSignalWeight  = 5
	blockedPenalty      = 10
	passedPenalty       = 10
)

// Records bundles the optional sub-records of both sides of a pairwise score.
// Any of them may be nil; the factors that depend on a missing record
// contribute zero.
type Records struct {
	ViewerLifestyle    *models.LifestyleProfile
	CandidateLifestyle *models.LifestyleProfile
	ViewerHousing      *models.HousingProfile
	CandidateHousing   *models.HousingProfile
	ViewerPrefs        *models.PreferencesProfile
	CandidatePrefs     *models.PreferencesProfile
}

// Penalties carries pair history flags supplied by the host application.
// Penalties lower the score but never emit a reason.
type Penalties struct {
	Blocked      bool
	RepeatedPass bool
}

// Score computes the compatibility between viewer and candidate. It is a pure
// function: identical inputs always produce the identical result.
func Score(viewer, candidate *models.Profile, recs Records, pen Penalties) models.CompatibilityResult {
	total := 0.0
	reasons := []string{}

	add := func(points float64, reason string) {
		if points > 0 {
			total += points
			reasons = append(reasons, reason)
		}
	}

	sameUniversity := strEqual(viewer.University, candidate.University)
	sameCity := strEqual(viewer.City, candidate.City)

	if sameUniversity {
		add(universityWeight, "Same university")
	} else if sameCity {
		add(cityWeight, "Same city")
	}
	if sameCity {
		add(cityWeight, "City match")
	}

	add(budgetFit(viewer, candidate, recs.ViewerHousing, recs.CandidateHousing), "Budgets align")
	add(lifestyleSimilarity(recs.ViewerLifestyle, recs.CandidateLifestyle), "Similar lifestyle")
	add(hobbyOverlap(recs.ViewerLifestyle, recs.CandidateLifestyle), "Shared hobbies")
	add(quizAlignment(recs.ViewerPrefs, recs.CandidatePrefs), "Similar quiz answers")
	add(moveInAlignment(viewer, candidate, recs.ViewerHousing, recs.CandidateHousing), "Move-in dates align")

	if viewer.HasRoom != candidate.HasRoom {
		add(complementaryBonus, "One offers a room, one is looking")
	}

	if sharedReligion(recs.ViewerLifestyle, recs.CandidateLifestyle) {
		add(religionBonus, "Shared religion")
	}
	if recs.ViewerLifestyle != nil && recs.CandidateLifestyle != nil &&
		recs.ViewerLifestyle.ShowGender && recs.CandidateLifestyle.ShowGender {
		// Placeholder signal: half credit when both sides opted in.
		add(genderSignalWeight/2.0, "Open gender visibility")
	}

	if pen.Blocked {
		total -= blockedPenalty
	}
	if pen.RepeatedPass {
		total -= passedPenalty
	}

	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return models.CompatibilityResult{
		Score:   int(math.Round(total)),
		Reasons: reasons,
	}
}

// budgetFit scores how well the rent or budgets of the two sides line up.
// Offer vs. seek peaks when the rent sits at the midpoint of the seeker's
// budget range; seek vs. seek is proportional to range overlap.
func budgetFit(viewer, candidate *models.Profile, viewerHousing, candidateHousing *models.HousingProfile) float64 {
	switch {
	case viewer.HasRoom && !candidate.HasRoom:
		return rentCenteredness(viewerHousing, candidateHousing)
	case !viewer.HasRoom && candidate.HasRoom:
		return rentCenteredness(candidateHousing, viewerHousing)
	case !viewer.HasRoom && !candidate.HasRoom:
		return budgetOverlap(viewerHousing, candidateHousing)
	default:
		return 0
	}
}

func rentCenteredness(offer, seek *models.HousingProfile) float64 {
	if offer == nil || seek == nil || offer.RentAmount == nil || seek.BudgetMin == nil || seek.BudgetMax == nil {
		return 0
	}
	rent := *offer.RentAmount
	min, max := *seek.BudgetMin, *seek.BudgetMax
	if min > max || rent < min || rent > max {
		return 0
	}
	half := (max - min) / 2
	if half == 0 {
		return budgetWeight
	}
	mid := min + half
	return budgetWeight * (1 - math.Abs(rent-mid)/half)
}

func budgetOverlap(a, b *models.HousingProfile) float64 {
	if a == nil || b == nil || a.BudgetMin == nil || a.BudgetMax == nil || b.BudgetMin == nil || b.BudgetMax == nil {
		return 0
	}
	aMin, aMax := *a.BudgetMin, *a.BudgetMax
	bMin, bMax := *b.BudgetMin, *b.BudgetMax
	if aMin > aMax || bMin > bMax {
		return 0
	}
	overlap := math.Min(aMax, bMax) - math.Max(aMin, bMin)
	if overlap <= 0 {
		return 0
	}
	larger := math.Max(aMax-aMin, bMax-bMin)
	if larger <= 0 {
		return 0
	}
	return budgetWeight * overlap / larger
}

func lifestyleSimilarity(a, b *models.LifestyleProfile) float64 {
	if a == nil || b == nil {
		return 0
	}
	points := 0.0
	if strEqual(a.Cleanliness, b.Cleanliness) {
		points += lifestyleMatchBonus
	}
	if strEqual(a.SleepSchedule, b.SleepSchedule) {
		points += lifestyleMatchBonus
	}
	if strEqual(a.GuestFrequency, b.GuestFrequency) {
		points += lifestyleMatchBonus
	}
	if boolEqual(a.Smoker, b.Smoker) {
		points += lifestyleMatchBonus
	}
	if boolEqual(a.PetsOK, b.PetsOK) {
		points += lifestyleMatchBonus
	}
	if points > lifestyleCap {
		points = lifestyleCap
	}
	return points
}

// hobbyOverlap is the Jaccard similarity of the two hobby sets scaled by the
// hobby weight. Both lists dedupe into sets first so repeated entries cannot
// inflate the intersection.
func hobbyOverlap(a, b *models.LifestyleProfile) float64 {
	if a == nil || b == nil || len(a.Hobbies) == 0 || len(b.Hobbies) == 0 {
		return 0
	}
	setA := make(map[string]struct{}, len(a.Hobbies))
	for _, h := range a.Hobbies {
		setA[h] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b.Hobbies))
	for _, h := range b.Hobbies {
		setB[h] = struct{}{}
	}
	shared := 0
	union := len(setA)
	for h := range setB {
		if _, ok := setA[h]; ok {
			shared++
		} else {
			union++
		}
	}
	return hobbyWeight * float64(shared) / float64(union)
}

// quizAlignment compares free-form quiz answers over the keys both sides
// answered.
func quizAlignment(a, b *models.PreferencesProfile) float64 {
	if a == nil || b == nil || len(a.QuizAnswers) == 0 || len(b.QuizAnswers) == 0 {
		return 0
	}
	common := 0
	matching := 0
	for key, answer := range a.QuizAnswers {
		other, ok := b.QuizAnswers[key]
		if !ok {
			continue
		}
		common++
		if answer == other {
			matching++
		}
	}
	if common == 0 {
		return 0
	}
	return quizWeight * float64(matching) / float64(common)
}

// moveInAlignment decays linearly from full credit at identical
// availability-from dates to zero at a 30-day gap.
func moveInAlignment(viewer, candidate *models.Profile, viewerHousing, candidateHousing *models.HousingProfile) float64 {
	from := viewerHousing.MoveInFrom(viewer.HasRoom)
	to := candidateHousing.MoveInFrom(candidate.HasRoom)
	if from == nil || to == nil {
		return 0
	}
	gapDays := math.Abs(from.Sub(*to).Hours()) / 24
	if gapDays >= moveInDecayDays {
		return 0
	}
	return moveInWeight * (1 - gapDays/moveInDecayDays)
}

func sharedReligion(a, b *models.LifestyleProfile) bool {
	if a == nil || b == nil || !a.ShowReligion || !b.ShowReligion {
		return false
	}
	return a.Religion != nil && b.Religion != nil && *a.Religion != "" && *a.Religion == *b.Religion
}

func strEqual(a, b *string) bool {
	return a != nil && b != nil && *a != "" && *a == *b
}

func boolEqual(a, b *bool) bool {
	return a != nil && b != nil && *a == *b
}
