package matching

import (
	"testing"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

func TestGroupScoreTooSmall(t *testing.T) {
	if got := GroupScore(nil); got != 0 {
		t.Fatalf("expected 0 for empty group, got %d", got)
	}
	if got := GroupScore([]Member{{Profile: buildProfile(1, "Berlin", "TU Berlin", false)}}); got != 0 {
		t.Fatalf("expected 0 for single-member group, got %d", got)
	}
}

func TestGroupScoreTwoSeekersEqualsPairwise(t *testing.T) {
	a := Member{Profile: buildProfile(1, "Berlin", "TU Berlin", false)}
	b := Member{Profile: buildProfile(2, "Berlin", "TU Berlin", false)}

	pairwise := Score(a.Profile, b.Profile, Records{}, Penalties{})
	group := GroupScore([]Member{a, b})

	// Both seek rooms, so no housing bonus applies and the group score is
	// exactly the single pairwise score.
	if group != pairwise.Score {
		t.Fatalf("expected group score %d, got %d", pairwise.Score, group)
	}
}

func TestGroupScoreComplementaryHousingBonus(t *testing.T) {
	offer := Member{Profile: buildProfile(1, "Berlin", "TU Berlin", true)}
	seek := Member{Profile: buildProfile(2, "Berlin", "TU Berlin", false)}

	pairwise := Score(offer.Profile, seek.Profile, Records{}, Penalties{})
	group := GroupScore([]Member{offer, seek})

	if group != pairwise.Score+groupHousingBonus {
		t.Fatalf("expected group score %d, got %d", pairwise.Score+groupHousingBonus, group)
	}
}

func TestGroupScoreAveragesAllPairs(t *testing.T) {
	members := []Member{
		{Profile: buildProfile(1, "Berlin", "TU Berlin", false)},
		{Profile: buildProfile(2, "Berlin", "TU Berlin", false)},
		{Profile: buildProfile(3, "Munich", "LMU", false)},
	}

	// Pairs: (1,2)=50, (1,3)=0, (2,3)=0 -> average 16.67 -> 17.
	if got := GroupScore(members); got != 17 {
		t.Fatalf("expected averaged group score 17, got %d", got)
	}
}

func TestGroupScoreClampedToHundred(t *testing.T) {
	lifestyle := func() *models.LifestyleProfile {
		return &models.LifestyleProfile{
			Cleanliness:    strPtr(models.CleanlinessMeticulous),
			SleepSchedule:  strPtr(models.SleepEarly),
			GuestFrequency: strPtr(models.GuestsNever),
			Smoker:         boolPtr(false),
			PetsOK:         boolPtr(true),
			Hobbies:        []string{"climbing"},
			Religion:       strPtr("catholic"),
			ShowReligion:   true,
			ShowGender:     true,
		}
	}
	offer := Member{
		Profile:   buildProfile(1, "Berlin", "TU Berlin", true),
		Lifestyle: lifestyle(),
		Housing:   &models.HousingProfile{RentAmount: floatPtr(850)},
	}
	seek := Member{
		Profile:   buildProfile(2, "Berlin", "TU Berlin", false),
		Lifestyle: lifestyle(),
		Housing:   &models.HousingProfile{BudgetMin: floatPtr(500), BudgetMax: floatPtr(1200)},
	}

	got := GroupScore([]Member{offer, seek})
	if got < 0 || got > 100 {
		t.Fatalf("group score out of bounds: %d", got)
	}
	if got != 100 {
		t.Fatalf("expected near-perfect pair with housing bonus to clamp at 100, got %d", got)
	}
}
