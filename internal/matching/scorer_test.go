package matching

import (
	"reflect"
	"testing"
	"time"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

func strPtr(s string) *string        { return &s }
func boolPtr(b bool) *bool           { return &b }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func buildProfile(id int64, city, university string, hasRoom bool) *models.Profile {
	return &models.Profile{
		ID:         id,
		UserID:     id,
		City:       strPtr(city),
		University: strPtr(university),
		HasRoom:    hasRoom,
	}
}

func TestScoreSameUniversityAndCity(t *testing.T) {
	viewer := buildProfile(1, "Berlin", "TU Berlin", false)
	candidate := buildProfile(2, "Berlin", "TU Berlin", false)

	result := Score(viewer, candidate, Records{}, Penalties{})

	// 30 (university) + 20 (unconditional city factor); the
	// university-mismatch city factor must not fire.
	if result.Score != 50 {
		t.Fatalf("expected score 50, got %d", result.Score)
	}
	want := []string{"Same university", "City match"}
	if !reflect.DeepEqual(result.Reasons, want) {
		t.Fatalf("expected reasons %v, got %v", want, result.Reasons)
	}
}

func TestScoreSameCityDifferentUniversity(t *testing.T) {
	viewer := buildProfile(1, "Berlin", "TU Berlin", false)
	candidate := buildProfile(2, "Berlin", "HU Berlin", false)

	result := Score(viewer, candidate, Records{}, Penalties{})

	// Both city factors fire when the university factor does not.
	if result.Score != 40 {
		t.Fatalf("expected score 40, got %d", result.Score)
	}
	want := []string{"Same city", "City match"}
	if !reflect.DeepEqual(result.Reasons, want) {
		t.Fatalf("expected reasons %v, got %v", want, result.Reasons)
	}
}

func TestScoreBudgetFitMidpointIsMaximum(t *testing.T) {
	offer := buildProfile(1, "Berlin", "TU Berlin", true)
	seeker := buildProfile(2, "Munich", "LMU", false)

	base := Records{
		ViewerHousing:    &models.HousingProfile{RentAmount: floatPtr(850)},
		CandidateHousing: &models.HousingProfile{BudgetMin: floatPtr(500), BudgetMax: floatPtr(1200)},
	}

	// 850 is the exact midpoint of [500, 1200]: full 15 budget points plus
	// the complementary-housing bonus of 2.
	result := Score(offer, seeker, base, Penalties{})
	if result.Score != 17 {
		t.Fatalf("expected score 17 at midpoint rent, got %d", result.Score)
	}

	for _, rent := range []float64{500, 1200} {
		recs := base
		recs.ViewerHousing = &models.HousingProfile{RentAmount: floatPtr(rent)}
		edge := Score(offer, seeker, recs, Penalties{})
		// Only the complementary bonus remains at the range edges.
		if edge.Score != 2 {
			t.Fatalf("expected near-zero budget fit at rent %.0f, got score %d", rent, edge.Score)
		}
	}

	recs := base
	recs.ViewerHousing = &models.HousingProfile{RentAmount: floatPtr(1300)}
	outside := Score(offer, seeker, recs, Penalties{})
	if outside.Score != 2 {
		t.Fatalf("expected zero budget fit outside range, got score %d", outside.Score)
	}
}

func TestScoreBudgetOverlapBothSeeking(t *testing.T) {
	a := buildProfile(1, "Berlin", "TU Berlin", false)
	b := buildProfile(2, "Munich", "LMU", false)

	recs := Records{
		ViewerHousing:    &models.HousingProfile{BudgetMin: floatPtr(600), BudgetMax: floatPtr(1000)},
		CandidateHousing: &models.HousingProfile{BudgetMin: floatPtr(800), BudgetMax: floatPtr(1200)},
	}

	// Overlap 200 over the larger range 400 -> half of the 15 budget points.
	result := Score(a, b, recs, Penalties{})
	if result.Score != 8 {
		t.Fatalf("expected score 8 (rounded 7.5), got %d", result.Score)
	}

	recs.CandidateHousing = &models.HousingProfile{BudgetMin: floatPtr(1100), BudgetMax: floatPtr(1400)}
	if got := Score(a, b, recs, Penalties{}); got.Score != 0 {
		t.Fatalf("expected zero for disjoint budgets, got %d", got.Score)
	}
}

func TestScoreInvalidBudgetRangeContributesZero(t *testing.T) {
	offer := buildProfile(1, "Berlin", "TU Berlin", true)
	seeker := buildProfile(2, "Munich", "LMU", false)

	recs := Records{
		ViewerHousing:    &models.HousingProfile{RentAmount: floatPtr(850)},
		CandidateHousing: &models.HousingProfile{BudgetMin: floatPtr(1200), BudgetMax: floatPtr(500)},
	}
	result := Score(offer, seeker, recs, Penalties{})
	if result.Score != 2 {
		t.Fatalf("expected only complementary bonus for inverted budget range, got %d", result.Score)
	}
}

func TestScoreLifestyleSimilarityCapped(t *testing.T) {
	viewer := buildProfile(1, "Berlin", "TU Berlin", false)
	candidate := buildProfile(2, "Munich", "LMU", false)

	lifestyle := func() *models.LifestyleProfile {
		return &models.LifestyleProfile{
			Cleanliness:    strPtr(models.CleanlinessAverage),
			SleepSchedule:  strPtr(models.SleepNight),
			GuestFrequency: strPtr(models.GuestsSometimes),
			Smoker:         boolPtr(false),
			PetsOK:         boolPtr(true),
		}
	}

	result := Score(viewer, candidate, Records{
		ViewerLifestyle:    lifestyle(),
		CandidateLifestyle: lifestyle(),
	}, Penalties{})
	if result.Score != 15 {
		t.Fatalf("expected lifestyle contribution capped at 15, got %d", result.Score)
	}
	if len(result.Reasons) != 1 || result.Reasons[0] != "Similar lifestyle" {
		t.Fatalf("expected single lifestyle reason, got %v", result.Reasons)
	}
}

func TestScoreHobbyOverlapMonotonic(t *testing.T) {
	viewer := buildProfile(1, "Berlin", "TU Berlin", false)
	candidate := buildProfile(2, "Munich", "LMU", false)

	viewerLifestyle := &models.LifestyleProfile{Hobbies: []string{"climbing", "cooking", "chess"}}

	previous := -1
	shared := []string{}
	for _, hobby := range viewerLifestyle.Hobbies {
		shared = append(shared, hobby)
		result := Score(viewer, candidate, Records{
			ViewerLifestyle:    viewerLifestyle,
			CandidateLifestyle: &models.LifestyleProfile{Hobbies: shared},
		}, Penalties{})
		if result.Score < previous {
			t.Fatalf("adding shared hobby %q decreased score from %d to %d", hobby, previous, result.Score)
		}
		previous = result.Score
	}

	// Identical hobby sets yield the full hobby weight.
	if previous != 8 {
		t.Fatalf("expected full hobby overlap score 8, got %d", previous)
	}
}

func TestScoreHobbyDuplicatesDoNotInflate(t *testing.T) {
	viewer := buildProfile(1, "Berlin", "TU Berlin", false)
	candidate := buildProfile(2, "Munich", "LMU", false)

	// Repeated entries collapse into the set; a single shared hobby can never
	// exceed the 8-point hobby weight no matter how often it is listed.
	result := Score(viewer, candidate, Records{
		ViewerLifestyle:    &models.LifestyleProfile{Hobbies: []string{"chess"}},
		CandidateLifestyle: &models.LifestyleProfile{Hobbies: []string{"chess", "chess", "chess"}},
	}, Penalties{})
	if result.Score != 8 {
		t.Fatalf("expected score 8 for duplicated shared hobby, got %d", result.Score)
	}

	// Duplicates on either side leave the Jaccard ratio untouched: sets are
	// {chess} and {chess, cooking}, so 1/2 of the 8 points.
	both := Score(viewer, candidate, Records{
		ViewerLifestyle:    &models.LifestyleProfile{Hobbies: []string{"chess", "chess"}},
		CandidateLifestyle: &models.LifestyleProfile{Hobbies: []string{"chess", "cooking", "cooking"}},
	}, Penalties{})
	if both.Score != 4 {
		t.Fatalf("expected score 4 for half overlap with duplicates, got %d", both.Score)
	}
}

func TestScoreQuizAlignment(t *testing.T) {
	viewer := buildProfile(1, "Berlin", "TU Berlin", false)
	candidate := buildProfile(2, "Munich", "LMU", false)

	recs := Records{
		ViewerPrefs: &models.PreferencesProfile{QuizAnswers: map[string]string{
			"morning_person": "yes",
			"shared_food":    "no",
			"parties":        "sometimes",
		}},
		CandidatePrefs: &models.PreferencesProfile{QuizAnswers: map[string]string{
			"morning_person": "yes",
			"shared_food":    "yes",
		}},
	}

	// 1 of 2 common keys match -> 3.5, rounded to 4.
	result := Score(viewer, candidate, recs, Penalties{})
	if result.Score != 4 {
		t.Fatalf("expected quiz score 4, got %d", result.Score)
	}
}

func TestScoreMoveInDecay(t *testing.T) {
	offer := buildProfile(1, "Berlin", "TU Berlin", true)
	seeker := buildProfile(2, "Munich", "LMU", false)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		gapDays int
		want    int
	}{
		{0, 5},  // full 3 move-in points + 2 complementary
		{15, 4}, // 1.5 + 2, rounded up
		{30, 2}, // decayed to zero, bonus only
		{60, 2},
	}
	for _, tc := range cases {
		recs := Records{
			ViewerHousing:    &models.HousingProfile{AvailableFrom: timePtr(from)},
			CandidateHousing: &models.HousingProfile{DesiredFrom: timePtr(from.AddDate(0, 0, tc.gapDays))},
		}
		result := Score(offer, seeker, recs, Penalties{})
		if result.Score != tc.want {
			t.Fatalf("gap %d days: expected score %d, got %d", tc.gapDays, tc.want, result.Score)
		}
	}
}

func TestScoreOptInSignals(t *testing.T) {
	viewer := buildProfile(1, "Berlin", "TU Berlin", false)
	candidate := buildProfile(2, "Munich", "LMU", false)

	recs := Records{
		ViewerLifestyle:    &models.LifestyleProfile{Religion: strPtr("buddhist"), ShowReligion: true, ShowGender: true},
		CandidateLifestyle: &models.LifestyleProfile{Religion: strPtr("buddhist"), ShowReligion: true, ShowGender: true},
	}
	result := Score(viewer, candidate, recs, Penalties{})
	// 5 (religion) + 2.5 (gender signal) rounded once at the end.
	if result.Score != 8 {
		t.Fatalf("expected score 8, got %d", result.Score)
	}

	recs.CandidateLifestyle.ShowReligion = false
	hidden := Score(viewer, candidate, recs, Penalties{})
	if hidden.Score != 3 {
		t.Fatalf("expected religion factor suppressed without mutual opt-in, got %d", hidden.Score)
	}
}

func TestScorePenaltiesLowerScoreWithoutReasons(t *testing.T) {
	viewer := buildProfile(1, "Berlin", "TU Berlin", false)
	candidate := buildProfile(2, "Berlin", "TU Berlin", false)

	clean := Score(viewer, candidate, Records{}, Penalties{})
	penalized := Score(viewer, candidate, Records{}, Penalties{Blocked: true, RepeatedPass: true})

	if penalized.Score != clean.Score-20 {
		t.Fatalf("expected 20-point penalty, got %d vs %d", penalized.Score, clean.Score)
	}
	if !reflect.DeepEqual(penalized.Reasons, clean.Reasons) {
		t.Fatalf("penalties must not change reasons: %v vs %v", penalized.Reasons, clean.Reasons)
	}
}

func TestScoreClampsToZero(t *testing.T) {
	viewer := buildProfile(1, "Berlin", "TU Berlin", false)
	candidate := buildProfile(2, "Munich", "LMU", false)

	result := Score(viewer, candidate, Records{}, Penalties{Blocked: true, RepeatedPass: true})
	if result.Score != 0 {
		t.Fatalf("expected score clamped to 0, got %d", result.Score)
	}
}

func TestScoreMissingSubRecordsNeverPanics(t *testing.T) {
	viewer := &models.Profile{ID: 1}
	candidate := &models.Profile{ID: 2}

	result := Score(viewer, candidate, Records{}, Penalties{})
	if result.Score != 0 {
		t.Fatalf("expected zero score for empty profiles, got %d", result.Score)
	}
	if len(result.Reasons) != 0 {
		t.Fatalf("expected no reasons, got %v", result.Reasons)
	}
}

func TestScoreDeterministic(t *testing.T) {
	viewer := buildProfile(1, "Berlin", "TU Berlin", false)
	candidate := buildProfile(2, "Berlin", "HU Berlin", true)
	recs := Records{
		ViewerLifestyle:    &models.LifestyleProfile{Hobbies: []string{"cooking", "running"}},
		CandidateLifestyle: &models.LifestyleProfile{Hobbies: []string{"running", "chess"}},
		ViewerHousing:      &models.HousingProfile{BudgetMin: floatPtr(500), BudgetMax: floatPtr(900)},
		CandidateHousing:   &models.HousingProfile{RentAmount: floatPtr(700)},
	}

	first := Score(viewer, candidate, recs, Penalties{})
	for i := 0; i < 10; i++ {
		again := Score(viewer, candidate, recs, Penalties{})
		if again.Score != first.Score || !reflect.DeepEqual(again.Reasons, first.Reasons) {
			t.Fatalf("score not deterministic: %+v vs %+v", first, again)
		}
	}
	if first.Score < 0 || first.Score > 100 {
		t.Fatalf("score out of bounds: %d", first.Score)
	}
}
