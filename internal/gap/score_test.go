package gap_test

import (
	"linkgap/internal/gap"
	"linkgap/pkg/domain"
	"testing"
)

func scoreOne(g domain.GapDomain, competitors []domain.Competitor) int {
	scored := gap.ScoreGaps([]domain.GapDomain{g}, competitors)

	return scored[0].ThreadResonance
}

func TestScoreGaps_Formula(t *testing.T) {
	competitors := []domain.Competitor{
		{Domain: "c1.com", CommonKeywords: 40},
		{Domain: "c2.com", CommonKeywords: 60},
	}
	g := domain.GapDomain{
		Domain:                 "b.com",
		DomainRating:           80,
		CompetitorsLinkedCount: 2,
		CompetitorsLinked:      []string{"c1.com", "c2.com"},
	}

	// avg keywords 50 -> relevance 0.5; raw = 2 * 80 * 0.5 / 100 = 0.8 -> 1.
	if got := scoreOne(g, competitors); got != 1 {
		t.Fatalf("expected resonance 1, got %d", got)
	}
}

func TestScoreGaps_RelevanceCappedAtOne(t *testing.T) {
	capped := []domain.Competitor{{Domain: "c1.com", CommonKeywords: 100}}
	beyond := []domain.Competitor{{Domain: "c1.com", CommonKeywords: 5000}}
	g := domain.GapDomain{
		Domain:                 "b.com",
		DomainRating:           90,
		CompetitorsLinkedCount: 3,
		CompetitorsLinked:      []string{"c1.com"},
	}

	if a, b := scoreOne(g, capped), scoreOne(g, beyond); a != b {
		t.Fatalf("relevance must cap at 1: got %d vs %d", a, b)
	}
}

func TestScoreGaps_Bounds(t *testing.T) {
	competitors := []domain.Competitor{{Domain: "c1.com", CommonKeywords: 100}}

	huge := domain.GapDomain{
		Domain:                 "b.com",
		DomainRating:           95,
		CompetitorsLinkedCount: 200,
		CompetitorsLinked:      []string{"c1.com"},
	}
	if got := scoreOne(huge, competitors); got != 100 {
		t.Errorf("expected clamp to 100, got %d", got)
	}

	zero := domain.GapDomain{
		Domain:                 "b.com",
		DomainRating:           0,
		CompetitorsLinkedCount: 2,
		CompetitorsLinked:      []string{"c1.com"},
	}
	if got := scoreOne(zero, competitors); got != 0 {
		t.Errorf("expected 0 for zero rating, got %d", got)
	}

	// Keyword data absent for every linked competitor scores zero relevance.
	noKeywords := domain.GapDomain{
		Domain:                 "b.com",
		DomainRating:           90,
		CompetitorsLinkedCount: 2,
		CompetitorsLinked:      []string{"manual1.com", "manual2.com"},
	}
	if got := scoreOne(noKeywords, competitors); got != 0 {
		t.Errorf("expected 0 without keyword data, got %d", got)
	}
}

// Below the clamp, resonance never decreases when linked count, rating or
// relevance increases with everything else held equal.
func TestScoreGaps_Monotonic(t *testing.T) {
	competitors := []domain.Competitor{
		{Domain: "c1.com", CommonKeywords: 80},
		{Domain: "c2.com", CommonKeywords: 80},
		{Domain: "c3.com", CommonKeywords: 80},
	}
	base := domain.GapDomain{
		Domain:                 "b.com",
		DomainRating:           60,
		CompetitorsLinkedCount: 2,
		CompetitorsLinked:      []string{"c1.com", "c2.com"},
	}

	moreLinked := base
	moreLinked.CompetitorsLinkedCount = 3
	moreLinked.CompetitorsLinked = []string{"c1.com", "c2.com", "c3.com"}
	if scoreOne(moreLinked, competitors) < scoreOne(base, competitors) {
		t.Error("resonance decreased when linked count grew")
	}

	higherRating := base
	higherRating.DomainRating = 85
	if scoreOne(higherRating, competitors) < scoreOne(base, competitors) {
		t.Error("resonance decreased when rating grew")
	}
}

func TestScoreGaps_SortDeterministic(t *testing.T) {
	competitors := []domain.Competitor{{Domain: "c1.com", CommonKeywords: 100}}
	mk := func(name string, rating float64, linked int) domain.GapDomain {
		links := make([]string, linked)
		for i := range links {
			links[i] = "c1.com"
		}

		return domain.GapDomain{
			Domain:                 name,
			DomainRating:           rating,
			CompetitorsLinkedCount: linked,
			CompetitorsLinked:      links,
		}
	}

	gaps := gap.ScoreGaps([]domain.GapDomain{
		mk("zeta.com", 50, 2),  // resonance 1
		mk("alpha.com", 50, 2), // resonance 1, same rating: name breaks the tie
		mk("mid.com", 80, 5),   // resonance 4
		mk("top.com", 90, 10),  // resonance 9
	}, competitors)

	want := []string{"top.com", "mid.com", "alpha.com", "zeta.com"}
	got := gapNames(gaps)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}
