package gap

import (
	"linkgap/pkg/domain"
	"math"
	"sort"
)

// relevanceKeywordNorm divides the average common-keyword count of a gap's
// linking competitors to yield a relevance factor in [0, 1]. 100 shared
// keywords is treated as full topical relevance; the value is empirically
// chosen and tunable.
const relevanceKeywordNorm = 100.0

// resonance computes the 0-100 score of a single gap:
//
//	raw = linkedCount * domainRating * relevanceFactor / 100
//
// where relevanceFactor is the capped, normalized average common-keyword
// count of the competitors linking to the gap. The raw value is clamped to
// 100 and rounded; the score grows monotonically in linked count, rating and
// relevance until the clamp.
func resonance(gap domain.GapDomain, keywords map[string]int) int {
	var sum float64
	for _, comp := range gap.CompetitorsLinked {
		sum += float64(keywords[comp])
	}
	avg := 0.0
	if len(gap.CompetitorsLinked) > 0 {
		avg = sum / float64(len(gap.CompetitorsLinked))
	}
	relevance := math.Min(avg/relevanceKeywordNorm, 1)

	raw := float64(gap.CompetitorsLinkedCount) * gap.DomainRating * relevance / 100
	score := int(math.Round(math.Min(raw, 100)))
	if score < 0 {
		score = 0
	}

	return score
}

// ScoreGaps assigns each gap its thread-resonance score and sorts the slice
// for presentation. The returned order is fully deterministic: resonance
// descending, then domain rating descending, then domain name ascending.
func ScoreGaps(gaps []domain.GapDomain, competitors []domain.Competitor) []domain.GapDomain {
	keywords := make(map[string]int, len(competitors))
	for _, c := range competitors {
		keywords[c.Domain] = c.CommonKeywords
	}

	for i := range gaps {
		gaps[i].ThreadResonance = resonance(gaps[i], keywords)
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].ThreadResonance != gaps[j].ThreadResonance {
			return gaps[i].ThreadResonance > gaps[j].ThreadResonance
		}
		if gaps[i].DomainRating != gaps[j].DomainRating {
			return gaps[i].DomainRating > gaps[j].DomainRating
		}

		return gaps[i].Domain < gaps[j].Domain
	})

	return gaps
}
