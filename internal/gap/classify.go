package gap

import "linkgap/pkg/domain"

// Classify buckets an analysis into a starvation level from the number of
// high-authority gaps (domain rating >= highAuthorityRating). severeAt and
// moderateAt are the inclusive lower bounds of their levels; anything below
// moderateAt is mild. It also returns the high-authority gap count for
// reporting.
func Classify(gaps []domain.GapDomain, highAuthorityRating float64, severeAt, moderateAt int) (domain.Starvation, int) {
	high := 0
	for _, g := range gaps {
		if g.DomainRating >= highAuthorityRating {
			high++
		}
	}

	switch {
	case high >= severeAt:
		return domain.StarvationSevere, high
	case high >= moderateAt:
		return domain.StarvationModerate, high
	default:
		return domain.StarvationMild, high
	}
}
