package gap

import (
	"linkgap/pkg/domain"
	"strings"
)

// ComputeGaps derives the gap candidates from an aggregation: referring
// domains that link to at least minLinked competitors but not to the target.
//
// The pass builds a reverse index (referring domain -> linking competitors)
// over all competitor profiles, so the cost is linear in the total number of
// referring-domain entries regardless of how many competitors overlap.
// Domains already present in the target's set never enter the index. When
// several competitors report the same referring domain with diverging
// metadata, the entry with the highest domain rating wins; ratings drift
// between provider crawls and the highest observation is the one the scorer
// should not understate.
func ComputeGaps(agg *Aggregation, minLinked int) []domain.GapDomain {
	type candidate struct {
		best   domain.ReferringDomain
		linked []string
	}

	index := make(map[string]*candidate)
	order := make([]string, 0)

	for _, profile := range agg.Profiles {
		// providers may repeat a referring domain within one profile; each
		// competitor must count at most once per candidate
		seen := make(map[string]struct{}, len(profile.Refs))

		for _, ref := range profile.Refs {
			name := strings.ToLower(ref.Domain)
			if _, covered := agg.TargetSet[name]; covered {
				continue
			}

			c, ok := index[name]
			if !ok {
				c = &candidate{best: ref}
				index[name] = c
				order = append(order, name)
			} else if ref.DomainRating > c.best.DomainRating {
				c.best = ref
			}

			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			c.linked = append(c.linked, profile.Competitor.Domain)
		}
	}

	gaps := make([]domain.GapDomain, 0, len(order))
	for _, name := range order {
		c := index[name]
		if len(c.linked) < minLinked {
			continue
		}
		gaps = append(gaps, domain.GapDomain{
			Domain:                 name,
			DomainRating:           c.best.DomainRating,
			Backlinks:              c.best.Backlinks,
			RefPages:               c.best.RefPages,
			FirstSeen:              c.best.FirstSeen,
			LastVisited:            c.best.LastVisited,
			CompetitorsLinkedCount: len(c.linked),
			CompetitorsLinked:      c.linked,
		})
	}

	return gaps
}
