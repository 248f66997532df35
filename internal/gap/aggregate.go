package gap

import (
	"context"
	"linkgap/pkg/domain"
	"linkgap/pkg/logger"
	"linkgap/pkg/serrors"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CompetitorProfile is one competitor's backlink profile assembled for the
// intersection stage: the metadata list for scoring plus a set for O(1)
// membership tests.
type CompetitorProfile struct {
	Competitor domain.Competitor
	// Refs is the full referring-domain metadata list.
	Refs []domain.ReferringDomain
	// Set contains the canonical referring-domain names of Refs.
	Set map[string]struct{}
	// Fetched is false when the provider fetch failed and the competitor was
	// degraded to an empty profile.
	Fetched bool
}

// Aggregation is the combined output of the profile fan-out.
type Aggregation struct {
	// TargetSet holds the target's own referring domains for exclusion.
	TargetSet map[string]struct{}
	// Profiles holds one entry per requested competitor, in request order.
	Profiles []CompetitorProfile
}

// refSet builds a canonical membership set from a referring-domain list.
func refSet(refs []domain.ReferringDomain) map[string]struct{} {
	set := make(map[string]struct{}, len(refs))
	for _, r := range refs {
		set[strings.ToLower(r.Domain)] = struct{}{}
	}

	return set
}

// aggregate fetches the target's and every competitor's backlink profile
// concurrently and assembles the canonical in-memory sets.
//
// Every fetch is independently capped, independently timed out and
// independently fault-isolated: the fan-out always waits for all fetches to
// settle, a failed competitor fetch degrades that competitor to an empty
// profile, and only a failed target fetch aborts the analysis (the target's
// own profile is required to exclude already-covered domains). Each fetch
// writes only its own result slot, so the join needs no locking beyond the
// progress counter.
func (a *analyzer) aggregate(ctx context.Context,
	target string,
	competitors []domain.Competitor,
	progress chan<- Progress) (*Aggregation, error) {
	total := len(competitors) + 1

	var (
		targetRefs []domain.ReferringDomain
		targetErr  error

		compRefs = make([][]domain.ReferringDomain, len(competitors))
		compErrs = make([]error, len(competitors))
	)

	var mu sync.Mutex
	completed := 0
	fetchDone := func(site string) {
		mu.Lock()
		completed++
		done := completed
		mu.Unlock()
		notify(progress, Progress{Stage: StageFetching, Site: site, Completed: done, Total: total})
	}

	fetch := func(ctx context.Context, site string) ([]domain.ReferringDomain, error) {
		ctx, cancel := context.WithTimeout(ctx, a.options.FetchTimeout)
		defer cancel()

		refs, _, err := a.provider.RefDomains(ctx, site, a.options.FetchLimit)

		return refs, err
	}

	// The group collects no errors: each task records its outcome in its own
	// slot so one failure never short-circuits the join.
	var g errgroup.Group
	g.SetLimit(a.options.MaxConcurrentFetches)

	g.Go(func() error {
		targetRefs, targetErr = fetch(ctx, target)
		fetchDone(target)

		return nil
	})
	for i := range competitors {
		g.Go(func() error {
			compRefs[i], compErrs[i] = fetch(ctx, competitors[i].Domain)
			fetchDone(competitors[i].Domain)

			return nil
		})
	}
	_ = g.Wait()

	if targetErr != nil {
		return nil, serrors.Wrap(ErrTargetUnreachable, targetErr,
			"fetching referring domains of %s", target)
	}

	agg := &Aggregation{
		TargetSet: refSet(targetRefs),
		Profiles:  make([]CompetitorProfile, 0, len(competitors)),
	}
	for i, comp := range competitors {
		profile := CompetitorProfile{Competitor: comp, Fetched: true}
		if compErrs[i] != nil {
			// Degrade to an empty profile; coverage reporting picks this up.
			logger.Warn(ctx, "competitor profile fetch failed, degrading to empty profile",
				zap.String("competitor", comp.Domain),
				zap.Error(compErrs[i]))
			profile.Fetched = false
			profile.Refs = nil
			profile.Set = map[string]struct{}{}
		} else {
			profile.Refs = compRefs[i]
			profile.Set = refSet(compRefs[i])
		}
		agg.Profiles = append(agg.Profiles, profile)
	}

	return agg, nil
}
