package gap

import (
	"context"
	"linkgap/pkg/domain"
	"linkgap/pkg/logger"
	"linkgap/pkg/serrors"

	"go.uber.org/zap"
)

// resolveCompetitors produces the competitor set for a run. A non-empty
// manual list always wins over discovery; discovered competitors come from
// the provider's organic-overlap endpoint. The target itself is never a
// competitor. An empty outcome either way is reported as ErrNoCompetitors so
// callers can render it distinctly from an analysis that ran and found no
// gaps.
func (a *analyzer) resolveCompetitors(ctx context.Context, target string, manual []string, country string) ([]domain.Competitor, error) {
	if country == "" {
		country = a.options.Country
	}

	if len(manual) > 0 {
		normalized, err := normalizeManual(manual)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "normalizing manual competitors")
		}

		out := make([]domain.Competitor, 0, len(normalized))
		for _, d := range normalized {
			if d == target {
				continue
			}
			out = append(out, domain.Competitor{Domain: d, Manual: true})
		}
		if len(out) == 0 {
			return nil, serrors.With(ErrNoCompetitors,
				"manual competitor list for %s is empty after normalization", target)
		}

		return out, nil
	}

	discovered, _, err := a.provider.Competitors(ctx, target, country, a.options.CompetitorLimit)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "discovering competitors of %s", target)
	}

	out := make([]domain.Competitor, 0, len(discovered))
	seen := map[string]struct{}{target: {}}
	for _, c := range discovered {
		d, err := NormalizeDomain(c.Domain)
		if err != nil {
			// Provider responses occasionally contain junk rows. Skip them
			// rather than failing an otherwise healthy discovery.
			logger.Warn(ctx, "skipping malformed discovered competitor",
				zap.String("competitor", c.Domain), zap.Error(err))

			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		c.Domain = d
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, serrors.With(ErrNoCompetitors, "no organic competitors found for %s", target)
	}

	return out, nil
}
