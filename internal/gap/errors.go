package gap

import "linkgap/pkg/serrors"

// Engine-specific error kinds. They compose with the generic kinds in
// pkg/serrors and are matched by callers via errors.Is.
var (
	// ErrUnsupportedIdentifier is returned by the normalizer for identifiers
	// no single domain can be derived from (aggregate property sets). It is
	// surfaced before any network call is made.
	ErrUnsupportedIdentifier = serrors.NewKind("UNSUPPORTED_IDENTIFIER")

	// ErrNoCompetitors is returned when competitor discovery yields zero
	// competitors and none were supplied manually. It is a common, expected
	// outcome that callers must render distinctly from an analysis that ran
	// and found no gaps.
	ErrNoCompetitors = serrors.NewKind("NO_COMPETITORS")

	// ErrTargetUnreachable is returned when the target's own backlink profile
	// could not be fetched. The exclusion step depends on that profile, so
	// the whole analysis aborts.
	ErrTargetUnreachable = serrors.NewKind("TARGET_UNREACHABLE")
)
