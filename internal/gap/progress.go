package gap

// Stage identifies a phase of the analysis pipeline.
type Stage string

const (
	StageResolving    Stage = "RESOLVING_COMPETITORS"
	StageFetching     Stage = "FETCHING_PROFILES"
	StageIntersecting Stage = "COMPUTING_GAPS"
	StageScoring      Stage = "SCORING"
	StageDone         Stage = "DONE"
)

// Progress is a point-in-time progress event emitted during an analysis.
// Events flow over the request's channel from the worker to the caller, so
// concurrent analyses never share progress state.
type Progress struct {
	// Stage is the pipeline phase the analysis just entered or advanced in.
	Stage Stage
	// Site is the domain a fetch event refers to (empty for stage events).
	Site string
	// Completed and Total track fetch completion within StageFetching.
	Completed int
	Total     int
}

// notify delivers a progress event without blocking. Events to a full or
// unconsumed channel are dropped.
func notify(ch chan<- Progress, p Progress) {
	if ch == nil {
		return
	}
	select {
	case ch <- p:
	default:
	}
}
