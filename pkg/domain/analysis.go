package domain

import "time"

// Starvation is the coarse severity label summarizing how many high-authority
// link opportunities the target is missing out on.
type Starvation string

const (
	// StarvationMild indicates few high-authority gap domains were found.
	StarvationMild Starvation = "MILD"
	// StarvationModerate indicates a meaningful number of high-authority gaps.
	StarvationModerate Starvation = "MODERATE"
	// StarvationSevere indicates the target is missing a large number of
	// high-authority link opportunities relative to its competitors.
	StarvationSevere Starvation = "SEVERE"
)

// ReferringDomain is a single entry of a site's backlink profile as reported
// by the backlink data provider.
type ReferringDomain struct {
	// Domain is the canonical hostname of the referring site.
	Domain string `json:"domain"`
	// DomainRating is the provider's 0-100 authority metric for the domain.
	DomainRating float64 `json:"domainRating"`
	// Backlinks is the total number of links from this domain.
	Backlinks int `json:"backlinks"`
	// RefPages is the number of distinct pages on this domain that link out.
	RefPages int `json:"refPages"`
	// FirstSeen is when the provider first observed a link from this domain.
	FirstSeen time.Time `json:"firstSeen"`
	// LastVisited is when the provider last crawled a linking page.
	LastVisited time.Time `json:"lastVisited"`
}

// Competitor describes one competing site included in an analysis.
type Competitor struct {
	// Domain is the canonical hostname of the competitor.
	Domain string `json:"domain"`
	// CommonKeywords is the number of keywords shared with the target, used
	// as a proxy for topical closeness.
	CommonKeywords int `json:"commonKeywords"`
	// DomainRating is the provider's 0-100 authority metric.
	DomainRating float64 `json:"domainRating"`
	// OrganicKeywords is the competitor's total ranking keyword count.
	OrganicKeywords int `json:"organicKeywords"`
	// OrganicTraffic is the competitor's estimated monthly organic traffic.
	OrganicTraffic int `json:"organicTraffic"`
	// Manual marks competitors supplied by the caller rather than discovered.
	Manual bool `json:"manual"`
}

// GapDomain is a domain that links to at least two analyzed competitors but
// not to the target, together with the authority metadata of the domain and
// its relevance score.
type GapDomain struct {
	Domain       string    `json:"domain"`
	DomainRating float64   `json:"domainRating"`
	Backlinks    int       `json:"backlinks"`
	RefPages     int       `json:"refPages"`
	FirstSeen    time.Time `json:"firstSeen"`
	LastVisited  time.Time `json:"lastVisited"`

	// CompetitorsLinkedCount is always equal to len(CompetitorsLinked).
	CompetitorsLinkedCount int `json:"competitorsLinkedCount"`
	// CompetitorsLinked lists the competitor domains this domain links to.
	CompetitorsLinked []string `json:"competitorsLinked"`

	// ThreadResonance is the 0-100 score estimating the topical alignment and
	// authority value of acquiring a link from this domain.
	ThreadResonance int `json:"threadResonance"`
}

// AnalysisResult is the full outcome of one gap analysis run.
type AnalysisResult struct {
	// UserDomain is the canonical hostname of the analyzed target.
	UserDomain string `json:"userDomain"`
	// Competitors lists the competitors the analysis ran against.
	Competitors []Competitor `json:"competitors"`
	// GapDomains is sorted descending by ThreadResonance.
	GapDomains []GapDomain `json:"gapDomains"`

	// TotalGaps is len(GapDomains).
	TotalGaps int `json:"totalGaps"`
	// HighAuthorityGaps counts gap domains with a domain rating of 50 or more.
	HighAuthorityGaps int `json:"highAuthorityGaps"`
	// ThreadStarvation is the severity classification of the gap list.
	ThreadStarvation Starvation `json:"threadStarvation"`

	// CompetitorsRequested is how many competitors the analysis set out to
	// fetch profiles for; CompetitorsAnalyzed is how many fetches succeeded.
	// The two differ when a competitor's profile fetch failed and the
	// competitor was degraded to an empty profile.
	CompetitorsRequested int `json:"competitorsRequested"`
	CompetitorsAnalyzed  int `json:"competitorsAnalyzed"`

	// AnalyzedAt is when the analysis completed.
	AnalyzedAt time.Time `json:"analyzedAt"`
	// ElapsedSeconds is the wall-clock duration of the run.
	ElapsedSeconds float64 `json:"elapsedSeconds"`
}
