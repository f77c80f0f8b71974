package model

// Verdict classifies a trust score into a downstream-facing label.
type Verdict string

const (
	VerdictHighlyTrustworthy Verdict = "Highly Trustworthy"
	VerdictLikelyTrustworthy Verdict = "Likely Trustworthy"
	VerdictNotTrustworthy    Verdict = "Not Trustworthy"
)

// VerdictForScore derives the verdict label from a trust score.
// The verdict is always a pure function of the score; it is never set
// independently.
func VerdictForScore(score float64) Verdict {
	switch {
	case score > 0.8:
		return VerdictHighlyTrustworthy
	case score >= 0.5:
		return VerdictLikelyTrustworthy
	default:
		return VerdictNotTrustworthy
	}
}

// ClampScore bounds a trust score to [0, 1].
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// Assessment is the single output shape of a verification request.
// It carries either a verdict (TrustScore set) or an error
// (Error/Detail set), so downstream consumers need one code path.
// TrustScore is a pointer so a degraded result serializes the score as
// null rather than a misleading zero.
type Assessment struct {
	TrustScore         *float64  `json:"trust_score"`
	Verdict            Verdict   `json:"verdict,omitempty"`
	TrustedNews        string    `json:"trusted_news,omitempty"`
	CorrectInformation string    `json:"correct_information,omitempty"`
	Reasoning          string    `json:"reasoning,omitempty"`
	RetrievedCount     int       `json:"retrieved_count"`
	Error              ErrorKind `json:"error,omitempty"`
	Detail             string    `json:"detail,omitempty"`
}

// OK reports whether the assessment carries a verdict rather than an
// error.
func (a Assessment) OK() bool {
	return a.Error == ""
}
