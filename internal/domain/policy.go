package domain

import "time"

// PolicyStatus status of an insurance policy as stored by the system of record
type PolicyStatus string

const (
	PolicyStatusActive PolicyStatus = "attiva"
	PolicyStatusQuote  PolicyStatus = "preventivo"
)

// CustomerCategory classification of a caller
type CustomerCategory string

const (
	CategoryClient        CustomerCategory = "CLIENT"
	CategoryProspectGreen CustomerCategory = "PROSPECT GREEN"
	CategoryProspectRed   CustomerCategory = "PROSPECT RED"
)

// Policy is an externally owned insurance contract, read-only for this service
type Policy struct {
	Number string
	Status PolicyStatus
	Expiry time.Time
}

// Classify returns the caller category at the given moment:
// active policies are clients regardless of expiry, quotes are green prospects
// until they expire, everything else is a red prospect.
func (p *Policy) Classify(now time.Time) CustomerCategory {
	switch {
	case p.Status == PolicyStatusActive:
		return CategoryClient
	case p.Status == PolicyStatusQuote && p.Expiry.After(now):
		return CategoryProspectGreen
	default:
		return CategoryProspectRed
	}
}

// Prefix returns the first n characters of the policy number (fewer if shorter)
func (p *Policy) Prefix(n int) string {
	runes := []rune(p.Number)
	if len(runes) <= n {
		return p.Number
	}
	return string(runes[:n])
}
