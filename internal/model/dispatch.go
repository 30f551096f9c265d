package model

type DispatchStatus string

const (
	DispatchStatusSuccess DispatchStatus = "success"
	DispatchStatusFailed  DispatchStatus = "failed"
)

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// DispatchResult is the outcome of one send attempt to one contact.
type DispatchResult struct {
	Contact   string         `json:"contact"`
	Phone     string         `json:"phone"`
	Status    DispatchStatus `json:"status"`
	MessageID string         `json:"messageId,omitempty"`
	Cost      *float64       `json:"cost,omitempty"`
	Error     string         `json:"error,omitempty"`
}

func (r DispatchResult) Succeeded() bool {
	return r.Status == DispatchStatusSuccess
}

// DispatchSummary aggregates a dispatch. Results are kept in the order the
// contacts were supplied, and Total always equals Sent+Failed.
type DispatchSummary struct {
	DispatchID        string
	Total             int
	Sent              int
	Failed            int
	LocationAvailable bool
	LocationReason    string
	Results           []DispatchResult
}

// Success reports whether at least one contact was reached.
func (s DispatchSummary) Success() bool {
	return s.Sent > 0
}

func NewDispatchSummary(dispatchID string, results []DispatchResult, locationAvailable bool, locationReason string) DispatchSummary {
	summary := DispatchSummary{
		DispatchID:        dispatchID,
		Total:             len(results),
		LocationAvailable: locationAvailable,
		Results:           results,
	}
	if !locationAvailable {
		summary.LocationReason = locationReason
	}

	for _, r := range results {
		if r.Succeeded() {
			summary.Sent++
		} else {
			summary.Failed++
		}
	}

	return summary
}
