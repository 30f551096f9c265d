package v1

import "github.com/Behyna/safetycheck/internal/model"

type TestSMSResponse struct {
	Success bool                 `json:"success"`
	Data    model.DispatchResult `json:"data"`
}

type EmergencyResponse struct {
	Success    bool                   `json:"success"`
	DispatchID string                 `json:"dispatchId"`
	Summary    SummaryResponse        `json:"summary"`
	Results    []model.DispatchResult `json:"results"`
}

type SummaryResponse struct {
	Total             int    `json:"total"`
	Sent              int    `json:"sent"`
	Failed            int    `json:"failed"`
	LocationAvailable bool   `json:"locationAvailable"`
	LocationReason    string `json:"locationReason,omitempty"`
}

func NewEmergencyResponse(summary model.DispatchSummary) EmergencyResponse {
	results := summary.Results
	if results == nil {
		results = []model.DispatchResult{}
	}

	return EmergencyResponse{
		Success:    summary.Success(),
		DispatchID: summary.DispatchID,
		Summary: SummaryResponse{
			Total:             summary.Total,
			Sent:              summary.Sent,
			Failed:            summary.Failed,
			LocationAvailable: summary.LocationAvailable,
			LocationReason:    summary.LocationReason,
		},
		Results: results,
	}
}
