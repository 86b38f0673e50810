package app

import "bmicalc/internal/domain"

// Report is the serialisable form of an assessment shared by the HTTP API
// and the CLI's JSON output.
type Report struct {
	BMI            float64            `json:"bmi"`
	Category       domain.Category    `json:"category"`
	Label          string             `json:"label"`
	Healthy        bool               `json:"healthy"`
	Status         string             `json:"status"`
	Severity       domain.Severity    `json:"severity"`
	Recommendation string             `json:"recommendation"`
	IdealWeight    domain.WeightRange `json:"idealWeight"`
	Summary        string             `json:"summary"`
	Profile        domain.Profile     `json:"profile"`
}

// NewReport flattens a into a Report.
func NewReport(a *domain.Assessment) Report {
	c := a.Category()
	return Report{
		BMI:            a.BMI(),
		Category:       c,
		Label:          c.Label(),
		Healthy:        a.Healthy(),
		Status:         a.Status(),
		Severity:       c.Severity(),
		Recommendation: c.Recommendation(),
		IdealWeight:    a.IdealWeightRange(),
		Summary:        a.Summary(),
		Profile:        a.Profile(),
	}
}
