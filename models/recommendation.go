package models

// RecommendationRequest carries the user's declared preference labels.
type RecommendationRequest struct {
	Preferences []string `json:"preferences"`
}

// RecommendedProject mirrors the spreadsheet-facing JSON contract the admin
// UI renders. The capitalized keys match the workbook's column headers; the
// tags/starred/comment fields are user-facing and default to empty.
type RecommendedProject struct {
	ID            int      `json:"id"`
	Name          string   `json:"Project Name"`
	Description   string   `json:"Project Description"`
	Country       string   `json:"Country"`
	NAICSSector   string   `json:"NAICS Sector"`
	Committed     float64  `json:"Committed"`
	Department    string   `json:"Department"`
	ProjectType   string   `json:"Project Type"`
	Region        string   `json:"Region"`
	FiscalYear    string   `json:"Fiscal Year"`
	ProjectNumber string   `json:"Project Number"`
	Framework     string   `json:"Framework"`
	ProfileURL    string   `json:"Project Profile URL"`
	Tags          []string `json:"tags"`
	Starred       bool     `json:"starred"`
	Comment       string   `json:"comment"`
}
