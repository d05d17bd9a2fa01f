package services

import (
	"context"
	"strconv"

	"crm-service/models"

	"go.uber.org/zap"
)

// MaxRecommendations caps how many projects a single request returns.
const MaxRecommendations = 5

// PreferenceCriteria lists acceptable sector and department values for one
// user preference label. A project satisfies the criteria when its sector is
// in NAICSSectors or its department is in Departments.
type PreferenceCriteria struct {
	NAICSSectors []string
	Departments  []string
}

// preferenceCriteria is the static preference-to-filter table. Loaded once,
// never mutated.
var preferenceCriteria = map[string]PreferenceCriteria{
	"Agriculture":                  {NAICSSectors: []string{"Agriculture"}, Departments: []string{"Technical Assistance"}},
	"Education":                    {NAICSSectors: []string{"Educational Services"}, Departments: []string{"Technical Assistance"}},
	"Healthcare Access":            {NAICSSectors: []string{"Health Care"}, Departments: []string{"Equity Investments"}},
	"Financial Inclusion":          {NAICSSectors: []string{"Finance and Insurance"}, Departments: []string{"Investment Funds", "Finance"}},
	"Infrastructure Development":   {NAICSSectors: []string{"Utilities"}, Departments: []string{"Finance"}},
	"Technology Innovation":        {NAICSSectors: []string{"Information"}, Departments: []string{"Investment Funds"}},
	"Small Business Support":       {NAICSSectors: []string{"Finance and Insurance"}, Departments: []string{"Investment Funds"}},
	"Rural Development":            {Departments: []string{"Technical Assistance"}},
	"Environmental Sustainability": {NAICSSectors: []string{"Utilities"}, Departments: []string{"Finance"}},
	"Renewable Energy":             {NAICSSectors: []string{"Utilities"}, Departments: []string{"Finance"}},
	"Water & Sanitation":           {NAICSSectors: []string{"Utilities"}, Departments: []string{"Finance"}},
	"Digital Inclusion":            {NAICSSectors: []string{"Information", "Educational Services"}, Departments: []string{"Technical Assistance"}},
	"Economic Growth":              {NAICSSectors: []string{"Finance and Insurance"}, Departments: []string{"Investment Funds"}},
	"Food Security":                {NAICSSectors: []string{"Agriculture"}, Departments: []string{"Technical Assistance"}},
}

// RecommendationService matches the configured project workbook against
// user preference labels.
type RecommendationService struct {
	reader   ExcelReader
	filePath string
	logger   *zap.Logger
}

func NewRecommendationService(filePath string, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		filePath: filePath,
		logger:   logger,
	}
}

// GetRecommendations loads the project workbook and returns the first
// MaxRecommendations projects matching any requested preference, in sheet
// order.
func (s *RecommendationService) GetRecommendations(ctx context.Context, preferences []string) ([]models.RecommendedProject, error) {
	projects, err := s.loadProjects()
	if err != nil {
		return nil, err
	}
	matched := MatchPreferences(preferences, projects)
	s.logger.Info("recommendations computed",
		zap.Int("candidates", len(projects)),
		zap.Int("matched", len(matched)),
		zap.Strings("preferences", preferences),
	)
	return matched, nil
}

func (s *RecommendationService) loadProjects() ([]models.RecommendedProject, error) {
	sheet, err := s.reader.ReadSheet(s.filePath, "")
	if err != nil {
		return nil, err
	}

	resolved := ResolveHeaders(sheet.Headers, projectHeaderCandidates)
	var projects []models.RecommendedProject
	for i, row := range sheet.Rows {
		get := func(f CanonicalField) string {
			idx, ok := resolved[f]
			if !ok || idx >= len(row) {
				return ""
			}
			if v := NormalizeCell(row[idx]); v != nil {
				return *v
			}
			return ""
		}

		name := get(FieldName)
		if name == "" {
			continue
		}

		var committed float64
		if raw := get(FieldCommitted); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				committed = v
			}
		}

		projects = append(projects, models.RecommendedProject{
			ID:            i + 1,
			Name:          name,
			Description:   get(FieldDescription),
			Country:       get(FieldCountry),
			NAICSSector:   get(FieldNAICSSector),
			Committed:     committed,
			Department:    get(FieldDepartment),
			ProjectType:   get(FieldProjectType),
			Region:        get(FieldRegion),
			FiscalYear:    get(FieldFiscalYear),
			ProjectNumber: get(FieldProjectNumber),
			Framework:     get(FieldFramework),
			ProfileURL:    get(FieldProfileURL),
			Tags:          []string{},
		})
	}
	return projects, nil
}

// MatchPreferences filters projects against the static criteria table. Each
// project is included at most once, at its first matching preference, and
// the result keeps source order truncated to MaxRecommendations. Unknown
// preference labels contribute no matches. This is a filter, not a ranker.
func MatchPreferences(preferences []string, projects []models.RecommendedProject) []models.RecommendedProject {
	matched := make([]models.RecommendedProject, 0, MaxRecommendations)
	for _, project := range projects {
		if len(matched) == MaxRecommendations {
			break
		}
		for _, pref := range preferences {
			criteria, ok := preferenceCriteria[pref]
			if !ok {
				continue
			}
			if criteria.matches(project.NAICSSector, project.Department) {
				matched = append(matched, project)
				break
			}
		}
	}
	return matched
}

func (c PreferenceCriteria) matches(sector, department string) bool {
	return containsString(c.NAICSSectors, sector) || containsString(c.Departments, department)
}

func containsString(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
