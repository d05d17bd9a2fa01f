package services_test

import (
	"context"
	"fmt"
	"testing"

	"crm-service/models"
	"crm-service/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func project(id int, name, sector, department string) models.RecommendedProject {
	return models.RecommendedProject{
		ID:          id,
		Name:        name,
		NAICSSector: sector,
		Department:  department,
	}
}

func TestMatchPreferences_CapAndSourceOrder(t *testing.T) {
	var projects []models.RecommendedProject
	for i := 1; i <= 8; i++ {
		projects = append(projects, project(i, fmt.Sprintf("P%d", i), "Agriculture", ""))
	}

	matched := services.MatchPreferences([]string{"Agriculture"}, projects)

	assert.Len(t, matched, services.MaxRecommendations)
	for i, m := range matched {
		assert.Equal(t, i+1, m.ID)
	}
}

func TestMatchPreferences_UnknownLabelMatchesNothing(t *testing.T) {
	projects := []models.RecommendedProject{
		project(1, "P1", "Agriculture", ""),
	}

	matched := services.MatchPreferences([]string{"Space Exploration"}, projects)
	assert.Empty(t, matched)
}

func TestMatchPreferences_EmptyPreferences(t *testing.T) {
	projects := []models.RecommendedProject{
		project(1, "P1", "Agriculture", ""),
	}

	matched := services.MatchPreferences(nil, projects)
	assert.NotNil(t, matched)
	assert.Empty(t, matched)
}

func TestMatchPreferences_SectorOrDepartment(t *testing.T) {
	projects := []models.RecommendedProject{
		project(1, "By sector", "Health Care", "Finance"),
		project(2, "By department", "Mining", "Equity Investments"),
		project(3, "Neither", "Mining", "Finance"),
	}

	matched := services.MatchPreferences([]string{"Healthcare Access"}, projects)

	assert.Len(t, matched, 2)
	assert.Equal(t, "By sector", matched[0].Name)
	assert.Equal(t, "By department", matched[1].Name)
}

func TestMatchPreferences_DepartmentOnlyCriteria(t *testing.T) {
	// Rural Development carries no sector list at all.
	projects := []models.RecommendedProject{
		project(1, "TA project", "Mining", "Technical Assistance"),
		project(2, "Other", "Mining", "Finance"),
	}

	matched := services.MatchPreferences([]string{"Rural Development"}, projects)

	assert.Len(t, matched, 1)
	assert.Equal(t, "TA project", matched[0].Name)
}

func TestMatchPreferences_ProjectIncludedOnce(t *testing.T) {
	// Matches both preferences but must appear a single time.
	projects := []models.RecommendedProject{
		project(1, "Agri-school", "Agriculture", "Technical Assistance"),
	}

	matched := services.MatchPreferences([]string{"Agriculture", "Education"}, projects)
	assert.Len(t, matched, 1)
}

func TestMatchPreferences_ExactValueMatchOnly(t *testing.T) {
	projects := []models.RecommendedProject{
		project(1, "Close but no", "Agriculture and Forestry", ""),
	}

	matched := services.MatchPreferences([]string{"Agriculture"}, projects)
	assert.Empty(t, matched)
}

func TestGetRecommendations_FromWorkbook(t *testing.T) {
	path := writeTestWorkbook(t, [][]any{
		{"Project Name", "NAICS Sector", "Department", "Committed", "Country"},
		{"Clinic Network", "Health Care", "Equity Investments", 2_000_000, "Kenya"},
		{"Toll Road", "Utilities", "Finance", 30_000_000, "India"},
		{"", "Health Care", "Equity Investments", 1, "dropped"},
		{"Grain Storage", "Agriculture", "Technical Assistance", 750_000, "Ghana"},
	})

	svc := services.NewRecommendationService(path, zap.NewNop())

	got, err := svc.GetRecommendations(context.Background(), []string{"Healthcare Access", "Food Security"})
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Clinic Network", got[0].Name)
	assert.Equal(t, "Grain Storage", got[1].Name)
	assert.Equal(t, 2_000_000.0, got[0].Committed)
	assert.Equal(t, "Kenya", got[0].Country)
	assert.NotNil(t, got[0].Tags)
}

func TestGetRecommendations_MissingWorkbook(t *testing.T) {
	svc := services.NewRecommendationService("no-such-file.xlsx", zap.NewNop())

	got, err := svc.GetRecommendations(context.Background(), []string{"Agriculture"})
	assert.Error(t, err)
	assert.Nil(t, got)
}
