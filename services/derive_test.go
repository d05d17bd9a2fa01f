package services_test

import (
	"strings"
	"testing"

	"crm-service/models"
	"crm-service/services"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }

func TestDerivePriority_Boundaries(t *testing.T) {
	cases := []struct {
		committed float64
		want      string
	}{
		{999_999.99, models.PriorityLow},
		{1_000_000, models.PriorityMedium},
		{9_999_999.99, models.PriorityMedium},
		{10_000_000, models.PriorityHigh},
		{0, models.PriorityLow},
		{25_000_000, models.PriorityHigh},
	}
	for _, tc := range cases {
		got := services.DerivePriority(f64(tc.committed))
		assert.NotNil(t, got)
		assert.Equal(t, tc.want, *got, "committed=%v", tc.committed)
	}
}

func TestDerivePriority_AbsentCommitted(t *testing.T) {
	assert.Nil(t, services.DerivePriority(nil))
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		projectType *string
		want        string
	}{
		{str("Active Portfolio"), models.StatusActive},
		{str("PLANNED expansion"), models.StatusPlanning},
		{str("completed 2023"), models.StatusCompleted},
		{str("Equity Investment"), models.StatusActive},
		{nil, models.StatusActive},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, services.DeriveStatus(tc.projectType))
	}
}

func TestDeriveStatus_ActiveBeatsCompleted(t *testing.T) {
	// A type containing several keywords resolves in check order.
	assert.Equal(t, models.StatusActive, services.DeriveStatus(str("active, to be completed")))
}

func TestDeriveAccountType(t *testing.T) {
	assert.Equal(t, models.AccountTypeCustomer, services.DeriveAccountType(str("a@b.com"), nil))
	assert.Equal(t, models.AccountTypeCustomer, services.DeriveAccountType(nil, str("+1555")))
	assert.Equal(t, models.AccountTypeCustomer, services.DeriveAccountType(str("a@b.com"), str("+1555")))
	assert.Equal(t, models.AccountTypeProspect, services.DeriveAccountType(nil, nil))
}

func TestSynthesizeDescription_OrderAndLabels(t *testing.T) {
	rec := &models.ProjectRecord{
		Name:        "Solar Grid",
		Description: str("Utility-scale solar."),
		Department:  str("Finance"),
		Region:      str("Africa"),
		Country:     str("Kenya"),
		Framework:   str("2X Challenge"),
		NAICSSector: str("Utilities"),
		ProfileURL:  str("https://example.org/p/1"),
	}

	got := services.SynthesizeDescription(rec)
	assert.NotNil(t, got)

	want := strings.Join([]string{
		"Utility-scale solar.",
		"Department: Finance",
		"Region: Africa",
		"Country: Kenya",
		"Framework: 2X Challenge",
		"NAICS Sector: Utilities",
		"Profile URL: https://example.org/p/1",
	}, "\n\n")
	assert.Equal(t, want, *got)
}

func TestSynthesizeDescription_SkipsAbsentFields(t *testing.T) {
	rec := &models.ProjectRecord{
		Name:   "Solar Grid",
		Region: str("Africa"),
	}
	got := services.SynthesizeDescription(rec)
	assert.NotNil(t, got)
	assert.Equal(t, "Region: Africa", *got)
}

func TestSynthesizeDescription_AllAbsent(t *testing.T) {
	assert.Nil(t, services.SynthesizeDescription(&models.ProjectRecord{Name: "X"}))
}

func TestTruncateName(t *testing.T) {
	short := "Rural Electrification"
	assert.Equal(t, short, services.TruncateName(short))

	exact := strings.Repeat("a", 50)
	assert.Equal(t, exact, services.TruncateName(exact))

	long := strings.Repeat("a", 60)
	got := services.TruncateName(long)
	assert.Len(t, got, 50)
	assert.Equal(t, strings.Repeat("a", 47)+"...", got)
}

func TestBuildProjectRecord_NoNameDropsRow(t *testing.T) {
	resolved := map[services.CanonicalField]int{
		services.FieldName:   0,
		services.FieldRegion: 1,
	}
	row := []services.Cell{
		{Kind: services.CellString, Str: "   "},
		{Kind: services.CellString, Str: "Africa"},
	}

	rec, ok := services.BuildProjectRecord(resolved, row)
	assert.False(t, ok)
	assert.Nil(t, rec)
}

func TestBuildProjectRecord_UnparseableCommittedLeftAbsent(t *testing.T) {
	resolved := map[services.CanonicalField]int{
		services.FieldName:      0,
		services.FieldCommitted: 1,
	}
	row := []services.Cell{
		{Kind: services.CellString, Str: "Solar Grid"},
		{Kind: services.CellString, Str: "N/A"},
	}

	rec, ok := services.BuildProjectRecord(resolved, row)
	assert.True(t, ok)
	assert.Nil(t, rec.Committed)
	assert.Equal(t, "Solar Grid", rec.Name)
}

func TestBuildProjectRecord_ShortRow(t *testing.T) {
	resolved := map[services.CanonicalField]int{
		services.FieldName:   0,
		services.FieldRegion: 5,
	}
	row := []services.Cell{{Kind: services.CellString, Str: "Solar Grid"}}

	rec, ok := services.BuildProjectRecord(resolved, row)
	assert.True(t, ok)
	assert.Nil(t, rec.Region)
}

func TestBuildProjectRecord_NumericCommitted(t *testing.T) {
	resolved := map[services.CanonicalField]int{
		services.FieldName:      0,
		services.FieldCommitted: 1,
	}
	row := []services.Cell{
		{Kind: services.CellString, Str: "Solar Grid"},
		{Kind: services.CellNumber, Num: 2_500_000},
	}

	rec, ok := services.BuildProjectRecord(resolved, row)
	assert.True(t, ok)
	assert.NotNil(t, rec.Committed)
	assert.Equal(t, 2_500_000.0, *rec.Committed)
}
