package services

import "strings"

// CanonicalField names one normalized column of the project import schema.
type CanonicalField string

const (
	FieldName          CanonicalField = "name"
	FieldFiscalYear    CanonicalField = "fiscal_year"
	FieldProjectNumber CanonicalField = "project_number"
	FieldProjectType   CanonicalField = "project_type"
	FieldRegion        CanonicalField = "region"
	FieldCountry       CanonicalField = "country"
	FieldDepartment    CanonicalField = "department"
	FieldFramework     CanonicalField = "framework"
	FieldCommitted     CanonicalField = "committed"
	FieldNAICSSector   CanonicalField = "naics_sector"
	FieldDescription   CanonicalField = "description"
	FieldProfileURL    CanonicalField = "profile_url"
)

// projectHeaderCandidates lists, per canonical field, the header substrings
// accepted for that field in priority order. Spreadsheets from different
// sources label the same column differently, so resolution is substring
// containment over the lowercased, trimmed header rather than equality.
var projectHeaderCandidates = map[CanonicalField][]string{
	FieldName:          {"project name", "name"},
	FieldFiscalYear:    {"fiscal year"},
	FieldProjectNumber: {"project number"},
	FieldProjectType:   {"project type"},
	FieldRegion:        {"region"},
	FieldCountry:       {"country"},
	FieldDepartment:    {"department"},
	FieldFramework:     {"framework"},
	FieldCommitted:     {"committed"},
	FieldNAICSSector:   {"naics sector", "sector"},
	FieldDescription:   {"project description", "description"},
	FieldProfileURL:    {"project profile url", "profile url"},
}

// ResolveHeaders maps each canonical field to the index of the first header
// containing one of its candidate substrings, trying candidates in priority
// order. Fields resolve independently; a field with no matching header is
// simply absent from the result. Pure function of its inputs.
func ResolveHeaders(headers []string, candidates map[CanonicalField][]string) map[CanonicalField]int {
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}

	resolved := make(map[CanonicalField]int, len(candidates))
	for field, cands := range candidates {
		for _, cand := range cands {
			idx := -1
			for i, h := range lowered {
				if strings.Contains(h, cand) {
					idx = i
					break
				}
			}
			if idx >= 0 {
				resolved[field] = idx
				break
			}
		}
	}
	return resolved
}
