package services

import (
	"strconv"

	"crm-service/models"
)

// maxProjectNameLen is the projects.name column width.
const maxProjectNameLen = 50

// TruncateName fits a name into the projects table's 50-character column,
// replacing the tail of longer names with "...".
func TruncateName(name string) string {
	if len(name) <= maxProjectNameLen {
		return name
	}
	return name[:maxProjectNameLen-3] + "..."
}

// BuildProjectRecord assembles a canonical record from one sheet row using
// the precomputed header resolution. Returns false when the row has no
// usable project name; such rows are dropped without error. A committed
// amount that fails to parse is left absent rather than failing the row.
func BuildProjectRecord(resolved map[CanonicalField]int, row []Cell) (*models.ProjectRecord, bool) {
	get := func(f CanonicalField) *string {
		idx, ok := resolved[f]
		if !ok || idx >= len(row) {
			return nil
		}
		return NormalizeCell(row[idx])
	}

	name := get(FieldName)
	if name == nil {
		return nil, false
	}

	rec := &models.ProjectRecord{
		Name:          TruncateName(*name),
		FiscalYear:    get(FieldFiscalYear),
		ProjectNumber: get(FieldProjectNumber),
		ProjectType:   get(FieldProjectType),
		Region:        get(FieldRegion),
		Country:       get(FieldCountry),
		Department:    get(FieldDepartment),
		Framework:     get(FieldFramework),
		NAICSSector:   get(FieldNAICSSector),
		Description:   get(FieldDescription),
		ProfileURL:    get(FieldProfileURL),
	}

	if raw := get(FieldCommitted); raw != nil {
		if v, err := strconv.ParseFloat(*raw, 64); err == nil {
			rec.Committed = &v
		}
	}

	return rec, true
}
