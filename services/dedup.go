package services

import (
	"context"

	"crm-service/models"
)

// DuplicateCheck reports the outcome of a store existence probe and which
// identity fields were compared, for caller display.
type DuplicateCheck struct {
	IsDuplicate bool
	FieldsUsed  string
}

const (
	checkNameOnly       = "Name"
	checkNameIndustry   = "Name + Industry"
	checkNameRegionDept = "Name + Region + Department"
)

// defaultDuplicateCheckColumns describes the identity fields an entity type
// would use when no row of a batch reached the duplicate check.
func defaultDuplicateCheckColumns(entity models.EntityType) string {
	switch entity {
	case models.EntityAccounts:
		return checkNameIndustry
	case models.EntityProjects:
		return checkNameRegionDept
	}
	return checkNameOnly
}

// checkProjectSheetDuplicate tests spreadsheet-imported projects against the
// legacy identity: name plus region/department substrings of the synthesized
// description.
func (s *ImportService) checkProjectSheetDuplicate(ctx context.Context, rec *models.ProjectRecord) (DuplicateCheck, error) {
	count, err := s.repo.CountProjectsByIdentity(ctx, rec.Name, rec.Region, rec.Department)
	if err != nil {
		return DuplicateCheck{}, err
	}
	return DuplicateCheck{IsDuplicate: count > 0, FieldsUsed: checkNameRegionDept}, nil
}

// checkProjectNameDuplicate tests JSON-imported projects on name alone.
func (s *ImportService) checkProjectNameDuplicate(ctx context.Context, name string) (DuplicateCheck, error) {
	count, err := s.repo.CountProjectsByName(ctx, name)
	if err != nil {
		return DuplicateCheck{}, err
	}
	return DuplicateCheck{IsDuplicate: count > 0, FieldsUsed: checkNameOnly}, nil
}

// checkAccountDuplicate tests name+industry when the incoming record carries
// an industry, falling back to name alone when it does not. Fallback to the
// coarser key is deliberate, never an error.
func (s *ImportService) checkAccountDuplicate(ctx context.Context, name string, industry *string) (DuplicateCheck, error) {
	if industry != nil {
		count, err := s.repo.CountAccountsByNameAndIndustry(ctx, name, *industry)
		if err != nil {
			return DuplicateCheck{}, err
		}
		return DuplicateCheck{IsDuplicate: count > 0, FieldsUsed: checkNameIndustry}, nil
	}
	count, err := s.repo.CountAccountsByName(ctx, name)
	if err != nil {
		return DuplicateCheck{}, err
	}
	return DuplicateCheck{IsDuplicate: count > 0, FieldsUsed: checkNameOnly}, nil
}
