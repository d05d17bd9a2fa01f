package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crm-service/models"
	"crm-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InsertOutcome is the per-row result of the dedup-then-insert sequence.
type InsertOutcome int

const (
	OutcomeInserted InsertOutcome = iota
	OutcomeSkipped
)

// ImportEventPublisher publishes a summary event after a completed batch.
type ImportEventPublisher interface {
	PublishImportEvent(ctx context.Context, event models.ImportEvent) error
}

// ImportService drives batches of raw rows through header resolution,
// normalization, derived-field computation, dedup and insert. Rows are
// processed sequentially; the check-then-insert sequence is not atomic
// against concurrent batches importing the same logical record.
type ImportService struct {
	repo      repository.ImportRepository
	reader    ExcelReader
	publisher ImportEventPublisher
	logger    *zap.Logger
}

func NewImportService(repo repository.ImportRepository, publisher ImportEventPublisher, logger *zap.Logger) *ImportService {
	return &ImportService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// ImportExcel imports project rows from a workbook sheet. A workbook that
// cannot be read aborts the whole operation; row-level failures are recorded
// and the batch continues.
func (s *ImportService) ImportExcel(ctx context.Context, filePath, sheetName string) (*models.ImportResponse, error) {
	records, err := s.readProjectRecords(filePath, sheetName)
	if err != nil {
		return nil, err
	}

	var errs []string
	inserted := 0
	skipped := 0

	for i, rec := range records {
		outcome, err := s.importSheetProject(ctx, rec)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("Row %d: %v", i+1, err))
		case outcome == OutcomeInserted:
			inserted++
		default:
			skipped++
		}
	}

	s.publishEvent(ctx, models.EntityProjects.String(), "excel-import", inserted, skipped, len(errs))

	return &models.ImportResponse{
		Success:               len(errs) == 0 || inserted > 0,
		Message:               importMessage(inserted, len(records), skipped, len(errs)),
		RecordsProcessed:      intPtr(len(records)),
		RecordsInserted:       intPtr(inserted),
		RecordsSkipped:        intPtr(skipped),
		DuplicateCheckColumns: strPtr(checkNameRegionDept),
		Errors:                errorList(errs),
	}, nil
}

// PreviewExcel parses a workbook sheet without touching the store, returning
// at most limit records.
func (s *ImportService) PreviewExcel(ctx context.Context, filePath, sheetName string, limit int) (*models.ExcelPreview, error) {
	records, err := s.readProjectRecords(filePath, sheetName)
	if err != nil {
		return nil, err
	}

	preview := make([]models.ProjectRecord, 0, limit)
	for _, rec := range records {
		if len(preview) == limit {
			break
		}
		preview = append(preview, *rec)
	}

	return &models.ExcelPreview{
		Success:      true,
		Message:      fmt.Sprintf("Preview of %d records (showing first %d)", len(records), limit),
		TotalRecords: len(records),
		Preview:      preview,
	}, nil
}

// SheetNames lists the worksheets of a workbook.
func (s *ImportService) SheetNames(filePath string) ([]string, error) {
	return s.reader.SheetNames(filePath)
}

func (s *ImportService) readProjectRecords(filePath, sheetName string) ([]*models.ProjectRecord, error) {
	sheet, err := s.reader.ReadSheet(filePath, sheetName)
	if err != nil {
		return nil, err
	}

	resolved := ResolveHeaders(sheet.Headers, projectHeaderCandidates)
	var records []*models.ProjectRecord
	for _, row := range sheet.Rows {
		if rec, ok := BuildProjectRecord(resolved, row); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (s *ImportService) importSheetProject(ctx context.Context, rec *models.ProjectRecord) (InsertOutcome, error) {
	check, err := s.checkProjectSheetDuplicate(ctx, rec)
	if err != nil {
		return 0, err
	}
	if check.IsDuplicate {
		s.logger.Info("skipping duplicate project",
			zap.String("name", rec.Name),
			zap.Stringp("region", rec.Region),
			zap.Stringp("department", rec.Department),
		)
		return OutcomeSkipped, nil
	}

	now := time.Now().UTC()
	project := &models.Project{
		ID:             uuid.New(),
		Name:           rec.Name,
		Description:    SynthesizeDescription(rec),
		Status:         strPtr(DeriveStatus(rec.ProjectType)),
		Priority:       DerivePriority(rec.Committed),
		DateEntered:    now,
		DateModified:   now,
		CreatedBy:      "excel-import",
		ModifiedUserID: "excel-import",
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return 0, err
	}
	return OutcomeInserted, nil
}

// ImportRows imports already-parsed JSON rows into the given entity's table.
// Row failures never abort the batch; each is recorded with its 1-based
// index. The reported duplicate-check columns are the first ones a row
// actually used, falling back to the entity default for empty batches.
func (s *ImportService) ImportRows(ctx context.Context, entity models.EntityType, rows []map[string]any, source string) *models.DataImportResponse {
	var errs []string
	imported := 0
	skipped := 0
	var fieldsUsed *string

	for i, row := range rows {
		var outcome InsertOutcome
		var check DuplicateCheck
		var err error

		switch entity {
		case models.EntityAccounts:
			outcome, check, err = s.importAccountRow(ctx, row)
		case models.EntityProjects:
			outcome, check, err = s.importProjectRow(ctx, row)
		}

		if err != nil {
			msg := fmt.Sprintf("Row %d: %v", i+1, err)
			s.logger.Warn("import row failed", zap.String("table", entity.String()), zap.String("error", msg))
			errs = append(errs, msg)
			continue
		}
		if fieldsUsed == nil {
			fieldsUsed = strPtr(check.FieldsUsed)
		}
		if outcome == OutcomeInserted {
			imported++
		} else {
			skipped++
		}
	}

	if fieldsUsed == nil {
		fieldsUsed = strPtr(defaultDuplicateCheckColumns(entity))
	}

	success := len(errs) == 0 || imported > 0
	var message string
	if success {
		message = dataImportMessage(imported, len(rows), skipped, len(errs), entity.String())
	} else {
		message = fmt.Sprintf("Failed to import data into %s", entity)
	}

	s.publishEvent(ctx, entity.String(), source, imported, skipped, len(errs))

	return &models.DataImportResponse{
		Success:               success,
		Message:               message,
		ImportedCount:         intPtr(imported),
		SkippedCount:          intPtr(skipped),
		DuplicateCheckColumns: fieldsUsed,
		Errors:                errorList(errs),
	}
}

func (s *ImportService) importAccountRow(ctx context.Context, row map[string]any) (InsertOutcome, DuplicateCheck, error) {
	name := "Unknown"
	if v := stringField(row, "Name", "name"); v != nil {
		name = *v
	}
	email := stringField(row, "Email", "email")
	phone := stringField(row, "Phone", "phone")
	website := stringField(row, "Website", "website")
	industry := stringField(row, "Industry", "industry", "Sector", "sector")

	check, err := s.checkAccountDuplicate(ctx, name, industry)
	if err != nil {
		return 0, DuplicateCheck{}, err
	}
	if check.IsDuplicate {
		s.logger.Info("skipping duplicate account",
			zap.String("name", name),
			zap.Stringp("industry", industry),
		)
		return OutcomeSkipped, check, nil
	}

	now := time.Now().UTC()
	account := &models.Account{
		ID:             uuid.New(),
		Name:           name,
		AccountType:    strPtr(DeriveAccountType(email, phone)),
		Industry:       industry,
		PhoneOffice:    phone,
		Website:        website,
		DateEntered:    now,
		DateModified:   now,
		CreatedBy:      "csv-import",
		ModifiedUserID: "csv-import",
	}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return 0, DuplicateCheck{}, err
	}
	return OutcomeInserted, check, nil
}

func (s *ImportService) importProjectRow(ctx context.Context, row map[string]any) (InsertOutcome, DuplicateCheck, error) {
	rawName := "Unknown"
	if v := stringField(row, "project_name", "name"); v != nil {
		rawName = *v
	}
	name := TruncateName(rawName)
	description := stringField(row, "project_description", "description")

	check, err := s.checkProjectNameDuplicate(ctx, name)
	if err != nil {
		return 0, DuplicateCheck{}, err
	}
	if check.IsDuplicate {
		s.logger.Info("skipping duplicate project", zap.String("name", name))
		return OutcomeSkipped, check, nil
	}

	now := time.Now().UTC()
	project := &models.Project{
		ID:             uuid.New(),
		Name:           name,
		Description:    description,
		Status:         strPtr(models.StatusActive),
		DateEntered:    now,
		DateModified:   now,
		CreatedBy:      "json-import",
		ModifiedUserID: "json-import",
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return 0, DuplicateCheck{}, err
	}
	return OutcomeInserted, check, nil
}

// ImportDemocracyLab imports projects from the external DemocracyLab feed,
// deduplicating on name alone.
func (s *ImportService) ImportDemocracyLab(ctx context.Context, projects []models.DemocracyLabProject) *models.ImportResponse {
	var errs []string
	inserted := 0
	skipped := 0

	for i, p := range projects {
		outcome, err := s.importDemocracyLabProject(ctx, p)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("Row %d: %v", i+1, err))
		case outcome == OutcomeInserted:
			inserted++
		default:
			skipped++
		}
	}

	s.publishEvent(ctx, models.EntityProjects.String(), "democracylab-import", inserted, skipped, len(errs))

	return &models.ImportResponse{
		Success:               len(errs) == 0 || inserted > 0,
		Message:               importMessage(inserted, len(projects), skipped, len(errs)),
		RecordsProcessed:      intPtr(len(projects)),
		RecordsInserted:       intPtr(inserted),
		RecordsSkipped:        intPtr(skipped),
		DuplicateCheckColumns: strPtr(checkNameOnly),
		Errors:                errorList(errs),
	}
}

func (s *ImportService) importDemocracyLabProject(ctx context.Context, p models.DemocracyLabProject) (InsertOutcome, error) {
	name := TruncateName(p.Name)

	check, err := s.checkProjectNameDuplicate(ctx, name)
	if err != nil {
		return 0, err
	}
	if check.IsDuplicate {
		s.logger.Info("skipping duplicate project", zap.String("name", name))
		return OutcomeSkipped, nil
	}

	var parts []string
	if p.Description != nil {
		parts = append(parts, *p.Description)
	}
	appendLabeled(&parts, "Project URL", p.URL)
	var description *string
	if len(parts) > 0 {
		description = strPtr(strings.Join(parts, "\n\n"))
	}

	now := time.Now().UTC()
	project := &models.Project{
		ID:             uuid.New(),
		Name:           name,
		Description:    description,
		Status:         strPtr(models.StatusActive),
		DateEntered:    now,
		DateModified:   now,
		CreatedBy:      "democracylab-import",
		ModifiedUserID: "democracylab-import",
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return 0, err
	}
	return OutcomeInserted, nil
}

func (s *ImportService) publishEvent(ctx context.Context, table, source string, imported, skipped, failed int) {
	if s.publisher == nil {
		return
	}
	event := models.ImportEvent{
		Table:     table,
		Source:    source,
		Imported:  imported,
		Skipped:   skipped,
		Failed:    failed,
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.PublishImportEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish import event", zap.String("table", table), zap.Error(err))
	}
}

func importMessage(inserted, total, skipped, failed int) string {
	if failed > 0 {
		return fmt.Sprintf("Imported %d of %d records with %d errors, skipped %d duplicates",
			inserted, total, failed, skipped)
	}
	if skipped > 0 {
		return fmt.Sprintf("Successfully imported %d records, skipped %d duplicates", inserted, skipped)
	}
	return fmt.Sprintf("Successfully imported %d records", inserted)
}

func dataImportMessage(imported, total, skipped, failed int, table string) string {
	if failed > 0 {
		return fmt.Sprintf("Imported %d of %d records into %s with %d errors, skipped %d duplicates",
			imported, total, table, failed, skipped)
	}
	if skipped > 0 {
		return fmt.Sprintf("Successfully imported %d records into %s, skipped %d duplicates",
			imported, table, skipped)
	}
	return fmt.Sprintf("Successfully imported %d records into %s", imported, table)
}

// stringField returns the first string-typed value found under any of the
// given keys. Non-string values are ignored, matching the admin UI contract.
func stringField(row map[string]any, keys ...string) *string {
	for _, k := range keys {
		if v, ok := row[k]; ok {
			if s, ok := v.(string); ok {
				return &s
			}
		}
	}
	return nil
}

func errorList(errs []string) []string {
	if errs == nil {
		return []string{}
	}
	return errs
}

func intPtr(v int) *int {
	return &v
}
