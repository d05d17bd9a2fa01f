package models

import "time"

// ProjectRecord is the canonical, layout-independent form of one imported
// project row. Optional fields are nil when absent from the source.
type ProjectRecord struct {
	FiscalYear    *string  `json:"fiscal_year"`
	ProjectNumber *string  `json:"project_number"`
	ProjectType   *string  `json:"project_type"`
	Region        *string  `json:"region"`
	Country       *string  `json:"country"`
	Department    *string  `json:"department"`
	Framework     *string  `json:"framework"`
	Name          string   `json:"project_name"`
	Committed     *float64 `json:"committed"`
	NAICSSector   *string  `json:"naics_sector"`
	Description   *string  `json:"project_description"`
	ProfileURL    *string  `json:"project_profile_url"`
}

// ImportRequest asks for a workbook on the server filesystem to be imported.
type ImportRequest struct {
	FilePath  string `json:"file_path" validate:"required"`
	SheetName string `json:"sheet_name"`
}

// ImportResponse is the aggregate report for the spreadsheet import paths.
type ImportResponse struct {
	Success               bool     `json:"success"`
	Message               string   `json:"message"`
	RecordsProcessed      *int     `json:"records_processed"`
	RecordsInserted       *int     `json:"records_inserted"`
	RecordsSkipped        *int     `json:"records_skipped"`
	DuplicateCheckColumns *string  `json:"duplicate_check_columns"`
	Errors                []string `json:"errors"`
}

// DataImportRequest carries already-parsed tabular rows from the admin UI.
type DataImportRequest struct {
	Data       []map[string]any `json:"data" validate:"required,min=1"`
	Headers    []string         `json:"headers"`
	TableName  string           `json:"table_name" validate:"required"`
	Source     string           `json:"source"`
	FileSource string           `json:"file_source"`
}

// DataImportResponse is the aggregate report for the JSON import path.
type DataImportResponse struct {
	Success               bool     `json:"success"`
	Message               string   `json:"message"`
	ImportedCount         *int     `json:"imported_count"`
	SkippedCount          *int     `json:"skipped_count"`
	DuplicateCheckColumns *string  `json:"duplicate_check_columns"`
	Errors                []string `json:"errors"`
}

// DemocracyLabProject is one project from the external DemocracyLab feed.
type DemocracyLabProject struct {
	Name        string  `json:"project_name"`
	Description *string `json:"project_description"`
	URL         *string `json:"project_url"`
}

// DemocracyLabImportRequest wraps the external feed payload.
type DemocracyLabImportRequest struct {
	Projects []DemocracyLabProject `json:"projects" validate:"required"`
}

// ExcelPreview is the non-mutating parse result for the preview endpoint.
type ExcelPreview struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	TotalRecords int             `json:"total_records"`
	Preview      []ProjectRecord `json:"preview"`
}

// ImportEvent is published to Kafka after a batch completes.
type ImportEvent struct {
	Table     string    `json:"table"`
	Source    string    `json:"source"`
	Imported  int       `json:"imported"`
	Skipped   int       `json:"skipped"`
	Failed    int       `json:"failed"`
	Timestamp time.Time `json:"timestamp"`
}
