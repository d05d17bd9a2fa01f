package controllers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Allowed workbook extensions for the file-path import endpoints.
var allowedExcelExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
}

// RequestValidator handles input validation for the import endpoints.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

// ValidateStruct runs tag-based validation on a bound request.
func (rv *RequestValidator) ValidateStruct(req any) error {
	if err := rv.validate.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// ValidateExcelPath rejects file paths that cannot be Excel workbooks
// before any filesystem access happens.
func (rv *RequestValidator) ValidateExcelPath(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !allowedExcelExtensions[ext] {
		return fmt.Errorf("invalid file type %q. Only Excel workbooks are allowed", ext)
	}
	return nil
}
