package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive    = "Active"
	StatusPlanning  = "Planning"
	StatusCompleted = "Completed"

	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"

	AccountTypeCustomer = "Customer"
	AccountTypeProspect = "Prospect"
)

// Project is a stored CRM project row. Name is capped at 50 characters by
// the column; longer incoming names are truncated before insert.
type Project struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string    `json:"name" gorm:"size:50;index"`
	Description    *string   `json:"description,omitempty"`
	Status         *string   `json:"status,omitempty" gorm:"size:25"`
	Priority       *string   `json:"priority,omitempty" gorm:"size:25"`
	DateEntered    time.Time `json:"date_entered"`
	DateModified   time.Time `json:"date_modified"`
	CreatedBy      string    `json:"created_by" gorm:"size:36"`
	ModifiedUserID string    `json:"modified_user_id" gorm:"size:36"`
}

// Account is a stored CRM account row. Email and phone are inspected during
// import to classify the account but only the phone is persisted; the
// accounts table carries no email column.
type Account struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string    `json:"name" gorm:"size:150;index"`
	AccountType    *string   `json:"account_type,omitempty" gorm:"size:25"`
	Industry       *string   `json:"industry,omitempty" gorm:"size:50"`
	PhoneOffice    *string   `json:"phone_office,omitempty" gorm:"size:100"`
	Website        *string   `json:"website,omitempty" gorm:"size:255"`
	DateEntered    time.Time `json:"date_entered"`
	DateModified   time.Time `json:"date_modified"`
	CreatedBy      string    `json:"created_by" gorm:"size:36"`
	ModifiedUserID string    `json:"modified_user_id" gorm:"size:36"`
}
