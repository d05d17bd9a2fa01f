package services

import (
	"strings"

	"crm-service/models"
)

// Committed-amount thresholds for the priority tiers. Both bounds are
// inclusive at the lower end of their tier.
const (
	priorityHighMin   = 10_000_000
	priorityMediumMin = 1_000_000
)

// DerivePriority maps a committed amount onto a priority tier. A record
// with no committed amount gets no priority.
func DerivePriority(committed *float64) *string {
	if committed == nil {
		return nil
	}
	switch {
	case *committed >= priorityHighMin:
		return strPtr(models.PriorityHigh)
	case *committed >= priorityMediumMin:
		return strPtr(models.PriorityMedium)
	default:
		return strPtr(models.PriorityLow)
	}
}

// DeriveStatus maps a free-text project type onto a lifecycle status.
// Anything unrecognized, including an absent type, defaults to Active.
func DeriveStatus(projectType *string) string {
	if projectType != nil {
		pt := strings.ToLower(*projectType)
		switch {
		case strings.Contains(pt, "active"):
			return models.StatusActive
		case strings.Contains(pt, "planned"):
			return models.StatusPlanning
		case strings.Contains(pt, "completed"):
			return models.StatusCompleted
		}
	}
	return models.StatusActive
}

// DeriveAccountType classifies an account as Customer when any contact
// detail is present, Prospect otherwise.
func DeriveAccountType(email, phone *string) string {
	if email != nil || phone != nil {
		return models.AccountTypeCustomer
	}
	return models.AccountTypeProspect
}

// SynthesizeDescription joins the record's descriptive fields as labeled
// lines in a fixed order. The spreadsheet-path duplicate check substring-
// matches against these labels, so the format is load-bearing.
func SynthesizeDescription(rec *models.ProjectRecord) *string {
	var parts []string
	if rec.Description != nil {
		parts = append(parts, *rec.Description)
	}
	appendLabeled(&parts, "Department", rec.Department)
	appendLabeled(&parts, "Region", rec.Region)
	appendLabeled(&parts, "Country", rec.Country)
	appendLabeled(&parts, "Framework", rec.Framework)
	appendLabeled(&parts, "NAICS Sector", rec.NAICSSector)
	appendLabeled(&parts, "Profile URL", rec.ProfileURL)

	if len(parts) == 0 {
		return nil
	}
	return strPtr(strings.Join(parts, "\n\n"))
}

func appendLabeled(parts *[]string, label string, value *string) {
	if value != nil {
		*parts = append(*parts, label+": "+*value)
	}
}

func strPtr(s string) *string {
	return &s
}
