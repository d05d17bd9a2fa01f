package models_test

import (
	"testing"

	"crm-service/models"

	"github.com/stretchr/testify/assert"
)

func TestParseEntityType(t *testing.T) {
	entity, err := models.ParseEntityType("projects")
	assert.NoError(t, err)
	assert.Equal(t, models.EntityProjects, entity)

	entity, err = models.ParseEntityType("accounts")
	assert.NoError(t, err)
	assert.Equal(t, models.EntityAccounts, entity)
}

func TestParseEntityType_Unsupported(t *testing.T) {
	_, err := models.ParseEntityType("users")
	assert.Error(t, err)
	assert.EqualError(t, err, "unsupported table: users")

	// Exact match only, no case folding.
	_, err = models.ParseEntityType("Projects")
	assert.Error(t, err)
}

func TestEntityTypeString(t *testing.T) {
	assert.Equal(t, "projects", models.EntityProjects.String())
	assert.Equal(t, "accounts", models.EntityAccounts.String())
}
