package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carebridge/hcms-server/internal/models"
)

func TestCategoryValid(t *testing.T) {
	assert.True(t, models.CategoryComplaint.Valid())
	assert.True(t, models.CategoryRequest.Valid())
	assert.True(t, models.CategorySuggestion.Valid())

	assert.False(t, models.Category("").Valid())
	assert.False(t, models.Category("Complaint").Valid())
	assert.False(t, models.Category("grievance").Valid())
}

func TestStatusBucket(t *testing.T) {
	assert.Equal(t, models.BucketPending, models.StatusOpen.Bucket())
	assert.Equal(t, models.BucketSolved, models.StatusResolved.Bucket())

	// Statuses written outside the API must classify without surprises.
	for _, s := range []models.Status{"", "Escalated", "open", "RESOLVED", "In Progress"} {
		assert.Equal(t, models.BucketUnsolved, s.Bucket(), "status %q", s)
	}
}
