package services_test

import (
	"testing"

	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchConstitution(t *testing.T) {
	results, err := services.SearchConstitution("DIGNITY")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "article-25", results[0].ID)

	results, err = services.SearchConstitution("right")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = services.SearchConstitution("parliament")
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = services.SearchConstitution("   ")
	assert.True(t, services.IsValidation(err))
}
