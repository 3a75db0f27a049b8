package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/testutil"
	"github.com/localnerve/legalaid-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLegalDocumentDefaults(t *testing.T) {
	db := testutil.NewDB(t)

	doc, err := services.CreateLegalDocument(context.Background(), db, services.LegalDocumentInput{
		Title:    "Tenancy rights",
		Content:  "A landlord must give written notice before terminating a tenancy.",
		Category: models.CategoryProperty,
		Tags:     types.FlexList[string]{"tenancy", "housing"},
	})
	require.NoError(t, err)

	got, err := services.GetLegalDocument(context.Background(), db, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.DifficultyLevel)
	assert.Equal(t, "en", got.Language)
	assert.False(t, got.IsOfficial)
	assert.Nil(t, got.Summary)
	assert.Equal(t, models.StringList{"tenancy", "housing"}, got.Tags)
}

func TestCreateLegalDocumentWithoutTags(t *testing.T) {
	db := testutil.NewDB(t)

	doc, err := services.CreateLegalDocument(context.Background(), db, services.LegalDocumentInput{
		Title:    "Bail hearings",
		Content:  "An accused person may apply for bail at the first appearance.",
		Category: models.CategoryCriminal,
	})
	require.NoError(t, err)

	got, err := services.GetLegalDocument(context.Background(), db, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tags":[]`)
}

func TestCreateLegalDocumentValidation(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		in    services.LegalDocumentInput
		field string
	}{
		{"missing title", services.LegalDocumentInput{Content: "body", Category: models.CategoryCivil}, "title"},
		{"missing content", services.LegalDocumentInput{Title: "title", Category: models.CategoryCivil}, "content"},
		{"unknown category", services.LegalDocumentInput{Title: "title", Content: "body", Category: "tax"}, "category"},
		{"difficulty too high", services.LegalDocumentInput{Title: "title", Content: "body", Category: models.CategoryCivil, DifficultyLevel: 6}, "difficultyLevel"},
		{"difficulty negative", services.LegalDocumentInput{Title: "title", Content: "body", Category: models.CategoryCivil, DifficultyLevel: -1}, "difficultyLevel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.CreateLegalDocument(ctx, db, tt.in)
			var ve *services.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	docs, err := services.ListLegalDocuments(ctx, db, services.LegalDocumentFilter{})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestListLegalDocuments(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	bail := testutil.CreateLegalDocument(t, db, "Bail and bond terms", "An accused person is entitled to release on bond.", models.CategoryCriminal, base)
	lease := testutil.CreateLegalDocument(t, db, "Lease agreements", "A lease longer than two years must be registered.", models.CategoryProperty, base.Add(time.Hour))
	custody := testutil.CreateLegalDocument(t, db, "Child custody", "The court decides custody in the best interests of the child.", models.CategoryFamily, base.Add(2*time.Hour))
	arrest := testutil.CreateLegalDocument(t, db, "Rights on arrest", "An arrested person must be brought before a court within 24 hours.", models.CategoryCriminal, base.Add(3*time.Hour))

	tests := []struct {
		name   string
		filter services.LegalDocumentFilter
		want   []string
	}{
		{"all newest first", services.LegalDocumentFilter{}, []string{arrest.ID, custody.ID, lease.ID, bail.ID}},
		{"category", services.LegalDocumentFilter{Category: models.CategoryCriminal}, []string{arrest.ID, bail.ID}},
		{"search title", services.LegalDocumentFilter{Search: "agreements"}, []string{lease.ID}},
		{"search content", services.LegalDocumentFilter{Search: "court"}, []string{arrest.ID, custody.ID}},
		{"category and search", services.LegalDocumentFilter{Category: models.CategoryCriminal, Search: "bond"}, []string{bail.ID}},
		{"page", services.LegalDocumentFilter{Page: services.Page{Limit: 2, Offset: 1}}, []string{custody.ID, lease.ID}},
		{"offset past end", services.LegalDocumentFilter{Page: services.Page{Limit: 2, Offset: 10}}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := services.ListLegalDocuments(ctx, db, tt.filter)
			require.NoError(t, err)
			ids := []string{}
			for _, d := range docs {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestUpdateLegalDocument(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	doc := testutil.CreateLegalDocument(t, db, "Draft", "Original content", models.CategoryCivil, base)

	level := types.FlexInt(4)
	updated, err := services.UpdateLegalDocument(ctx, db, doc.ID, services.LegalDocumentUpdate{
		Summary:         testutil.Str("Short summary"),
		DifficultyLevel: &level,
		IsOfficial:      testutil.Ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "Draft", updated.Title)
	assert.Equal(t, "Original content", updated.Content)
	require.NotNil(t, updated.Summary)
	assert.Equal(t, "Short summary", *updated.Summary)
	assert.Equal(t, 4, updated.DifficultyLevel)
	assert.True(t, updated.IsOfficial)
	assert.True(t, updated.CreatedAt.Equal(base))
	assert.True(t, updated.UpdatedAt.After(base))

	bad := types.FlexInt(0)
	_, err = services.UpdateLegalDocument(ctx, db, doc.ID, services.LegalDocumentUpdate{DifficultyLevel: &bad})
	assert.True(t, services.IsValidation(err))

	_, err = services.UpdateLegalDocument(ctx, db, "missing", services.LegalDocumentUpdate{Title: testutil.Str("x")})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetLegalDocumentNotFound(t *testing.T) {
	db := testutil.NewDB(t)

	_, err := services.GetLegalDocument(context.Background(), db, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
