package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDocumentTemplates(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	will := testutil.CreateTemplate(t, db, "Will", models.CategoryFamily, true)
	affidavit := testutil.CreateTemplate(t, db, "Affidavit", models.CategoryCivil, true)
	testutil.CreateTemplate(t, db, "Archived", models.CategoryCivil, false)

	all, err := services.ListDocumentTemplates(ctx, db, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, affidavit.ID, all[0].ID)
	assert.Equal(t, will.ID, all[1].ID)

	family, err := services.ListDocumentTemplates(ctx, db, models.CategoryFamily)
	require.NoError(t, err)
	require.Len(t, family, 1)
	assert.Equal(t, will.ID, family[0].ID)
}

func TestGetDocumentTemplateReturnsInactive(t *testing.T) {
	db := testutil.NewDB(t)
	archived := testutil.CreateTemplate(t, db, "Archived", models.CategoryCivil, false)

	got, err := services.GetDocumentTemplate(context.Background(), db, archived.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = services.GetDocumentTemplate(context.Background(), db, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestEnsureDocumentTemplate(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	in := services.TemplateInput{
		Name:     "Power of Attorney",
		Category: models.CategoryCivil,
		Template: json.RawMessage(`{"fields":[]}`),
	}

	first, created, err := services.EnsureDocumentTemplate(ctx, db, in)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, first.IsActive)

	second, created, err := services.EnsureDocumentTemplate(ctx, db, in)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	_, _, err = services.EnsureDocumentTemplate(ctx, db, services.TemplateInput{Name: "Bad", Category: models.CategoryCivil, Template: json.RawMessage(`{`)})
	assert.True(t, services.IsValidation(err))
}

func TestGeneratedDocuments(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	tpl := testutil.CreateTemplate(t, db, "Will", models.CategoryFamily, true)

	doc, err := services.CreateGeneratedDocument(ctx, db, services.GeneratedDocumentInput{
		UserID:     "citizen-1",
		TemplateID: tpl.ID,
		Title:      "My will",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(doc.FormData.JSON))
	assert.Nil(t, doc.PdfURL)
	assert.Nil(t, doc.DocxURL)

	_, err = services.CreateGeneratedDocument(ctx, db, services.GeneratedDocumentInput{
		UserID:     "citizen-2",
		TemplateID: tpl.ID,
		Title:      "Someone else's will",
		FormData:   json.RawMessage(`{"testator":"Achieng"}`),
	})
	require.NoError(t, err)

	mine, err := services.ListUserGeneratedDocuments(ctx, db, "citizen-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, doc.ID, mine[0].ID)
	require.NotNil(t, mine[0].Template)
	assert.Equal(t, "Will", mine[0].Template.Name)

	_, err = services.CreateGeneratedDocument(ctx, db, services.GeneratedDocumentInput{UserID: "citizen-1", TemplateID: "missing", Title: "x"})
	var ve *services.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "templateId", ve.Field)
}
