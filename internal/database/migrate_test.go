package database_test

import (
	"context"
	"testing"

	"github.com/localnerve/legalaid-api/internal/database"
	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/testutil"
)

func TestMigrateCreatesSchema(t *testing.T) {
	db := testutil.NewDB(t)

	for _, model := range models.All() {
		if !db.Migrator().HasTable(model) {
			t.Errorf("expected table for %T", model)
		}
	}
	if !db.Migrator().HasIndex(&models.ForumAnswer{}, "idx_forum_answers_ranking") {
		t.Error("expected answer ranking index")
	}
	if db.Migrator().HasColumn(&models.ForumQuestion{}, "answers_count") {
		t.Error("answers_count must not be stored")
	}

	// Applying again is a no-op.
	if err := database.Migrate(db); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}
}

func TestRollbackLast(t *testing.T) {
	db := testutil.NewDB(t)

	if err := database.RollbackLast(db); err != nil {
		t.Fatalf("RollbackLast failed: %v", err)
	}
	if db.Migrator().HasIndex(&models.ForumAnswer{}, "idx_forum_answers_ranking") {
		t.Error("ranking index should be dropped")
	}
	if !db.Migrator().HasTable(&models.ForumAnswer{}) {
		t.Error("tables from earlier migrations should remain")
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("re-Migrate failed: %v", err)
	}
	if !db.Migrator().HasIndex(&models.ForumAnswer{}, "idx_forum_answers_ranking") {
		t.Error("ranking index should be restored")
	}
}

func TestSeedTemplates(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	seeds, err := database.TemplateSeeds()
	if err != nil {
		t.Fatalf("TemplateSeeds failed: %v", err)
	}
	if len(seeds) == 0 {
		t.Fatal("expected embedded template seeds")
	}

	created, err := database.SeedTemplates(ctx, db)
	if err != nil {
		t.Fatalf("SeedTemplates failed: %v", err)
	}
	if created != len(seeds) {
		t.Errorf("expected %d templates created, got %d", len(seeds), created)
	}

	created, err = database.SeedTemplates(ctx, db)
	if err != nil {
		t.Fatalf("second SeedTemplates failed: %v", err)
	}
	if created != 0 {
		t.Errorf("expected reseeding to create nothing, got %d", created)
	}

	templates, err := services.ListDocumentTemplates(ctx, db, "")
	if err != nil {
		t.Fatalf("ListDocumentTemplates failed: %v", err)
	}
	if len(templates) != len(seeds) {
		t.Errorf("expected %d active templates, got %d", len(seeds), len(templates))
	}
	for _, tpl := range templates {
		if len(tpl.Template.JSON) == 0 {
			t.Errorf("template %q has no field schema", tpl.Name)
		}
	}
}
