//go:build integration

package database_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/localnerve/legalaid-api/internal/database"
	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/localnerve/legalaid-api/internal/testutil"
	"github.com/localnerve/legalaid-api/internal/types"
	"gorm.io/gorm"
)

// TestWithDatabaseContainer runs the data layer against the database named by
// DB_TYPE (postgres by default) in a container.
func TestWithDatabaseContainer(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	tc, err := testutil.StartDatabase(ctx, t)
	if err != nil {
		t.Fatalf("Failed to start database container: %v", err)
	}
	defer tc.Terminate(t)

	db, err := database.Connect(tc.Config)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	if _, err := database.SeedTemplates(ctx, db); err != nil {
		t.Fatalf("Failed to seed templates: %v", err)
	}

	t.Run("ConcurrentViewsAndVotes", func(t *testing.T) {
		testConcurrentCounters(t, db)
	})

	t.Run("ArrayAndJSONColumns", func(t *testing.T) {
		testArrayAndJSONColumns(t, db)
	})

	t.Run("UniqueEmail", func(t *testing.T) {
		testUniqueEmail(t, db)
	})
}

func testConcurrentCounters(t *testing.T, db *gorm.DB) {
	ctx := context.Background()
	if _, err := services.UpsertUser(ctx, db, services.Identity{ID: "asker", Email: testutil.Str("asker@example.com")}); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}
	q, err := services.CreateForumQuestion(ctx, db, services.QuestionInput{
		UserID:   "asker",
		Title:    "What happens at a plea hearing?",
		Content:  "I have been charged with a traffic offence and my plea hearing is next week. What should I expect?",
		Category: models.CategoryCriminal,
	})
	if err != nil {
		t.Fatalf("CreateForumQuestion failed: %v", err)
	}

	const workers = 25
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := services.GetForumQuestion(ctx, db, q.ID); err != nil {
				t.Errorf("GetForumQuestion failed: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := services.VoteForumQuestion(ctx, db, q.ID, models.VoteUp); err != nil {
				t.Errorf("VoteForumQuestion failed: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := services.FindForumQuestion(ctx, db, q.ID)
	if err != nil {
		t.Fatalf("FindForumQuestion failed: %v", err)
	}
	if got.ViewsCount != workers {
		t.Errorf("expected %d views, got %d", workers, got.ViewsCount)
	}
	if got.Upvotes != workers {
		t.Errorf("expected %d upvotes, got %d", workers, got.Upvotes)
	}
	if got.Author == nil || got.Author.ID != "asker" {
		t.Errorf("expected author asker, got %+v", got.Author)
	}
}

func testArrayAndJSONColumns(t *testing.T, db *gorm.DB) {
	ctx := context.Background()
	doc, err := services.CreateLegalDocument(ctx, db, services.LegalDocumentInput{
		Title:    "Succession basics",
		Content:  "Intestate estates are distributed under the Law of Succession Act.",
		Category: models.CategoryFamily,
		Tags:     types.FlexList[string]{"succession", "estates, wills"},
	})
	if err != nil {
		t.Fatalf("CreateLegalDocument failed: %v", err)
	}
	got, err := services.GetLegalDocument(ctx, db, doc.ID)
	if err != nil {
		t.Fatalf("GetLegalDocument failed: %v", err)
	}
	if len(got.Tags) != 2 || got.Tags[1] != "estates, wills" {
		t.Errorf("tags did not round trip: %#v", got.Tags)
	}

	if _, err := services.UpsertUser(ctx, db, services.Identity{ID: "applicant"}); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}
	app, err := services.CreateLegalAidApplication(ctx, db, services.ApplicationInput{
		UserID:          "applicant",
		CaseDescription: "Eviction from family land",
		FinancialStatus: json.RawMessage(`{"monthlyIncome":3000}`),
	})
	if err != nil {
		t.Fatalf("CreateLegalAidApplication failed: %v", err)
	}
	var status map[string]float64
	if err := json.Unmarshal(app.FinancialStatus.JSON, &status); err != nil || status["monthlyIncome"] != 3000 {
		t.Errorf("financial status did not round trip: %s", app.FinancialStatus.JSON)
	}
}

func testUniqueEmail(t *testing.T, db *gorm.DB) {
	ctx := context.Background()
	if _, err := services.UpsertUser(ctx, db, services.Identity{ID: "first", Email: testutil.Str("dup@example.com")}); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}
	_, err := services.UpsertUser(ctx, db, services.Identity{ID: "second", Email: testutil.Str("dup@example.com")})
	if !errors.Is(err, services.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}
