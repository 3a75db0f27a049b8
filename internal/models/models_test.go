package models

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestParseJSON(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want string
	}{
		{`{"monthlyIncome":1200}`, true, `{"monthlyIncome":1200}`},
		{"  [1,2]\n", true, `[1,2]`},
		{`"text"`, true, `"text"`},
		{``, false, ``},
		{`null`, false, ``},
		{` null `, false, ``},
		{`{"open":`, false, ``},
	}
	for _, tt := range tests {
		got, ok := ParseJSON([]byte(tt.in))
		if ok != tt.ok {
			t.Errorf("ParseJSON(%q): expected ok=%v, got %v", tt.in, tt.ok, ok)
			continue
		}
		if ok && string(got.JSON) != tt.want {
			t.Errorf("ParseJSON(%q): expected %s, got %s", tt.in, tt.want, got.JSON)
		}
	}
}

func TestStringListRoundTrip(t *testing.T) {
	in := StringList{"id-card.jpg", "payslip, march.pdf"}
	value, err := in.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}

	var out StringList
	if err := out.Scan(value); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("expected %v, got %v", in, out)
	}
}

func TestStringListEmpty(t *testing.T) {
	value, err := StringList(nil).Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if value != "{}" {
		t.Errorf("expected nil list to be stored as {}, got %v", value)
	}

	for _, src := range []interface{}{nil, "{}", []byte("{}")} {
		var out StringList
		if err := out.Scan(src); err != nil {
			t.Fatalf("Scan(%v) failed: %v", src, err)
		}
		if out == nil || len(out) != 0 {
			t.Errorf("Scan(%v): expected empty list, got %#v", src, out)
		}
	}

	data, err := json.Marshal(struct {
		Tags StringList `json:"tags"`
	}{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"tags":[]}` {
		t.Errorf("expected empty tags array, got %s", data)
	}
}

func TestAutoMigrateAll(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, model := range All() {
		if err := db.AutoMigrate(model); err != nil {
			t.Fatalf("AutoMigrate(%T) failed: %v", model, err)
		}
	}

	for _, tt := range []struct {
		model  interface{}
		column string
	}{
		{&LegalCase{}, "documents"},
		{&LegalDocument{}, "tags"},
		{&LegalAidApplication{}, "supporting_documents"},
	} {
		if !db.Migrator().HasColumn(tt.model, tt.column) {
			t.Errorf("expected %T to have column %s", tt.model, tt.column)
		}
	}

	// The answer ranking index belongs to its own migration.
	if db.Migrator().HasIndex(&ForumAnswer{}, "idx_forum_answers_ranking") {
		t.Error("AutoMigrate should not create the answer ranking index")
	}
}

func TestEnumValidation(t *testing.T) {
	if !CategoryHumanRights.Valid() || Category("tax").Valid() {
		t.Error("unexpected category validity")
	}
	if !RolePrisoner.Valid() || Role("guest").Valid() {
		t.Error("unexpected role validity")
	}
	if !CaseAppealed.Valid() || CaseStatus("archived").Valid() {
		t.Error("unexpected case status validity")
	}
}
