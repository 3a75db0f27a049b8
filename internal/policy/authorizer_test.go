package policy

import (
	"testing"

	"github.com/localnerve/legalaid-api/internal/models"
)

func TestIsAuthorized(t *testing.T) {
	authz, err := NewAuthorizer()
	if err != nil {
		t.Fatalf("NewAuthorizer failed: %v", err)
	}

	citizen := Principal{ID: "citizen-1", Role: models.RoleCitizen}
	asker := Principal{ID: "asker", Role: models.RoleCitizen}
	lawyer := Principal{ID: "lawyer-1", Role: models.RoleLawyer}
	admin := Principal{ID: "admin-1", Role: models.RoleAdmin}

	ownQuestion := Resource{Type: QuestionResource, ID: "q1", Owner: "citizen-1"}
	answer := Resource{Type: AnswerResource, ID: "a1", Owner: "lawyer-1", QuestionOwner: "asker"}
	anyCase := Resource{Type: CaseResource}
	applications := Resource{Type: ApplicationResource}

	tests := []struct {
		name      string
		principal Principal
		action    Action
		resource  Resource
		want      bool
	}{
		{"author edits own question", citizen, UpdateQuestion, ownQuestion, true},
		{"other user edits question", lawyer, UpdateQuestion, ownQuestion, false},
		{"admin edits question", admin, UpdateQuestion, ownQuestion, true},
		{"author cannot feature", citizen, FeatureQuestion, ownQuestion, false},
		{"admin features", admin, FeatureQuestion, ownQuestion, true},
		{"author edits own answer", lawyer, UpdateAnswer, answer, true},
		{"asker cannot edit answer", asker, UpdateAnswer, answer, false},
		{"asker accepts answer", asker, AcceptAnswer, answer, true},
		{"answer author cannot accept", lawyer, AcceptAnswer, answer, false},
		{"lawyer verifies answer", lawyer, VerifyAnswer, answer, true},
		{"citizen cannot verify", asker, VerifyAnswer, answer, false},
		{"lawyer manages cases", lawyer, ManageCases, anyCase, true},
		{"citizen cannot manage cases", citizen, ManageCases, anyCase, false},
		{"admin cannot manage cases", admin, ManageCases, anyCase, false},
		{"admin reviews applications", admin, ReviewApplications, applications, true},
		{"lawyer cannot review applications", lawyer, ReviewApplications, applications, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := authz.IsAuthorized(tt.principal, tt.action, tt.resource)
			if err != nil {
				t.Fatalf("IsAuthorized failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
