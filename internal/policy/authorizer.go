// authorizer.go
//
// Legal-aid data service: constitution, Q&A forum, case management and document templates
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of legalaid-api.
// legalaid-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// legalaid-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with legalaid-api.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package policy decides who may perform role and ownership gated actions.
// Decisions are made by the embedded cedar policies.
package policy

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/cedar-policy/cedar-go"
	"github.com/localnerve/legalaid-api/internal/models"
)

//go:embed policies/legalaid.cedar
var policyContent []byte

const namespace = "Legal::"

// Action names a policy-gated operation.
type Action string

const (
	UpdateQuestion     Action = "updateQuestion"
	FeatureQuestion    Action = "featureQuestion"
	UpdateAnswer       Action = "updateAnswer"
	AcceptAnswer       Action = "acceptAnswer"
	VerifyAnswer       Action = "verifyAnswer"
	ManageCases        Action = "manageCases"
	ReviewApplications Action = "reviewApplications"
)

// Principal is the authenticated caller.
type Principal struct {
	ID   string
	Role models.Role
}

// Resource is the target of an action. Owner is the owning user id;
// QuestionOwner is set for answers.
type Resource struct {
	Type          string
	ID            string
	Owner         string
	QuestionOwner string
}

// Resource types.
const (
	QuestionResource    = "Question"
	AnswerResource      = "Answer"
	CaseResource        = "Case"
	ApplicationResource = "Application"
)

// Authorizer evaluates requests against the embedded policy set.
type Authorizer struct {
	policySet *cedar.PolicySet
}

// NewAuthorizer parses the embedded policies.
func NewAuthorizer() (*Authorizer, error) {
	policySet, err := cedar.NewPolicySetFromBytes("legalaid.cedar", policyContent)
	if err != nil {
		return nil, fmt.Errorf("failed to parse policies: %w", err)
	}
	return &Authorizer{policySet: policySet}, nil
}

type entityJSON struct {
	UID     uidJSON                `json:"uid"`
	Attrs   map[string]interface{} `json:"attrs"`
	Parents []uidJSON              `json:"parents"`
}

type uidJSON struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func (r Resource) uid() uidJSON {
	id := r.ID
	if id == "" {
		id = "_"
	}
	typ := r.Type
	if typ == "" {
		typ = "Any"
	}
	return uidJSON{Type: namespace + typ, ID: id}
}

// IsAuthorized reports whether principal may perform action on resource.
func (a *Authorizer) IsAuthorized(principal Principal, action Action, resource Resource) (bool, error) {
	principalUID := uidJSON{Type: namespace + "User", ID: principal.ID}
	resourceUID := resource.uid()

	attrs := map[string]interface{}{}
	if resource.Owner != "" {
		attrs["owner"] = resource.Owner
	}
	if resource.QuestionOwner != "" {
		attrs["questionOwner"] = resource.QuestionOwner
	}

	entitiesJSON, err := json.Marshal([]entityJSON{
		{
			UID:     principalUID,
			Attrs:   map[string]interface{}{"id": principal.ID, "role": string(principal.Role)},
			Parents: []uidJSON{},
		},
		{
			UID:     resourceUID,
			Attrs:   attrs,
			Parents: []uidJSON{},
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to marshal entities: %w", err)
	}

	var entities cedar.EntityMap
	if err := json.Unmarshal(entitiesJSON, &entities); err != nil {
		return false, fmt.Errorf("failed to unmarshal entities: %w", err)
	}

	req := cedar.Request{
		Principal: cedar.NewEntityUID(cedar.EntityType(principalUID.Type), cedar.String(principalUID.ID)),
		Action:    cedar.NewEntityUID(cedar.EntityType(namespace+"Action"), cedar.String(string(action))),
		Resource:  cedar.NewEntityUID(cedar.EntityType(resourceUID.Type), cedar.String(resourceUID.ID)),
		Context:   cedar.NewRecord(cedar.RecordMap{}),
	}

	decision, _ := a.policySet.IsAuthorized(entities, req)
	return decision == cedar.Allow, nil
}
