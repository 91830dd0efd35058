// Package rbac decides what an authenticated role may do. The permission
// table lives in an embedded Rego policy so it is data evaluated by OPA, not
// branching spread across handlers.
package rbac

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/v1/rego"

	userdomain "event-hub/backend/internal/user/domain"
)

const policyQuery = "data.eventhub.rbac.allow"

// Default policy. Reads are open to any authenticated role; event management
// is organizer/admin work; every role may buy tickets and write reviews.
const defaultRegoPolicy = `package eventhub.rbac

default allow = false

allow if {
	input.action == "read"
}

allow if {
	input.role == "admin"
}

allow if {
	input.role == "organizer"
	input.resource == "event"
}

allow if {
	input.resource == "ticket"
	input.action == "create"
}

allow if {
	input.resource == "review"
	input.action == "create"
}

allow if {
	input.role == "organizer"
	input.resource == "ticket"
	input.action == "delete"
}
`

// Authorizer evaluates role permissions against the embedded Rego policy.
// The query is prepared once at construction; evaluation is read-only and
// safe for concurrent use.
type Authorizer struct {
	query rego.PreparedEvalQuery
}

// NewAuthorizer compiles the embedded policy and prepares the allow query.
func NewAuthorizer(ctx context.Context) (*Authorizer, error) {
	q, err := rego.New(
		rego.Query(policyQuery),
		rego.Module("rbac.rego", defaultRegoPolicy),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("rbac: prepare policy: %w", err)
	}
	return &Authorizer{query: q}, nil
}

// Allow reports whether role may perform action ("create", "read", "update",
// "delete") on resource ("event", "ticket", "review").
func (a *Authorizer) Allow(ctx context.Context, role userdomain.Role, action, resource string) (bool, error) {
	input := map[string]any{
		"role":     string(role),
		"action":   action,
		"resource": resource,
	}
	rs, err := a.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return false, fmt.Errorf("rbac: eval: %w", err)
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return false, nil
	}
	allowed, ok := rs[0].Expressions[0].Value.(bool)
	if !ok {
		return false, nil
	}
	return allowed, nil
}
