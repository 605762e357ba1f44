// Package policy decides whether an actor may perform an action on a rating
// or a rating reply. It performs no I/O: callers resolve the actor and the
// resource first and act on the returned Decision.
package policy

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHospital Role = "hospital"
	RoleUser     Role = "user"
)

type Action string

const (
	ActionList   Action = "list"
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type ResourceType string

const (
	ResourceRating    ResourceType = "rating"
	ResourceRateReply ResourceType = "rate_reply"
)

// Scope tells a list operation which rows the actor may see.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeAll
	ScopeHospital
	ScopeOwn
)

// Fixed denial reasons returned to API clients.
const (
	ReasonNotAllowed       = "You are not allowed to access this page"
	ReasonBackOffice       = "Go to back end"
	ReasonRatingNotFound   = "Rating not found"
	ReasonHospitalNotFound = "Hospital not found"
)

// Actor is the authenticated account making the request.
type Actor struct {
	UserID     uuid.UUID
	Role       Role
	HospitalID *uint
}

func (a Actor) worksAt(hospitalID uint) bool {
	return a.HospitalID != nil && *a.HospitalID == hospitalID
}

// Resource describes the target of an action.
//
// For ActionCreate, ParentFound reports whether the parent exists (the rating
// for a reply, the hospital for a rating) and HospitalID is the parent's hospital.
type Resource struct {
	Type        ResourceType
	AuthorID    uuid.UUID
	HospitalID  uint
	ParentFound bool
}

// Decision is the outcome of Decide. Code is an HTTP-style status for denials.
type Decision struct {
	Allowed bool
	Scope   Scope
	Code    int
	Reason  string
}

// DeniedError carries a denial to the transport layer.
type DeniedError struct {
	Code   int
	Reason string
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("denied (%d): %s", e.Code, e.Reason)
}

// Err returns nil for an allowed decision and a *DeniedError otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &DeniedError{Code: d.Code, Reason: d.Reason}
}

func allow(scope Scope) Decision {
	return Decision{Allowed: true, Scope: scope}
}

func deny(code int, reason string) Decision {
	return Decision{Code: code, Reason: reason}
}

func forbidden() Decision {
	return deny(http.StatusForbidden, ReasonNotAllowed)
}

// backOffice is the admin answer for mutations that belong to the admin panel.
// It is not an error from the client's point of view, hence 200.
func backOffice() Decision {
	return deny(http.StatusOK, ReasonBackOffice)
}

// Decide evaluates the rules for one action. The first matching rule wins.
func Decide(actor Actor, action Action, res Resource) Decision {
	switch res.Type {
	case ResourceRateReply:
		return decideRateReply(actor, action, res)
	case ResourceRating:
		return decideRating(actor, action, res)
	}
	return forbidden()
}

func decideRateReply(actor Actor, action Action, res Resource) Decision {
	switch action {
	case ActionList:
		switch actor.Role {
		case RoleAdmin:
			return allow(ScopeAll)
		case RoleHospital:
			return allow(ScopeHospital)
		case RoleUser:
			// a plain user authors no replies
			return allow(ScopeNone)
		}
		return forbidden()

	case ActionCreate:
		switch actor.Role {
		case RoleAdmin:
			return backOffice()
		case RoleHospital:
			if !res.ParentFound {
				return deny(http.StatusNotFound, ReasonRatingNotFound)
			}
			if !actor.worksAt(res.HospitalID) {
				return forbidden()
			}
			return allow(ScopeHospital)
		}
		return forbidden()

	case ActionUpdate, ActionDelete:
		if actor.Role == RoleHospital && actor.worksAt(res.HospitalID) {
			return allow(ScopeHospital)
		}
		return forbidden()
	}
	return forbidden()
}

func decideRating(actor Actor, action Action, res Resource) Decision {
	switch action {
	case ActionList:
		switch actor.Role {
		case RoleAdmin:
			return allow(ScopeAll)
		case RoleHospital:
			return allow(ScopeHospital)
		case RoleUser:
			return allow(ScopeOwn)
		}
		return forbidden()

	case ActionCreate:
		switch actor.Role {
		case RoleAdmin:
			return backOffice()
		case RoleUser:
			if !res.ParentFound {
				return deny(http.StatusNotFound, ReasonHospitalNotFound)
			}
			return allow(ScopeOwn)
		}
		return forbidden()

	case ActionRead:
		switch {
		case actor.Role == RoleAdmin:
			return allow(ScopeAll)
		case actor.Role == RoleHospital && actor.worksAt(res.HospitalID):
			return allow(ScopeHospital)
		case actor.Role == RoleUser && actor.UserID == res.AuthorID:
			return allow(ScopeOwn)
		}
		return forbidden()

	case ActionUpdate, ActionDelete:
		if actor.Role == RoleUser && actor.UserID == res.AuthorID {
			return allow(ScopeOwn)
		}
		return forbidden()
	}
	return forbidden()
}
