// Package authz implements the ownership rule shared by comments and notes.
// The rule is a pure function over (acting user, resource owner, operation)
// so use cases can apply it without any request/response types.
package authz

// Op enumerates the operations gated by ownership.
type Op string

const (
	OpView   Op = "view"
	OpEdit   Op = "edit"
	OpDelete Op = "delete"
)

// Allowed reports whether the acting user may perform op on a resource
// owned by ownerID. Every operation requires ownership. Callers must treat
// a denied operation exactly like a missing resource so that ownership
// mismatch does not reveal the resource's existence.
func Allowed(actorID, ownerID int64, op Op) bool {
	if actorID <= 0 || ownerID <= 0 {
		return false
	}
	switch op {
	case OpView, OpEdit, OpDelete:
		return actorID == ownerID
	}
	return false
}
