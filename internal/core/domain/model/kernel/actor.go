package kernel

// Actor is the identity on whose behalf an operation runs. Authentication happens
// elsewhere; the engine only needs the id and whether the actor holds elevated
// (admin) privilege to decide ownership checks.
type Actor struct {
	ID    UUID
	Admin bool
}

// NewCustomer returns a non-privileged actor.
func NewCustomer(id UUID) Actor {
	return Actor{ID: id}
}

// NewAdmin returns a privileged actor.
func NewAdmin(id UUID) Actor {
	return Actor{ID: id, Admin: true}
}

// CanAccess reports whether the actor owns the resource or is an admin.
func (a Actor) CanAccess(ownerID UUID) bool {
	return a.Admin || a.ID.IsEqual(ownerID)
}
