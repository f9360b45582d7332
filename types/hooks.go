package types

// Hooks contains optional callbacks for relationship lifecycle events.
//
// All hooks are optional; nil hooks are skipped. Hooks run synchronously on
// the calling goroutine, so they should return quickly.
type Hooks struct {
	// OnProjectAssigned is called after a project is added to a
	// developer's project list.
	OnProjectAssigned func(developer, project string)

	// OnProjectRemoved is called after a project is removed from a
	// developer's project list.
	OnProjectRemoved func(developer, project string)

	// OnRosterChanged is called after a project's developer roster grows
	// or shrinks, with the new size.
	OnRosterChanged func(project string, size int)
}

// FireProjectAssigned invokes OnProjectAssigned when set.
func (h *Hooks) FireProjectAssigned(developer, project string) {
	if h != nil && h.OnProjectAssigned != nil {
		h.OnProjectAssigned(developer, project)
	}
}

// FireProjectRemoved invokes OnProjectRemoved when set.
func (h *Hooks) FireProjectRemoved(developer, project string) {
	if h != nil && h.OnProjectRemoved != nil {
		h.OnProjectRemoved(developer, project)
	}
}

// FireRosterChanged invokes OnRosterChanged when set.
func (h *Hooks) FireRosterChanged(project string, size int) {
	if h != nil && h.OnRosterChanged != nil {
		h.OnRosterChanged(project, size)
	}
}
