package record

type WorkerRole string

const (
	RolePicker     WorkerRole = "Picker"
	RolePacker     WorkerRole = "Packer"
	RoleSupervisor WorkerRole = "Supervisor"
	RoleManager    WorkerRole = "Manager"
)

func (r WorkerRole) String() string {
	return string(r)
}

func (r WorkerRole) Valid() bool {
	switch r {
	case RolePicker, RolePacker, RoleSupervisor, RoleManager:
		return true
	}
	return false
}

// CanPick reports whether a worker with this role may be assigned as an
// order's picker. Supervisors and managers can cover either station.
func (r WorkerRole) CanPick() bool {
	return r == RolePicker || r == RoleSupervisor || r == RoleManager
}

// CanPack reports whether a worker with this role may be assigned as an
// order's packer.
func (r WorkerRole) CanPack() bool {
	return r == RolePacker || r == RoleSupervisor || r == RoleManager
}
