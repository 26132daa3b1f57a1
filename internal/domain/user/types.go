package user

type Role string

const (
	RoleAgent        Role = "AGENT"
	RoleGestionnaire Role = "GESTIONNAIRE"
	RoleAdmin        Role = "ADMIN"
)

var roleRank = map[Role]int{
	RoleAgent:        1,
	RoleGestionnaire: 2,
	RoleAdmin:        3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// IsStaff reports whether the role runs the canteen (gestionnaire or admin).
func (r Role) IsStaff() bool {
	return r == RoleGestionnaire || r == RoleAdmin
}

// AtLeast compares roles on the AGENT < GESTIONNAIRE < ADMIN ladder.
func (r Role) AtLeast(required Role) bool {
	return roleRank[r] >= roleRank[required] && r.IsValid()
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
