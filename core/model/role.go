package model

import "fmt"

// Role identifies which of the two competing providers operates a service.
type Role int

const (
	// Primary is the first provider. It wins exact ties by default.
	Primary Role = iota
	// Secondary is the second provider.
	Secondary
)

// Roles lists both provider roles in output order.
var Roles = [...]Role{Primary, Secondary}

// String returns a human-readable representation of the role.
func (r Role) String() string {
	switch r {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Other returns the opposite role.
func (r Role) Other() Role {
	if r == Primary {
		return Secondary
	}
	return Primary
}

// ParseRole converts "primary" or "secondary" to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "primary":
		return Primary, nil
	case "secondary":
		return Secondary, nil
	default:
		return 0, fmt.Errorf("unknown provider role %q", s)
	}
}

func (r Role) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Role) UnmarshalText(b []byte) error {
	v, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
