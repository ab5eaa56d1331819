package auth

import "strings"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleOrganizer Role = "organizer"
	RoleUser      Role = "user"
)

func NormalizeRole(role string) Role {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleOrganizer):
		return RoleOrganizer
	default:
		return RoleUser
	}
}

// ValidRole reports whether role names one of the known roles exactly.
func ValidRole(role string) bool {
	switch role {
	case string(RoleAdmin), string(RoleOrganizer), string(RoleUser):
		return true
	}
	return false
}

func HasRole(role string, allowed ...Role) bool {
	if len(allowed) == 0 {
		return false
	}
	current := NormalizeRole(role)
	for _, candidate := range allowed {
		if current == candidate {
			return true
		}
	}
	return false
}

func IsAdmin(role string) bool {
	return NormalizeRole(role) == RoleAdmin
}

// CanModify is the ownership predicate shared by event update and delete:
// admins may modify any resource, everyone else only their own.
func CanModify(actor Identity, ownerID string) bool {
	if IsAdmin(actor.Role) {
		return true
	}
	return actor.ID != "" && actor.ID == ownerID
}
