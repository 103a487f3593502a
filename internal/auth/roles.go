package auth

import authlib "example.com/gymcheckin/libs/go/auth"

// Roles recognised by the check-in API.
const (
	RoleAdmin  = authlib.RoleAdmin
	RoleMember = authlib.RoleMember
)
