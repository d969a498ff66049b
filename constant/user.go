package constant

type UserRole string

const (
	UserRoleClient UserRole = "client"
	UserRoleTasker UserRole = "tasker"
	UserRoleBoth   UserRole = "both"
)
