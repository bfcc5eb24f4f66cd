package user

type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleManager  Role = "manager"  // Can review every employee's timesheet
	RoleEmployee Role = "employee" // Regular employee
	RolePending  Role = "pending"  // Still in onboarding
)

// CanViewCompanyTimesheet reports whether the role may open the daily timesheet.
func (r Role) CanViewCompanyTimesheet() bool {
	return r == RoleOwner || r == RoleManager
}
