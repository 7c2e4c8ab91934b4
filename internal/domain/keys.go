package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
	KeyRequestID CtxKey = "RequestID"
)

// Actor is the verified identity of the caller, taken from the bearer token.
// Profile ids are always resolved from it server-side.
type Actor struct {
	UserID string
	Email  string
	Role   UserRole
}

func (a Actor) IsCandidate() bool { return a.Role == RoleCandidate }
func (a Actor) IsCompany() bool   { return a.Role == RoleCompany }
