package core

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// RegisterMessage carries the credentials submitted at registration or by
// an admin creating an account.
type RegisterMessage struct {
	Username string
	Password string
}

type AuthMessage struct {
	Username string
	Password string
}

// SaleMessage is a validated sale form. PurchaseApproved reflects the
// presence of the approval checkbox, parsed explicitly at the boundary.
type SaleMessage struct {
	CustomerName     string
	SaleAmount       string
	SaleDescription  string
	CloseDate        string
	PurchaseApproved bool
}

// UserUpdateMessage carries an account edit. An empty Password keeps the
// stored digest untouched.
type UserUpdateMessage struct {
	Username string
	Password string
}

type UserRecord struct {
	ID       string
	Username string
	Role     string
}

type SaleRecord struct {
	ID               string
	CustomerName     string
	SaleAmount       string
	SaleDescription  string
	CloseDate        string
	PurchaseApproval string
	CreatedBy        string
}

type DashboardRecord struct {
	Username    string
	Headline    string
	SalesTarget string
	Notes       string
}
