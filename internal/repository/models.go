package repository

// User is an account document. Usernames are stored lowercased and must be
// unique; Role gates the user-management routes.
type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(32);not null;default:member"`
}

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Sale is a single sales record. Amounts and dates arrive as form text and
// are stored as submitted.
type Sale struct {
	ID               string `gorm:"primaryKey;autoIncrement:false"`
	CustomerName     string `gorm:"type:varchar(200);not null"`
	SaleAmount       string `gorm:"type:varchar(100);not null"`
	SaleDescription  string `gorm:"type:text"`
	CloseDate        string `gorm:"type:varchar(64)"`
	PurchaseApproval string `gorm:"type:varchar(3);not null"` // "yes" or "no"
	CreatedBy        string `gorm:"type:varchar(255);not null;index"`
}

// DashboardInfo is a read-only lookup keyed by username; rows are
// provisioned out of band.
type DashboardInfo struct {
	Username    string `gorm:"primaryKey"`
	Headline    string `gorm:"type:text"`
	SalesTarget string `gorm:"type:varchar(100)"`
	Notes       string `gorm:"type:text"`
}

func (DashboardInfo) TableName() string {
	return "dashboard_info"
}
