package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/VinBdev/Predict-Your-Sales/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already used")
var ErrSaleNotFound error = errors.New("sale not found")

// Tracker holds the application logic for accounts and sales records.
type Tracker struct {
	logs *zap.SugaredLogger
	repo Repository
}

func NewTracker(logger *zap.SugaredLogger, repo Repository) *Tracker {
	return &Tracker{
		logs: logger,
		repo: repo,
	}
}

// Register creates a member account. The username is lowercased before the
// duplicate check so registration is case-insensitive.
func (t *Tracker) Register(ctx context.Context, msg RegisterMessage) (UserRecord, error) {
	user, err := t.createAccount(ctx, msg, repository.RoleMember)
	if err != nil {
		return UserRecord{}, err
	}

	t.logs.Infow("user registered", "username", user.Username)
	return user, nil
}

// Authenticate verifies the credentials and returns the account. Unknown
// username and wrong password surface as distinct sentinels; the handler is
// expected to collapse them into one generic message.
func (t *Tracker) Authenticate(ctx context.Context, msg AuthMessage) (UserRecord, error) {
	username := strings.ToLower(msg.Username)

	user, err := t.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return UserRecord{}, ErrIncorrectPassword
	}

	return userToRecord(user), nil
}

// Dashboard loads the dashboard panel for the session user. An account with
// no dashboard_info row gets an empty panel, not an error.
func (t *Tracker) Dashboard(ctx context.Context, username string) (DashboardRecord, error) {
	user, err := t.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return DashboardRecord{}, ErrUserNotFound
		}
		return DashboardRecord{}, fmt.Errorf("get user from db: %w", err)
	}

	dash, err := t.repo.GetDashboard(ctx, user.Username)
	if err != nil {
		if !errors.Is(err, repository.ErrDashboardNotFound) {
			return DashboardRecord{}, fmt.Errorf("get dashboard info: %w", err)
		}
		dash = repository.DashboardInfo{Username: user.Username}
	}

	return DashboardRecord{
		Username:    user.Username,
		Headline:    dash.Headline,
		SalesTarget: dash.SalesTarget,
		Notes:       dash.Notes,
	}, nil
}

// UserRole reports the role of the account behind the session username.
func (t *Tracker) UserRole(ctx context.Context, username string) (string, error) {
	user, err := t.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}
	return user.Role, nil
}

func (t *Tracker) ListSales(ctx context.Context) ([]SaleRecord, error) {
	sales, err := t.repo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return salesToRecords(sales), nil
}

// SearchSales matches the free-text query over the sales collection. Zero
// matches is a valid outcome and yields an empty listing.
func (t *Tracker) SearchSales(ctx context.Context, query string) ([]SaleRecord, error) {
	sales, err := t.repo.SearchSales(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search sales: %w", err)
	}

	t.logs.Infow("sales search completed", "query", query, "matches", len(sales))
	return salesToRecords(sales), nil
}

// CreateSale inserts a new sale stamped with the creating username.
func (t *Tracker) CreateSale(ctx context.Context, username string, msg SaleMessage) (SaleRecord, error) {
	sale := repository.Sale{
		ID:               uuid.NewString(),
		CustomerName:     msg.CustomerName,
		SaleAmount:       msg.SaleAmount,
		SaleDescription:  msg.SaleDescription,
		CloseDate:        msg.CloseDate,
		PurchaseApproval: approvalValue(msg.PurchaseApproved),
		CreatedBy:        username,
	}

	if err := t.repo.InsertSale(ctx, sale); err != nil {
		return SaleRecord{}, fmt.Errorf("insert sale: %w", err)
	}

	t.logs.Infow("sale created", "id", sale.ID, "created_by", username)
	return saleToRecord(sale), nil
}

func (t *Tracker) GetSale(ctx context.Context, id string) (SaleRecord, error) {
	sale, err := t.repo.GetSale(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return SaleRecord{}, ErrSaleNotFound
		}
		return SaleRecord{}, fmt.Errorf("get sale: %w", err)
	}
	return saleToRecord(sale), nil
}

// ReplaceSale overwrites every field of the sale. The original creator is
// retained; editing a record does not reassign ownership.
func (t *Tracker) ReplaceSale(ctx context.Context, id string, msg SaleMessage) error {
	original, err := t.repo.GetSale(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return ErrSaleNotFound
		}
		return fmt.Errorf("get sale: %w", err)
	}

	sale := repository.Sale{
		ID:               id,
		CustomerName:     msg.CustomerName,
		SaleAmount:       msg.SaleAmount,
		SaleDescription:  msg.SaleDescription,
		CloseDate:        msg.CloseDate,
		PurchaseApproval: approvalValue(msg.PurchaseApproved),
		CreatedBy:        original.CreatedBy,
	}

	if err := t.repo.ReplaceSale(ctx, id, sale); err != nil {
		return fmt.Errorf("replace sale: %w", err)
	}

	t.logs.Infow("sale replaced", "id", id, "created_by", sale.CreatedBy)
	return nil
}

// DeleteSale removes the sale by id. A nonexistent id deletes nothing and
// reports success.
func (t *Tracker) DeleteSale(ctx context.Context, id string) error {
	if err := t.repo.DeleteSales(ctx, id); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}

	t.logs.Infow("sale deleted", "id", id)
	return nil
}

func (t *Tracker) ListUsers(ctx context.Context) ([]UserRecord, error) {
	users, err := t.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	records := make([]UserRecord, len(users))
	for i, user := range users {
		records[i] = userToRecord(user)
	}
	return records, nil
}

// CreateUser adds a member account on behalf of an administrator. Same
// duplicate-username rule as Register.
func (t *Tracker) CreateUser(ctx context.Context, msg RegisterMessage) (UserRecord, error) {
	user, err := t.createAccount(ctx, msg, repository.RoleMember)
	if err != nil {
		return UserRecord{}, err
	}

	t.logs.Infow("user created", "username", user.Username)
	return user, nil
}

func (t *Tracker) GetUser(ctx context.Context, id string) (UserRecord, error) {
	user, err := t.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user: %w", err)
	}
	return userToRecord(user), nil
}

// ReplaceUser updates the account's username and, only when a new password
// was submitted, its digest. Role and stored digest survive otherwise.
func (t *Tracker) ReplaceUser(ctx context.Context, id string, msg UserUpdateMessage) error {
	original, err := t.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}

	passwordHash := original.PasswordHash
	if msg.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		passwordHash = string(hash)
	}

	user := repository.User{
		ID:           id,
		Username:     strings.ToLower(msg.Username),
		PasswordHash: passwordHash,
		Role:         original.Role,
	}

	if err := t.repo.ReplaceUser(ctx, id, user); err != nil {
		return fmt.Errorf("replace user: %w", err)
	}

	t.logs.Infow("user replaced", "id", id, "username", user.Username)
	return nil
}

func (t *Tracker) DeleteUser(ctx context.Context, id string) error {
	if err := t.repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	t.logs.Infow("user deleted", "id", id)
	return nil
}

func (t *Tracker) createAccount(ctx context.Context, msg RegisterMessage, role string) (UserRecord, error) {
	username := strings.ToLower(msg.Username)

	_, err := t.repo.GetUserByUsername(ctx, username)
	if err == nil {
		return UserRecord{}, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return UserRecord{}, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := t.repo.InsertUser(ctx, user); err != nil {
		return UserRecord{}, fmt.Errorf("insert user: %w", err)
	}

	return userToRecord(user), nil
}

func approvalValue(approved bool) string {
	if approved {
		return "yes"
	}
	return "no"
}

func userToRecord(user repository.User) UserRecord {
	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

func saleToRecord(sale repository.Sale) SaleRecord {
	return SaleRecord{
		ID:               sale.ID,
		CustomerName:     sale.CustomerName,
		SaleAmount:       sale.SaleAmount,
		SaleDescription:  sale.SaleDescription,
		CloseDate:        sale.CloseDate,
		PurchaseApproval: sale.PurchaseApproval,
		CreatedBy:        sale.CreatedBy,
	}
}

func salesToRecords(sales []repository.Sale) []SaleRecord {
	records := make([]SaleRecord, len(sales))
	for i, sale := range sales {
		records[i] = saleToRecord(sale)
	}
	return records
}
