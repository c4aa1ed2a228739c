package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/VinBdev/Predict-Your-Sales/internal/db"
	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrSaleNotFound error = errors.New("sale not found")
var ErrDashboardNotFound error = errors.New("dashboard info not found")

// TrackerRepository exposes typed collection operations for the three
// document collections: users, sales and dashboard_info.
type TrackerRepository struct {
	db Storage
}

func NewTrackerRepository(db Storage) *TrackerRepository {
	return &TrackerRepository{
		db: db,
	}
}

// MigrateAndSeed migrates the three collections and provisions the initial
// admin account when the users collection is empty. Without a seeded admin
// the user-management routes would be unreachable.
func (r *TrackerRepository) MigrateAndSeed() error {

	err := r.db.MigrateTable(&User{}, &Sale{}, &DashboardInfo{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	count, err := r.db.Count(context.Background(), &User{})
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	admin := User{
		ID:       uuid.NewString(),
		Username: "admin",
		// bcrypt hash of "changeme", rotated on first login in practice
		PasswordHash: "$2a$10$wzaRCrxv8zhW.2comWzAVeO3JWkkCxsPPvkc3Srxh.5131Sv1P.vy",
		Role:         RoleAdmin,
	}
	if err := r.db.InsertOne(context.Background(), &admin); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	dash := DashboardInfo{
		Username: admin.Username,
		Headline: "Welcome to Predict Your Sales",
	}
	if err := r.db.InsertOne(context.Background(), &dash); err != nil {
		return fmt.Errorf("seed dashboard info: %w", err)
	}

	return nil
}

func (r *TrackerRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *TrackerRepository) GetUserByID(ctx context.Context, id string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

// ListUsers returns every user sorted by username.
func (r *TrackerRepository) ListUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	if err := r.db.GetAll(ctx, &users, "username"); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *TrackerRepository) InsertUser(ctx context.Context, user User) error {
	if err := r.db.InsertOne(ctx, &user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// ReplaceUser overwrites the whole user document; a missing id is a no-op.
func (r *TrackerRepository) ReplaceUser(ctx context.Context, id string, user User) error {
	values := map[string]any{
		"username":      user.Username,
		"password_hash": user.PasswordHash,
		"role":          user.Role,
	}
	if err := r.db.ReplaceOne(ctx, &User{}, "id", id, values); err != nil {
		return fmt.Errorf("replace user: %w", err)
	}
	return nil
}

func (r *TrackerRepository) DeleteUser(ctx context.Context, id string) error {
	if err := r.db.DeleteAllBy(ctx, &User{}, "id", id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *TrackerRepository) GetSale(ctx context.Context, id string) (Sale, error) {
	var sale Sale

	err := r.db.GetOneBy(ctx, "id", id, &sale)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Sale{}, ErrSaleNotFound
		}
		return Sale{}, fmt.Errorf("get sale by id: %w", err)
	}

	return sale, nil
}

func (r *TrackerRepository) ListSales(ctx context.Context) ([]Sale, error) {
	sales := []Sale{}
	if err := r.db.GetAll(ctx, &sales, ""); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}

// SearchSales matches the free-text query against customer name and
// description. No match is an empty slice, not an error.
func (r *TrackerRepository) SearchSales(ctx context.Context, query string) ([]Sale, error) {
	sales := []Sale{}
	err := r.db.SearchLike(ctx, &sales, query, "customer_name", "sale_description")
	if err != nil {
		return nil, fmt.Errorf("search sales: %w", err)
	}
	return sales, nil
}

func (r *TrackerRepository) InsertSale(ctx context.Context, sale Sale) error {
	if err := r.db.InsertOne(ctx, &sale); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ReplaceSale overwrites the whole sale document; a missing id is a no-op.
func (r *TrackerRepository) ReplaceSale(ctx context.Context, id string, sale Sale) error {
	values := map[string]any{
		"customer_name":     sale.CustomerName,
		"sale_amount":       sale.SaleAmount,
		"sale_description":  sale.SaleDescription,
		"close_date":        sale.CloseDate,
		"purchase_approval": sale.PurchaseApproval,
		"created_by":        sale.CreatedBy,
	}
	if err := r.db.ReplaceOne(ctx, &Sale{}, "id", id, values); err != nil {
		return fmt.Errorf("replace sale: %w", err)
	}
	return nil
}

// DeleteSales removes every sale matching id. The id is unique so this acts
// as delete-one; a nonexistent id deletes nothing and is not an error.
func (r *TrackerRepository) DeleteSales(ctx context.Context, id string) error {
	if err := r.db.DeleteAllBy(ctx, &Sale{}, "id", id); err != nil {
		return fmt.Errorf("delete sales: %w", err)
	}
	return nil
}

func (r *TrackerRepository) GetDashboard(ctx context.Context, username string) (DashboardInfo, error) {
	var dash DashboardInfo

	err := r.db.GetOneBy(ctx, "username", username, &dash)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return DashboardInfo{}, ErrDashboardNotFound
		}
		return DashboardInfo{}, fmt.Errorf("get dashboard info: %w", err)
	}

	return dash, nil
}
