package core

import (
	"context"

	"github.com/VinBdev/Predict-Your-Sales/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, id string) (repository.User, error)
	ListUsers(ctx context.Context) ([]repository.User, error)
	InsertUser(ctx context.Context, user repository.User) error
	ReplaceUser(ctx context.Context, id string, user repository.User) error
	DeleteUser(ctx context.Context, id string) error
	GetSale(ctx context.Context, id string) (repository.Sale, error)
	ListSales(ctx context.Context) ([]repository.Sale, error)
	SearchSales(ctx context.Context, query string) ([]repository.Sale, error)
	InsertSale(ctx context.Context, sale repository.Sale) error
	ReplaceSale(ctx context.Context, id string, sale repository.Sale) error
	DeleteSales(ctx context.Context, id string) error
	GetDashboard(ctx context.Context, username string) (repository.DashboardInfo, error)
}
