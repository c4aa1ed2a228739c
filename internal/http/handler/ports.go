package handler

import (
	"context"
	"net/http"

	"github.com/VinBdev/Predict-Your-Sales/internal/core"
	"github.com/VinBdev/Predict-Your-Sales/internal/http/view"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TrackerService . TrackerService
type TrackerService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.UserRecord, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (core.UserRecord, error)
	Dashboard(ctx context.Context, username string) (core.DashboardRecord, error)
	UserRole(ctx context.Context, username string) (string, error)
	ListSales(ctx context.Context) ([]core.SaleRecord, error)
	SearchSales(ctx context.Context, query string) ([]core.SaleRecord, error)
	CreateSale(ctx context.Context, username string, msg core.SaleMessage) (core.SaleRecord, error)
	GetSale(ctx context.Context, id string) (core.SaleRecord, error)
	ReplaceSale(ctx context.Context, id string, msg core.SaleMessage) error
	DeleteSale(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]core.UserRecord, error)
	CreateUser(ctx context.Context, msg core.RegisterMessage) (core.UserRecord, error)
	GetUser(ctx context.Context, id string) (core.UserRecord, error)
	ReplaceUser(ctx context.Context, id string, msg core.UserUpdateMessage) error
	DeleteUser(ctx context.Context, id string) error
}

//counterfeiter:generate -o fake -fake-name SessionManager . SessionManager
type SessionManager interface {
	Login(w http.ResponseWriter, username string) error
	Logout(w http.ResponseWriter)
	CurrentUser(r *http.Request) (string, bool)
	Flash(w http.ResponseWriter, message string)
	PopFlash(w http.ResponseWriter, r *http.Request) (string, bool)
}

//counterfeiter:generate -o fake -fake-name Renderer . Renderer
type Renderer interface {
	Render(w http.ResponseWriter, name string, data view.Data) error
}
