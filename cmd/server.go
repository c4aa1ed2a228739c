package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/VinBdev/Predict-Your-Sales/internal/config"
	"github.com/VinBdev/Predict-Your-Sales/internal/core"
	"github.com/VinBdev/Predict-Your-Sales/internal/db"
	"github.com/VinBdev/Predict-Your-Sales/internal/http/handler"
	"github.com/VinBdev/Predict-Your-Sales/internal/http/handler/middleware"
	"github.com/VinBdev/Predict-Your-Sales/internal/http/server"
	"github.com/VinBdev/Predict-Your-Sales/internal/http/view"
	"github.com/VinBdev/Predict-Your-Sales/internal/repository"
	tokenIssuer "github.com/VinBdev/Predict-Your-Sales/pkg/jwt"
	"github.com/VinBdev/Predict-Your-Sales/pkg/log"
	"github.com/VinBdev/Predict-Your-Sales/pkg/session"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("predict-your-sales", zapcore.InfoLevel)

	// a local .env is optional; real deployments set the environment
	_ = godotenv.Load()

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewTrackerRepository(dbConn)

	if err := repo.MigrateAndSeed(); err != nil {
		logger.Errorw("failed to migrate collections", "error", err)
		return err
	}

	// session manager over the signed-cookie issuer
	jwtService := tokenIssuer.NewJWTService([]byte(config.SessionSecret))
	sessions := session.NewManager(jwtService)

	views, err := view.NewHTMLRenderer()
	if err != nil {
		logger.Errorw("failed to load views", "error", err)
		return err
	}

	// tracker
	tracker := core.NewTracker(logger, repo)

	// handler
	trackerHlr := handler.NewTrackerHandler(logger, sessions, views, tracker)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Home, trackerHlr.HandleGetSales)
	mux.HandleFunc(handler.GetSales, trackerHlr.HandleGetSales)
	mux.HandleFunc(handler.Search, trackerHlr.HandleSearch)
	mux.HandleFunc(handler.Register, trackerHlr.HandleRegister)
	mux.HandleFunc(handler.Login, trackerHlr.HandleLogin)
	mux.HandleFunc(handler.Dashboard, trackerHlr.HandleDashboard)
	mux.HandleFunc(handler.Logout, trackerHlr.HandleLogout)
	mux.HandleFunc(handler.NewSale, trackerHlr.HandleNewSale)
	mux.HandleFunc(handler.EditSale, trackerHlr.HandleEditSale)
	mux.HandleFunc(handler.DeleteSale, trackerHlr.HandleDeleteSale)
	mux.HandleFunc(handler.GetUsers, trackerHlr.HandleGetUsers)
	mux.HandleFunc(handler.NewUser, trackerHlr.HandleNewUser)
	mux.HandleFunc(handler.EditUser, trackerHlr.HandleEditUser)
	mux.HandleFunc(handler.DeleteUser, trackerHlr.HandleDeleteUser)

	srv := server.NewHTTP(logger, hdlr, config.BindAddr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
