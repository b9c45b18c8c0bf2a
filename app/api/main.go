package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/hbarmarket/app/bootstrap"
	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/delivery"
	"github.com/x-xyz/hbarmarket/base/env"
	"github.com/x-xyz/hbarmarket/base/log"
	bValidator "github.com/x-xyz/hbarmarket/base/validator"
	mmiddleware "github.com/x-xyz/hbarmarket/middleware"
	accountService "github.com/x-xyz/hbarmarket/service/account"
	account_delivery "github.com/x-xyz/hbarmarket/stores/account/delivery/http"
	approval_delivery "github.com/x-xyz/hbarmarket/stores/approval/delivery/http"
	auth_delivery "github.com/x-xyz/hbarmarket/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/hbarmarket/stores/auth/delivery/http/middleware"
	collection_delivery "github.com/x-xyz/hbarmarket/stores/collection/delivery/http"
	hc_delivery "github.com/x-xyz/hbarmarket/stores/healthcheck/delivery/http"
	listing_delivery "github.com/x-xyz/hbarmarket/stores/listing/delivery/http"
	portfolio_delivery "github.com/x-xyz/hbarmarket/stores/portfolio/delivery/http"
	txn_delivery "github.com/x-xyz/hbarmarket/stores/transaction/delivery/http"
)

func init() {
	if err := bootstrap.ReadConfig(env.ConfigFile(bootstrap.DefaultConfigFile)); err != nil {
		panic(err)
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		log.Log().WithField("err", err).Panic("failed to load config")
	}

	// requests arrive already authenticated as the operator, so every
	// signature is approved without a prompt
	app := bootstrap.MustBuild(context, cfg, accountService.AutoApprover{})
	context.WithField("address", app.Provider.Address()).Info("account ready")

	am := auth_middleware.New(app.Auth, app.Provider.Address())

	hc_delivery.New(e, app.HealthCheck)
	auth_delivery.New(e, app.Auth)
	account_delivery.New(e, app.Account)
	txn_delivery.New(e, app.Txn)
	approval_delivery.New(e, app.Approval, am)
	listing_delivery.New(e, app.Listing, am)
	collection_delivery.New(e, app.Collection, am)
	portfolio_delivery.New(e, app.Portfolio, app.Provider.Address())

	e.GET("/check", func(c echo.Context) error {
		a, _ := auth_middleware.Address(c)
		return delivery.MakeJsonResp(c, http.StatusOK, map[string]interface{}{
			"address":  a,
			"operator": a.Equals(app.Provider.Address()),
		})
	}, am.Auth())

	go func() {
		if err := e.Start(cfg.ServerAddress); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")

	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	if err := app.Background.Wait(ctx); err != nil {
		log.Log().WithField("err", err).Warn("receipt watches still running at exit")
	}
}
