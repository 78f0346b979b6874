package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "office-nexus-backend/internal/adapter/http"
	"office-nexus-backend/internal/adapter/middleware"
	"office-nexus-backend/internal/adapter/repository/mysql"
	"office-nexus-backend/internal/config"
	"office-nexus-backend/internal/infrastructure/cache"
	"office-nexus-backend/internal/infrastructure/db"
	capitaluc "office-nexus-backend/internal/usecase/capital"
	shareuc "office-nexus-backend/internal/usecase/share"
	tbuc "office-nexus-backend/internal/usecase/trialbalance"
	withdrawaluc "office-nexus-backend/internal/usecase/withdrawal"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	lockRepo := mysql.NewCapitalRepository(gdb)
	shareRepo := mysql.NewShareRepository(gdb)
	ledgerRepo := mysql.NewLedgerRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	capitalUC := capitaluc.NewUsecase(lockRepo)
	withdrawalUC := withdrawaluc.NewUsecase(uow, cfg.PenaltyRatePct)
	shareUC := shareuc.NewUsecase(shareRepo)
	tbUC := tbuc.NewUsecase(ledgerRepo)

	h := httpadp.NewHandler()
	capitalH := httpadp.NewCapitalHandler(capitalUC)
	withdrawalH := httpadp.NewWithdrawalHandler(withdrawalUC)
	shareH := httpadp.NewShareHandler(shareUC)
	ledgerH := httpadp.NewLedgerHandler(tbUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	v1 := e.Group("/api/v1", idemp)

	v1.POST("/capital-locks", capitalH.LockCapital)
	v1.GET("/capital-locks/:lock_id", capitalH.GetLock)
	v1.GET("/companies/:company_id/capital-locks", capitalH.ListCompanyLocks)
	v1.POST("/capital-locks/:lock_id/mature", capitalH.MatureLock)

	v1.POST("/capital-locks/:lock_id/withdrawals", withdrawalH.RequestWithdrawal)
	v1.POST("/withdrawals/:request_id/resolve", withdrawalH.ResolveWithdrawal)
	v1.GET("/withdrawals/:request_id", withdrawalH.GetWithdrawal)

	v1.POST("/share-transfers", shareH.TransferShares)
	v1.GET("/companies/:company_id/positions", shareH.ListCompanyPositions)

	v1.POST("/companies/:company_id/ledger-entries", ledgerH.PostEntries)
	v1.GET("/companies/:company_id/trial-balance", ledgerH.GetTrialBalance)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Background sweeper flips matured locks to unlocked even when no one
	// reads them.
	go func() {
		tick := time.NewTicker(time.Duration(cfg.SweepIntervalSecs) * time.Second)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tick.C:
				n, err := capitalUC.MaturitySweep(ctx, time.Now().UTC())
				if err != nil {
					log.Printf("maturity sweep: %v", err)
					continue
				}
				if n > 0 {
					log.Printf("maturity sweep: unlocked %d lock(s)", n)
				}
			}
		}
	}()

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Println(err)
	}
}
