package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dkarpov/teller/internal/bank"
	"github.com/dkarpov/teller/internal/config"
	"github.com/dkarpov/teller/internal/handlers"
	"github.com/dkarpov/teller/internal/service"
	"github.com/dkarpov/teller/internal/session"
	"github.com/dkarpov/teller/pkg/auth"
	"github.com/dkarpov/teller/pkg/idgen"
	"github.com/dkarpov/teller/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	bank *bank.Bank

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	hashService, err := auth.NewHashService(cfg.BcryptCost)
	if err != nil {
		zap.L().Error("hashing bootstrap failed: ", zap.Error(err))
		return fmt.Errorf("can't init pin hashing: %w", err)
	}
	jwtService, err := auth.NewJWTService(cfg.TokenSecret)
	if err != nil {
		zap.L().Error("token bootstrap failed: ", zap.Error(err))
		return fmt.Errorf("can't init token service: %w", err)
	}
	if err := selfCheck(hashService, jwtService); err != nil {
		zap.L().Error("bootstrap self check failed: ", zap.Error(err))
		return fmt.Errorf("bootstrap self check: %w", err)
	}

	a.cfg = cfg
	a.bank = bank.New(cfg.BankName, idgen.New(cfg.IDMaxAttempts), hashService)
	a.srv = service.New(a.bank, session.New(), jwtService, cfg.TokenTTL)
	a.api = handlers.New(a.srv, jwtService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("bank", cfg.BankName))
	return nil
}

// selfCheck proves the credential primitives work before the server accepts
// traffic: a broken hashing or signing setup must fail the process once, at
// startup, not on every request.
func selfCheck(hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) error {
	var g errgroup.Group
	g.Go(func() error {
		digest, err := hashService.HashPIN("0000")
		if err != nil {
			return fmt.Errorf("pin hashing unavailable: %w", err)
		}
		if !hashService.ComparePIN(digest, "0000") {
			return fmt.Errorf("pin digest does not verify")
		}
		return nil
	})
	g.Go(func() error {
		token, err := jwtService.GenerateJWT(1, time.Now().Add(time.Minute))
		if err != nil {
			return fmt.Errorf("token signing unavailable: %w", err)
		}
		if _, err := jwtService.ValidateToken(token); err != nil {
			return fmt.Errorf("token does not validate: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
