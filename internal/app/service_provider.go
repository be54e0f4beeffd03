package app

import (
	"context"
	"errors"
	"net/http"

	adminAPI "scratch_backend/internal/api/admin"
	chainAPI "scratch_backend/internal/api/chain"
	fulfillmentAPI "scratch_backend/internal/api/fulfillment"
	gameAPI "scratch_backend/internal/api/game"
	"scratch_backend/internal/api/middleware"
	settlementAPI "scratch_backend/internal/api/settlement"
	"scratch_backend/internal/catalog"
	"scratch_backend/internal/client"
	"scratch_backend/internal/client/payout"
	"scratch_backend/internal/config"
	"scratch_backend/internal/config/env"
	"scratch_backend/internal/metrics"
	"scratch_backend/internal/repository"
	"scratch_backend/internal/repository/account_pg_repo"
	"scratch_backend/internal/repository/account_repo"
	"scratch_backend/internal/repository/claim_repo"
	"scratch_backend/internal/repository/override_repo"
	"scratch_backend/internal/repository/stats_repo"
	"scratch_backend/internal/service"
	"scratch_backend/internal/service/admin"
	"scratch_backend/internal/service/fulfillment"
	"scratch_backend/internal/service/game"
	"scratch_backend/internal/service/settlement"
	"scratch_backend/pkg/events"
	"scratch_backend/pkg/logger"
	"scratch_backend/pkg/random"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database, необязательна: без PG_DSN аккаунты живут в памяти
	pgConfig   config.PGConfig
	pgResolved bool
	dbClient   *pgxpool.Pool

	// Catalog and randomness
	catalogs catalog.Set
	rnd      random.Source

	// Repositories
	accountRepo  repository.AccountRepository
	overrideRepo repository.OverrideRepository
	claimRepo    *claim_repo.Repo
	statsRepo    *stats_repo.StatsRepo

	// Events
	natsConfig config.NATSConfig
	emitter    events.Emitter

	// Payout
	payoutConfig   config.PayoutConfig
	payoutResolved bool
	gateway        client.PayoutGateway

	// Services
	gameServ        service.GameService
	settlementServ  service.SettlementService
	fulfillmentServ service.FulfillmentService
	adminServ       service.AdminService

	// Handlers
	gameHand        *gameAPI.Handler
	settlementHand  *settlementAPI.Handler
	fulfillmentHand *fulfillmentAPI.Handler
	adminHand       *adminAPI.Handler
	chainHand       *chainAPI.Handler

	// Configs
	httpCfg      config.HTTPConfig
	jwtCfg       config.JWTConfig
	adminCfg     config.AdminConfig
	chainCfg     config.ChainConfig
	storageCfg   config.StorageConfig
	rateLimitCfg config.RateLimitConfig

	// Router and HTTP
	limiter *middleware.RateLimiter
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if !sp.pgResolved {
		cfg, err := env.NewPGConfig()
		if err != nil && !errors.Is(err, env.ErrPGNotConfigured) {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
		sp.pgResolved = true
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = account_pg_repo.EnsureSchema(ctx, dbc)
		if err != nil {
			panic("failed to apply db schema: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) Catalogs() catalog.Set {
	if sp.catalogs == nil {
		set, err := catalog.LoadFile(sp.StorageCfg().CatalogFile())
		if err != nil {
			panic("failed to load prize catalog: " + err.Error())
		}
		sp.catalogs = set
	}
	return sp.catalogs
}

func (sp *ServiceProvider) Random() random.Source {
	if sp.rnd == nil {
		sp.rnd = random.Crypto()
	}
	return sp.rnd
}

// AccountRepository postgres при заданном PG_DSN, иначе память процесса
func (sp *ServiceProvider) AccountRepository(ctx context.Context) repository.AccountRepository {
	if sp.accountRepo == nil {
		if sp.PgConfig() != nil {
			sp.accountRepo = account_pg_repo.NewAccountRepository(sp.DBClient(ctx), sp.TXManager(ctx))
		} else {
			logger.Warn("PG_DSN not set, accounts are kept in memory")
			sp.accountRepo = account_repo.NewAccountRepository()
		}
	}
	return sp.accountRepo
}

func (sp *ServiceProvider) OverrideRepository() repository.OverrideRepository {
	if sp.overrideRepo == nil {
		sp.overrideRepo = override_repo.NewOverrideRepository()
	}
	return sp.overrideRepo
}

func (sp *ServiceProvider) ClaimRepository() *claim_repo.Repo {
	if sp.claimRepo == nil {
		repo, err := claim_repo.Open(sp.StorageCfg().BadgerDir())
		if err != nil {
			panic("failed to open claim storage: " + err.Error())
		}
		sp.claimRepo = repo
	}
	return sp.claimRepo
}

func (sp *ServiceProvider) StatsRepository() *stats_repo.StatsRepo {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(stats_repo.DefaultWindowSize)
	}
	return sp.statsRepo
}

// Emitter публикует события в NATS, без NATS_URL события отбрасываются
func (sp *ServiceProvider) Emitter() events.Emitter {
	if sp.emitter == nil {
		cfg, err := env.NewNATSConfig()
		switch {
		case errors.Is(err, env.ErrNATSNotConfigured):
			sp.emitter = events.Nop()
			return sp.emitter
		case err != nil:
			panic("failed to get nats config: " + err.Error())
		}
		sp.natsConfig = cfg

		nc, err := events.Connect(cfg.URL())
		if err != nil {
			panic("failed to connect to nats: " + err.Error())
		}
		sp.emitter = events.NewEmitter(nc, cfg.SubjectPrefix())
	}
	return sp.emitter
}

func (sp *ServiceProvider) PayoutConfig() config.PayoutConfig {
	if !sp.payoutResolved {
		cfg, err := env.NewPayoutConfig()
		if err != nil && !errors.Is(err, env.ErrPayoutNotConfigured) {
			panic("failed to get payout config: " + err.Error())
		}
		sp.payoutConfig = cfg
		sp.payoutResolved = true
	}
	return sp.payoutConfig
}

// PayoutGateway nil, если шлюз не настроен. Тогда выплаты отвечают configuration_missing
func (sp *ServiceProvider) PayoutGateway() client.PayoutGateway {
	if sp.gateway == nil {
		cfg := sp.PayoutConfig()
		if cfg == nil {
			logger.Warn("PAYOUT_GATEWAY_URL not set, claims will be rejected")
			return nil
		}
		sp.gateway = payout.NewGateway(payout.Config{
			URL:           cfg.URL(),
			APIKey:        cfg.APIKey(),
			TokenContract: sp.ChainCfg().TokenContractAddress(),
			Decimals:      cfg.TokenDecimals(),
			Timeout:       cfg.Timeout(),
			RPS:           cfg.RPS(),
		})
	}
	return sp.gateway
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(
			sp.Catalogs(),
			sp.Random(),
			sp.AccountRepository(ctx),
			sp.OverrideRepository(),
			sp.StatsRepository(),
			sp.Emitter(),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) SettlementService(ctx context.Context) service.SettlementService {
	if sp.settlementServ == nil {
		cfg := settlement.Config{}
		if pc := sp.PayoutConfig(); pc != nil {
			cfg.ResolveTimeout = pc.ResolveTimeout()
		}
		sp.settlementServ = settlement.NewSettlementService(
			cfg,
			sp.PayoutGateway(),
			sp.AccountRepository(ctx),
			sp.StatsRepository(),
			sp.Emitter(),
		)
	}
	return sp.settlementServ
}

func (sp *ServiceProvider) FulfillmentService(ctx context.Context) service.FulfillmentService {
	if sp.fulfillmentServ == nil {
		sp.fulfillmentServ = fulfillment.NewFulfillmentService(
			sp.AccountRepository(ctx),
			sp.ClaimRepository(),
			sp.Emitter(),
		)
	}
	return sp.fulfillmentServ
}

func (sp *ServiceProvider) AdminService() service.AdminService {
	if sp.adminServ == nil {
		s, err := admin.NewAdminService(sp.AdminCfg(), sp.JWTCfg(), sp.OverrideRepository(), sp.StatsRepository())
		if err != nil {
			panic("failed to create admin service: " + err.Error())
		}
		sp.adminServ = s
	}
	return sp.adminServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{Serv: sp.GameService(ctx)})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) SettlementHandler(ctx context.Context) *settlementAPI.Handler {
	if sp.settlementHand == nil {
		sp.settlementHand = settlementAPI.NewHandler(settlementAPI.HandlerDeps{Serv: sp.SettlementService(ctx)})
	}
	return sp.settlementHand
}

func (sp *ServiceProvider) FulfillmentHandler(ctx context.Context) *fulfillmentAPI.Handler {
	if sp.fulfillmentHand == nil {
		sp.fulfillmentHand = fulfillmentAPI.NewHandler(fulfillmentAPI.HandlerDeps{Serv: sp.FulfillmentService(ctx)})
	}
	return sp.fulfillmentHand
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{
			Serv:            sp.AdminService(),
			FulfillmentServ: sp.FulfillmentService(ctx),
		})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) ChainHandler() *chainAPI.Handler {
	if sp.chainHand == nil {
		sp.chainHand = chainAPI.NewHandler(chainAPI.HandlerDeps{Cfg: sp.ChainCfg()})
	}
	return sp.chainHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AdminCfg() config.AdminConfig {
	if sp.adminCfg == nil {
		cfg, err := env.NewAdminConfig()
		if err != nil {
			panic("failed to get admin config: " + err.Error())
		}
		sp.adminCfg = cfg
	}
	return sp.adminCfg
}

func (sp *ServiceProvider) ChainCfg() config.ChainConfig {
	if sp.chainCfg == nil {
		cfg, err := env.NewChainConfig()
		if err != nil {
			panic("failed to get chain config: " + err.Error())
		}
		sp.chainCfg = cfg
	}
	return sp.chainCfg
}

func (sp *ServiceProvider) RateLimitCfg() config.RateLimitConfig {
	if sp.rateLimitCfg == nil {
		cfg, err := env.NewRateLimitConfig()
		if err != nil {
			panic("failed to get rate limit config: " + err.Error())
		}
		sp.rateLimitCfg = cfg
	}
	return sp.rateLimitCfg
}

func (sp *ServiceProvider) RateLimiter() *middleware.RateLimiter {
	if sp.limiter == nil {
		cfg := sp.RateLimitCfg()
		sp.limiter = middleware.NewRateLimiter(cfg.RPS(), cfg.Burst())
	}
	return sp.limiter
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chiMiddleware.Recoverer)
		r.Use(metrics.InstrumentHandler)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   sp.HTTPCfg().AllowedOrigins(),
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Handle("/metrics", metrics.Handler())

		gameHandler := sp.GameHandler(ctx)
		settlementHandler := sp.SettlementHandler(ctx)
		fulfillmentHandler := sp.FulfillmentHandler(ctx)
		adminHandler := sp.AdminHandler(ctx)
		chainHandler := sp.ChainHandler()

		r.Route("/api", func(rr chi.Router) {
			rr.Use(sp.RateLimiter().Middleware)

			rr.Get("/config", chainHandler.Config)

			// Game endpoints
			rr.Post("/verify-payment", gameHandler.VerifyPayment)
			rr.Get("/user-info", gameHandler.UserInfo)
			rr.Post("/play", gameHandler.Play)
			rr.Post("/claim-pity", gameHandler.ClaimPity)

			// Settlement and fulfillment endpoints
			rr.Post("/claim", settlementHandler.Claim)
			rr.Post("/submit-address", fulfillmentHandler.Submit)

			// Admin endpoints
			rr.Route("/admin", func(ar chi.Router) {
				ar.Post("/login", adminHandler.Login)
				ar.Group(func(pr chi.Router) {
					pr.Use(middleware.AdminAuth(sp.JWTCfg().AccessTokenSecretKey()))
					pr.Get("/status", adminHandler.Status)
					pr.Post("/override", adminHandler.Override)
					pr.Post("/trigger-gold-bean", adminHandler.Override)
					pr.Get("/claims", adminHandler.Claims)
					pr.Get("/stats", adminHandler.Stats)
				})
			})
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает ресурсы в обратном порядке создания
func (sp *ServiceProvider) Close() {
	if sp.settlementServ != nil {
		sp.settlementServ.Close()
	}
	if sp.emitter != nil {
		sp.emitter.Close()
	}
	if sp.claimRepo != nil {
		if err := sp.claimRepo.Close(); err != nil {
			logger.Error("failed to close claim storage", "error", err)
		}
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
