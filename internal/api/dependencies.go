package api

import (
	"os"

	"skylogger/dronelog/internal/common"
	"skylogger/dronelog/internal/db"
	"skylogger/dronelog/internal/db/repositories"
	"skylogger/dronelog/internal/logging"
	"skylogger/dronelog/internal/metrics"
	"skylogger/dronelog/internal/services"
)

type Repositories struct {
	Store *repositories.RecordStore
	Users *repositories.UserRepository
}

type Services struct {
	Cache     common.CacheInterface
	Session   *common.SessionService
	Token     *common.TokenService
	Aircraft  *services.AircraftService
	FlightLog *services.FlightLogService
	Stats     *services.StatsService
	User      *services.UserService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires repositories and services against the initialized
// database handles. REDIS_HOST switches the cache/session backend to Redis;
// otherwise everything stays in process memory.
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Store: repositories.NewRecordStore(db.DB),
		Users: repositories.NewUserRepository(db.ORM),
	}

	var cacheSvc common.CacheInterface
	if os.Getenv("REDIS_HOST") != "" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			return nil, err
		}
		cacheSvc = redisCache
		logging.Info("Cache backend: Redis")
	} else {
		cacheSvc = common.NewCacheService(300, 600)
		logging.Info("Cache backend: in-memory")
	}

	secret := os.Getenv("SESSION_JWT_SECRET")
	if secret == "" {
		secret = "dronelog-dev-secret"
		logging.Warn("SESSION_JWT_SECRET not set, using development secret")
	}

	sessionSvc := common.NewSessionService(cacheSvc)
	tokenSvc := common.NewTokenService([]byte(secret))
	statsSvc := services.NewStatsService(repos.Store, cacheSvc)

	svcs := &Services{
		Cache:     cacheSvc,
		Session:   sessionSvc,
		Token:     tokenSvc,
		Aircraft:  services.NewAircraftService(repos.Store),
		FlightLog: services.NewFlightLogService(repos.Store, statsSvc, metricsReg),
		Stats:     statsSvc,
		User:      services.NewUserService(repos.Users, sessionSvc, tokenSvc),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}
