package router

import (
	"github.com/hireloop/hireloop-api/internal/application"
	"github.com/hireloop/hireloop-api/internal/container"
	pginfra "github.com/hireloop/hireloop-api/internal/infrastructure/postgres"
	handlers "github.com/hireloop/hireloop-api/internal/interface/http"
	"github.com/hireloop/hireloop-api/internal/router/modules"
)

// moduleDeps holds the shared services handed to each feature module.
type moduleDeps struct {
	Auth       *application.AuthService
	Candidates *application.CandidateService
	Companies  *application.CompanyService

	AuthHandler      *handlers.AuthHandler
	CandidateHandler *handlers.CandidateHandler
	CompanyHandler   *handlers.CompanyHandler
	CityHandler      *handlers.CityHandler
}

func buildDeps() moduleDeps {
	pool := container.GetPGPool()
	cfg := container.GetConfig()
	log := container.GetLogger()

	candidateRepo := pginfra.NewCandidateRepository(pool)
	companyRepo := pginfra.NewCompanyRepository(pool)
	locationRepo := pginfra.NewCompanyLocationRepository(pool)
	blacklistRepo := pginfra.NewBlacklistTokenRepository(pool)
	cityRepo := pginfra.NewCityRepository(pool)

	candidateSvc := application.NewCandidateService(
		candidateRepo,
		cityRepo,
		log,
		container.GetES(),
		cfg.ESCandidatesIndex,
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetRabbitPub(),
	)

	companySvc := application.NewCompanyService(companyRepo, locationRepo, cityRepo, log)

	authSvc := application.NewAuthService(
		candidateRepo,
		blacklistRepo,
		container.GetJWT(),
		container.GetRedis(),
		log,
	)

	return moduleDeps{
		Auth:       authSvc,
		Candidates: candidateSvc,
		Companies:  companySvc,

		AuthHandler:      handlers.NewAuthHandler(authSvc, candidateSvc, log, cfg.CookieDomain, cfg.CookieSecure),
		CandidateHandler: handlers.NewCandidateHandler(candidateSvc, log),
		CompanyHandler:   handlers.NewCompanyHandler(companySvc, log),
		CityHandler:      handlers.NewCityHandler(cityRepo),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	jwt := container.GetJWT()

	r.Add(modules.NewAuthModule(deps.AuthHandler, jwt, deps.Auth))
	r.Add(modules.NewCandidateModule(deps.CandidateHandler, jwt, deps.Auth))
	r.Add(modules.NewCompanyModule(deps.CompanyHandler, jwt, deps.Auth))
	r.Add(modules.NewCityModule(deps.CityHandler))
}
