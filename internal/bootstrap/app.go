package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"airesume-backend/internal/analyses"
	googleauth "airesume-backend/internal/auth"
	"airesume-backend/internal/llm"
	openai "airesume-backend/internal/llm/openai"
	"airesume-backend/internal/resumes"
	"airesume-backend/internal/shared/config"
	"airesume-backend/internal/shared/server"
	"airesume-backend/internal/shared/storage/db"
	"airesume-backend/internal/shared/storage/object"
	localstore "airesume-backend/internal/shared/storage/object/local"
	s3store "airesume-backend/internal/shared/storage/object/s3"
	"airesume-backend/internal/templates"
	"airesume-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	ResumesRepo   resumes.ProjectsRepo
	AnalysesRepo  analyses.RunsRepo
	TemplatesRepo templates.TemplatesRepo
	UsersRepo     users.UsersRepo

	ResumesService   *resumes.Service
	AnalysesService  *analyses.Service
	TemplatesService *templates.Service
	UsersService     *users.Service
	GoogleAuth       *googleauth.GoogleService
}

// Build prepares dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		ResumesHandler:  resumes.NewHandler(app.ResumesService),
		AnalysisHandler: analyses.NewHandler(app.AnalysesService),
		TemplateHandler: templates.NewHandler(app.TemplatesService, app.Config.AdminEmails),
		UsersHandler:    users.NewHandler(app.UsersService, isProduction(cfg.Env)),
		GoogleAuth:      app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) error {
	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.AnalysesRepo = &analyses.PGRepo{DB: app.DB}
		app.TemplatesRepo = &templates.PGRepo{DB: app.DB}
		app.UsersRepo = &users.PGRepo{DB: app.DB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.AnalysesRepo = analyses.NewMemoryRepo()
		app.TemplatesRepo = templates.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" {
		openaiClient, err := openai.NewClient(app.Config.OpenAIAPIKey, app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = openaiClient
	}

	app.ResumesService = &resumes.Service{Repo: app.ResumesRepo}
	app.AnalysesService = &analyses.Service{Repo: app.AnalysesRepo, LLM: llmClient}
	app.TemplatesService = &templates.Service{Repo: app.TemplatesRepo, Store: app.Store}
	app.UsersService = &users.Service{Repo: app.UsersRepo}
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
	)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func isProduction(env string) bool {
	return strings.EqualFold(strings.TrimSpace(env), "production")
}
