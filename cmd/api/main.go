package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/globepay-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/globepay-hr/payroll-backend-go/internal/handler/http"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/database"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/genai"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/oauth"
	"github.com/globepay-hr/payroll-backend-go/internal/repository/postgresql"
	assistantService "github.com/globepay-hr/payroll-backend-go/internal/service/assistant"
	authService "github.com/globepay-hr/payroll-backend-go/internal/service/auth"
	employeeService "github.com/globepay-hr/payroll-backend-go/internal/service/employee"
	payrollService "github.com/globepay-hr/payroll-backend-go/internal/service/payroll"
	referenceService "github.com/globepay-hr/payroll-backend-go/internal/service/reference"
	reportService "github.com/globepay-hr/payroll-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db, "migrations"); err != nil {
		log.Fatal("Failed to apply migrations:", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	referenceRepo := postgresql.NewReferenceRepository(db)
	queryRunner := postgresql.NewAssistantQueryRunner(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var genaiClient *genai.Client
	if cfg.Gemini.APIKey != "" {
		genaiClient, err = genai.NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Models, slog.Default())
		if err != nil {
			log.Fatal("Failed to initialize Gemini client:", err)
		}
	} else {
		slog.Warn("GEMINI_API_KEY not set, assistant endpoint disabled")
	}

	authSvc := authService.NewAuthService(db, userRepo, jwtService, googleService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo)
	referenceSvc := referenceService.NewReferenceService(db, referenceRepo)
	reportSvc := reportService.NewReportService(payrollSvc, payrollRepo)
	assistantSvc := assistantService.NewAssistantService(genaiClient, queryRunner, slog.Default())

	if err := referenceSvc.SeedDefaults(context.Background()); err != nil {
		log.Fatal("Failed to seed reference data:", err)
	}

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	referenceHandler := appHTTP.NewReferenceHandler(referenceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	assistantHandler := appHTTP.NewAssistantHandler(assistantSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        "globepay-payroll",
			AppEnv:         cfg.App.Env,
			AllowedOrigins: []string{cfg.App.FrontendURL},
		},
		jwtService,
		authHandler,
		employeeHandler,
		payrollHandler,
		referenceHandler,
		reportHandler,
		assistantHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
