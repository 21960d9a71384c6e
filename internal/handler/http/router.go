package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/globepay-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AppName        string
	AppEnv         string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	payrollHandler PayrollHandler,
	referenceHandler ReferenceHandler,
	reportHandler ReportHandler,
	assistantHandler AssistantHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("payroll backend\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.SignUp)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)

			// All admin resources require a recognized management role
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManagement)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Post("/bulk", employeeHandler.BulkUpload)
					r.Post("/import", employeeHandler.ImportCSV)

					r.Route("/{employeeID}", func(r chi.Router) {
						r.Get("/", employeeHandler.Get)
						r.Put("/", employeeHandler.Update)
						r.Patch("/status", employeeHandler.SetStatus)
					})
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/", payrollHandler.List)
					r.Post("/", payrollHandler.Create)
					r.Get("/pay-periods", payrollHandler.ListPayPeriods)
					r.Get("/types", payrollHandler.ListPayrollTypes)
					r.Get("/export", reportHandler.ExportPayrollCSV)
					r.Get("/summary", reportHandler.Summary)

					r.Route("/{payrollID}", func(r chi.Router) {
						r.Get("/", payrollHandler.Get)
						r.Put("/", payrollHandler.Update)
						r.Get("/payslip", reportHandler.PayslipPDF)

						// Global admin only
						r.Group(func(r chi.Router) {
							r.Use(middleware.RequireGlobalAdmin)
							r.Delete("/", payrollHandler.Delete)
						})
					})
				})

				r.Route("/reference", func(r chi.Router) {
					r.Get("/countries", referenceHandler.ListCountries)
					r.Get("/currencies", referenceHandler.ListCurrencies)
				})

				r.Post("/assistant/ask", assistantHandler.Ask)
			})
		})
	})

	return r
}
