package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/oos-software/hr-backend-go/internal/handler/http/middleware"
	"github.com/oos-software/hr-backend-go/internal/pkg/jwt"
)

func NewRouter(
	frontendURL string,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	invoiceHandler InvoiceHandler,
	contractHandler ContractHandler,
	companyHandler CompanyHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Registration creates accounts with any role, so admin only.
			r.With(middleware.RequireAdmin).Post("/auth/register", authHandler.Register)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Patch("/{id}/status", employeeHandler.UpdateStatus)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListByMonth)
				r.Get("/employees/{employeeID}", attendanceHandler.ListByEmployeeMonth)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", attendanceHandler.Upsert)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				// A user can read their own payslip; the handler enforces
				// ownership. Everything else is manager territory.
				r.Get("/{employeeID}/{month}/payslip", payrollHandler.GetPayslip)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", payrollHandler.GetPayroll)
					r.Get("/{employeeID}/{month}/bonus", payrollHandler.GetBonus)
					r.Put("/{employeeID}/{month}/bonus", payrollHandler.SaveBonus)
					r.Post("/{employeeID}/{month}/payment", payrollHandler.ConfirmPayment)
				})
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Get("/", invoiceHandler.List)
				r.Get("/{id}", invoiceHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", invoiceHandler.Create)
					r.Put("/{id}", invoiceHandler.Update)
					r.Patch("/{id}/paid", invoiceHandler.MarkPaid)
					r.Delete("/{id}", invoiceHandler.Delete)
				})
			})

			r.Route("/contracts", func(r chi.Router) {
				r.Get("/", contractHandler.List)
				r.Get("/{id}", contractHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", contractHandler.Create)
					r.Patch("/{id}/status", contractHandler.UpdateStatus)
					r.Delete("/{id}", contractHandler.Delete)
				})
			})

			r.Route("/company", func(r chi.Router) {
				r.Get("/", companyHandler.Get)
				r.With(middleware.RequireAdmin).Put("/", companyHandler.Update)
			})
		})
	})
	return r
}
