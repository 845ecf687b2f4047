package http

import (
	"log/slog"

	"github.com/enkonix/hr-backend-go/internal/handler/http/middleware"
	"github.com/enkonix/hr-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Payroll      PayrollHandler
	Employee     EmployeeHandler
	Location     LocationHandler
	Notification NotificationHandler
}

func NewRouter(logger *slog.Logger, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
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
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/me", h.Attendance.GetMyMonth)
				r.Get("/me/summary", h.Attendance.GetMySummary)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Get("/", h.Attendance.ListByDate)
					r.Post("/summaries", h.Attendance.GenerateSummary)
					r.Get("/summaries/{employeeID}", h.Attendance.GetSummary)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/me", h.Leave.GetMyRequests)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Get("/", h.Leave.ListByMonth)
					r.Post("/decision", h.Leave.Decide)
					r.Get("/history/{employeeID}", h.Leave.GetHistory)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/payslips/me", h.Payroll.GetMyPayslip)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Put("/salary-profiles", h.Payroll.UpsertSalaryProfile)
					r.Get("/salary-profiles/{employeeID}", h.Payroll.GetSalaryProfile)
					r.Post("/payslips", h.Payroll.GeneratePayslip)
					r.Get("/payslips", h.Payroll.ListPayslips)
					r.Get("/payslips/{employeeID}", h.Payroll.GetPayslip)
					r.Get("/payslips/{employeeID}/export", h.Payroll.ExportPayslip)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", h.Employee.Get)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/locations", func(r chi.Router) {
				r.Get("/me", h.Location.GetMine)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Get("/", h.Location.List)
					r.Put("/", h.Location.Assign)
					r.Get("/{employeeID}", h.Location.Get)
				})
			})

			r.Get("/notifications/stream", h.Notification.Stream)
		})
	})

	return r
}
