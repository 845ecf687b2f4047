package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/enkonix/hr-backend-go/internal/config"
	appHTTP "github.com/enkonix/hr-backend-go/internal/handler/http"
	"github.com/enkonix/hr-backend-go/internal/pkg/cron"
	"github.com/enkonix/hr-backend-go/internal/pkg/database"
	"github.com/enkonix/hr-backend-go/internal/pkg/email"
	"github.com/enkonix/hr-backend-go/internal/pkg/jwt"
	"github.com/enkonix/hr-backend-go/internal/pkg/sse"
	"github.com/enkonix/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/enkonix/hr-backend-go/internal/service/attendance"
	authService "github.com/enkonix/hr-backend-go/internal/service/auth"
	employeeService "github.com/enkonix/hr-backend-go/internal/service/employee"
	leaveService "github.com/enkonix/hr-backend-go/internal/service/leave"
	locationService "github.com/enkonix/hr-backend-go/internal/service/location"
	payrollService "github.com/enkonix/hr-backend-go/internal/service/payroll"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveHistoryRepo := postgresql.NewLeaveHistoryRepository(db)
	salaryProfileRepo := postgresql.NewSalaryProfileRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	zoneRepo := postgresql.NewZoneAssignmentRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService := email.NewEmailService(cfg.SMTP)
	hub := sse.NewHub()

	authSvc := authService.NewAuthService(userRepo, jwtService, logger)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, summaryRepo, zoneRepo, logger)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, leaveHistoryRepo, attendanceRepo, summaryRepo, hub, emailService, logger)
	payrollSvc := payrollService.NewPayrollService(db, cfg.Payroll, salaryProfileRepo, payslipRepo, summaryRepo, logger)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, logger)
	locationSvc := locationService.NewLocationService(zoneRepo, employeeRepo, logger)

	scheduler := cron.NewScheduler()
	refreshInterval, err := time.ParseDuration(cfg.Cron.SummaryRefreshInterval)
	if err != nil {
		fmt.Println("Invalid CRON_SUMMARY_REFRESH_INTERVAL:", err)
		return
	}
	scheduler.AddJob("summary-refresh", refreshInterval,
		attendanceService.NewSummaryRefreshJob(attendanceSvc, employeeRepo, logger))
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(logger, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Location:     appHTTP.NewLocationHandler(locationSvc),
		Notification: appHTTP.NewNotificationHandler(hub),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
