package main

import (
	"fmt"
	"net/http"

	"github.com/kintai-cloud/kintai-backend-go/internal/config"
	"github.com/kintai-cloud/kintai-backend-go/internal/domain/payroll"
	appHTTP "github.com/kintai-cloud/kintai-backend-go/internal/handler/http"
	"github.com/kintai-cloud/kintai-backend-go/internal/pkg/cron"
	"github.com/kintai-cloud/kintai-backend-go/internal/pkg/database"
	"github.com/kintai-cloud/kintai-backend-go/internal/pkg/jwt"
	"github.com/kintai-cloud/kintai-backend-go/internal/pkg/oauth"
	"github.com/kintai-cloud/kintai-backend-go/internal/pkg/sheet"
	"github.com/kintai-cloud/kintai-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kintai-cloud/kintai-backend-go/internal/service/attendance"
	authService "github.com/kintai-cloud/kintai-backend-go/internal/service/auth"
	payrollService "github.com/kintai-cloud/kintai-backend-go/internal/service/payroll"
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

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	breakRepo := postgresql.NewBreakRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.ClientID != "" {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	standardHours := payroll.StandardHoursTable{
		Default: cfg.Payroll.StandardMonthlyHours,
		ByMonth: cfg.Payroll.StandardHoursByMonth,
	}
	leavePolicy := payroll.LeavePolicy{
		PaidLeaveMinutes:      cfg.Payroll.PaidLeaveMinutes,
		ScheduledLeaveMinutes: cfg.Payroll.ScheduledLeaveMinutes,
		SpecialLeaveMinutes:   cfg.Payroll.SpecialLeaveMinutes,
		HalfDayMinutes:        cfg.Payroll.HalfDayMinutes,
	}

	authSvc := authService.NewAuthService(userRepo, jwtService, googleService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, breakRepo)
	payrollSvc := payrollService.NewPayrollService(attendanceRepo, breakRepo, standardHours, leavePolicy)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService, googleService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(jwtService, authHandler, attendanceHandler, payrollHandler)

	// The workbook import job only runs when a workbook is configured; fresh
	// deployments without the legacy spreadsheet skip it entirely.
	scheduler := cron.NewScheduler()
	if cfg.Sheet.WorkbookPath != "" {
		workbook := sheet.NewWorkbook(cfg.Sheet.WorkbookPath)
		importJobs := cron.NewImportJobs(workbook, cfg.Sheet.AttendanceSheet, cfg.Sheet.BreakSheet, db)
		importJobs.RegisterJobs(scheduler, cfg.Sheet.ImportInterval)
	}
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
