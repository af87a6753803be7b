package main

import (
	"fmt"
	"net/http"

	"github.com/oos-software/hr-backend-go/internal/config"
	appHTTP "github.com/oos-software/hr-backend-go/internal/handler/http"
	"github.com/oos-software/hr-backend-go/internal/pkg/database"
	"github.com/oos-software/hr-backend-go/internal/pkg/jwt"
	"github.com/oos-software/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/oos-software/hr-backend-go/internal/service/attendance"
	authService "github.com/oos-software/hr-backend-go/internal/service/auth"
	companyService "github.com/oos-software/hr-backend-go/internal/service/company"
	contractService "github.com/oos-software/hr-backend-go/internal/service/contract"
	employeeService "github.com/oos-software/hr-backend-go/internal/service/employee"
	invoiceService "github.com/oos-software/hr-backend-go/internal/service/invoice"
	payrollService "github.com/oos-software/hr-backend-go/internal/service/payroll"
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

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	settingsRepo := postgresql.NewCompanySettingsRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	auth := authService.NewAuthService(db, userRepo, jwtService, jwtRepo)
	employees := employeeService.NewEmployeeService(employeeRepo)
	attendance := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payroll := payrollService.NewPayrollService(db, employeeRepo, attendanceRepo, bonusRepo, invoiceRepo, settingsRepo)
	invoices := invoiceService.NewInvoiceService(invoiceRepo)
	contracts := contractService.NewContractService(contractRepo, employeeRepo)
	company := companyService.NewSettingsService(settingsRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, auth)
	employeeHandler := appHTTP.NewEmployeeHandler(employees)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendance)
	payrollHandler := appHTTP.NewPayrollHandler(payroll)
	invoiceHandler := appHTTP.NewInvoiceHandler(invoices)
	contractHandler := appHTTP.NewContractHandler(contracts)
	companyHandler := appHTTP.NewCompanyHandler(company)

	router := appHTTP.NewRouter(
		cfg.App.FrontendURL,
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		invoiceHandler,
		contractHandler,
		companyHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
