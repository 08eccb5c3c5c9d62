package main

import (
	"fmt"
	"net/http"

	"github.com/worklens-hq/worklens-backend-go/internal/config"
	appHTTP "github.com/worklens-hq/worklens-backend-go/internal/handler/http"
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/cron"
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/database"
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/jwt"
	"github.com/worklens-hq/worklens-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worklens-hq/worklens-backend-go/internal/service/attendance"
	serviceAuth "github.com/worklens-hq/worklens-backend-go/internal/service/auth"
	requestService "github.com/worklens-hq/worklens-backend-go/internal/service/request"
	scheduleService "github.com/worklens-hq/worklens-backend-go/internal/service/schedule"
	statusService "github.com/worklens-hq/worklens-backend-go/internal/service/status"
	userService "github.com/worklens-hq/worklens-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	factRepo := postgresql.NewFactRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)
	weeklyOffRepo := postgresql.NewWeeklyOffRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(userRepo, refreshTokenRepo, jwtService)
	checkSvc := attendanceService.NewCheckService(factRepo, employeeRepo)
	calendarSvc := statusService.NewCalendarService(factRepo, recordRepo, weeklyOffRepo, employeeRepo)
	recordSvc := requestService.NewRecordService(recordRepo)
	weeklyOffSvc := scheduleService.NewWeeklyOffService(weeklyOffRepo, employeeRepo)
	userSvc := userService.NewUserService(userRepo, employeeRepo, db)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(checkSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	requestHandler := appHTTP.NewRequestHandler(recordSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(weeklyOffSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.FrontendURL,
		authHandler,
		attendanceHandler,
		calendarHandler,
		requestHandler,
		scheduleHandler,
		userHandler,
	)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(factRepo, refreshTokenRepo)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
