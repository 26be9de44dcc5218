package main

import (
	"fmt"
	"net/http"

	"github.com/hrmslite/hrms-backend-go/internal/config"
	appHTTP "github.com/hrmslite/hrms-backend-go/internal/handler/http"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/postgrest"
	postgrestRepo "github.com/hrmslite/hrms-backend-go/internal/repository/postgrest"
	attendanceService "github.com/hrmslite/hrms-backend-go/internal/service/attendance"
	employeeService "github.com/hrmslite/hrms-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	storeClient := postgrest.NewClient(cfg.RestURL(), cfg.Store.Key, cfg.Store.Timeout)

	employeeRepo := postgrestRepo.NewEmployeeRepository(storeClient)
	attendanceRepo := postgrestRepo.NewAttendanceRepository(storeClient)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(cfg.App.Env, employeeHandler, attendanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
