package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(env string, employeeHandler EmployeeHandler, attendanceHandler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-lite"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	// Any origin, any method, any header: the service has no access
	// restriction at this layer.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"HRMS Lite API"}`))
	})

	r.Route("/employees", func(r chi.Router) {
		r.Post("/", employeeHandler.CreateEmployee)
		r.Get("/", employeeHandler.ListEmployees)
		r.Delete("/{employee_id}", employeeHandler.DeleteEmployee)
	})

	r.Route("/attendance", func(r chi.Router) {
		r.Post("/", attendanceHandler.MarkAttendance)
		r.Get("/", attendanceHandler.ListAllAttendance)
		r.Get("/{employee_id}", attendanceHandler.GetEmployeeAttendance)
	})

	return r
}
