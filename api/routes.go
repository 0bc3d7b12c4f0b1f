package api

import (
	"github.com/gorilla/mux"

	"github.com/fieldsolutions/backend/internal/config"
	"github.com/fieldsolutions/backend/internal/db"
	"github.com/fieldsolutions/backend/internal/models"
	"github.com/fieldsolutions/backend/internal/repository/sqlite"
	"github.com/fieldsolutions/backend/internal/schemas"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, d *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// System endpoints
	system := NewSystemHandler(cfg, d)
	r.HandleFunc("/", system.RootHandler).Methods("GET")
	r.HandleFunc("/health", system.HealthHandler).Methods("GET")
	r.HandleFunc("/readiness", system.ReadinessHandler).Methods("GET")
	r.HandleFunc("/version", system.VersionHandler(version, buildTime)).Methods("GET")

	// Resource endpoints
	apiV1 := r.PathPrefix("/api").Subrouter()

	accounts := NewResourceHandler[schemas.AccountCreate, schemas.AccountUpdate, models.Account](
		"account", sqlite.Accounts(d, logger), "is_active")
	accounts.Register(apiV1, "/accounts")

	technicians := NewResourceHandler[schemas.TechnicianCreate, schemas.TechnicianUpdate, models.Technician](
		"technician", sqlite.Technicians(d, logger), "account_id", "is_active")
	technicians.Register(apiV1, "/technicians")

	jobs := NewResourceHandler[schemas.JobCreate, schemas.JobUpdate, models.Job](
		"job", sqlite.Jobs(d, logger), "account_id", "technician_id", "status")
	jobs.Register(apiV1, "/jobs")

	invoices := NewResourceHandler[schemas.InvoiceCreate, schemas.InvoiceUpdate, models.Invoice](
		"invoice", sqlite.Invoices(d, logger), "account_id", "job_id", "status")
	invoices.Register(apiV1, "/invoices")

	return r
}
