// Package operations provides the operations bounded context module.
package operations

import (
	"time"

	apphttp "operations_backend/internal/http"
	"operations_backend/internal/operations/handler"
	"operations_backend/internal/operations/repository"
	"operations_backend/internal/operations/service"
	"operations_backend/internal/operations/transport"
	"operations_backend/platform/config"
	"operations_backend/platform/logger"
	"operations_backend/platform/validator"
)

// SampleEirCode is the Eircode of the operation seeded at startup.
const SampleEirCode = "EIRCODE"

// Module is the operations bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the operations module. When seeding is
// enabled the store starts with operation 1 dated today.
func NewModule(cfg config.OperationsConfig, lookup service.AddressLookup, val *validator.Validator, now service.Clock, log *logger.Logger) *Module {
	if now == nil {
		now = time.Now
	}

	var seed []repository.Operation
	if cfg.GetSeedSampleOperation() {
		seed = append(seed, repository.Operation{ID: 1, Date: transport.NewDate(now()).Time, EirCode: SampleEirCode})
	}
	repo := repository.NewMemory(seed...)

	svc := service.New(repo, lookup, now, log)

	return &Module{handler: handler.New(svc, val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "operations"
}

// RegisterRoutes mounts operation routes on the root group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Root)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
