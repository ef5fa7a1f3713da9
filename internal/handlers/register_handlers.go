package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/vetclinic_backend/cmd/docs"
	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/vetclinic_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/vetclinic_backend/internal/core/ports/services"
	"github.com/SscSPs/vetclinic_backend/internal/dto"
	"github.com/SscSPs/vetclinic_backend/internal/middleware"
	"github.com/SscSPs/vetclinic_backend/internal/platform/config"
	"github.com/SscSPs/vetclinic_backend/internal/validation"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// DBPinger reports whether the database is reachable.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	scope portsrepo.UnitOfWorkScope,
	db DBPinger,
) error {
	if err := validation.RegisterWithGin(); err != nil {
		return err
	}

	r.GET("/health", healthCheck(db))

	setupAPIV1Routes(r, cfg, services, scope)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	svc *portssvc.ServiceContainer,
	scope portsrepo.UnitOfWorkScope,
) {
	v1 := r.Group("/api/v1")
	if cfg.AuthEnabled {
		v1.Use(middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	}
	v1.Use(middleware.UnitOfWork(scope))

	(&resourceHandler[domain.Appointment, int, dto.AppointmentViewModel]{
		kind: domain.KindAppointment, svc: svc.Appointment, parseID: parseIntID,
		idOf: func(a domain.Appointment) int { return a.ID }, toView: dto.ToAppointmentViewModel,
	}).register(v1.Group("/appointments"))

	(&resourceHandler[domain.Procedure, int, dto.ProcedureViewModel]{
		kind: domain.KindProcedure, svc: svc.Procedure, parseID: parseIntID,
		idOf: func(p domain.Procedure) int { return p.ID }, toView: dto.ToProcedureViewModel,
	}).register(v1.Group("/procedures"))

	(&resourceHandler[domain.OrderProcedure, int, dto.OrderProcedureViewModel]{
		kind: domain.KindOrderProcedure, svc: svc.OrderProcedure, parseID: parseIntID,
		idOf: func(op domain.OrderProcedure) int { return op.ID }, toView: dto.ToOrderProcedureViewModel,
	}).register(v1.Group("/order-procedures"))

	orders := v1.Group("/orders")
	(&resourceHandler[domain.Order, int, dto.OrderViewModel]{
		kind: domain.KindOrder, svc: svc.Order, parseID: parseIntID,
		idOf: func(o domain.Order) int { return o.ID }, toView: dto.ToOrderViewModel,
	}).register(orders)

	clients := v1.Group("/clients")
	(&resourceHandler[domain.Client, string, dto.ClientViewModel]{
		kind: domain.KindClient, svc: svc.Client, parseID: parseStringID,
		idOf: func(c domain.Client) string { return c.ID }, toView: dto.ToClientViewModel,
	}).register(clients)

	(&resourceHandler[domain.Pet, int, dto.PetViewModel]{
		kind: domain.KindPet, svc: svc.Pet, parseID: parseIntID,
		idOf: func(p domain.Pet) int { return p.ID }, toView: dto.ToPetViewModel,
	}).register(v1.Group("/pets"))

	employees := v1.Group("/employees")
	(&resourceHandler[domain.Employee, string, dto.EmployeeViewModel]{
		kind: domain.KindEmployee, svc: svc.Employee, parseID: parseStringID,
		idOf: func(e domain.Employee) string { return e.ID }, toView: dto.ToEmployeeViewModel,
	}).register(employees)

	positions := v1.Group("/employee-positions")
	(&resourceHandler[domain.EmployeePosition, int, dto.EmployeePositionViewModel]{
		kind: domain.KindEmployeePosition, svc: svc.EmployeePosition, parseID: parseIntID,
		idOf: func(p domain.EmployeePosition) int { return p.ID }, toView: dto.ToEmployeePositionViewModel,
	}).register(positions)

	(&resourceHandler[domain.Salary, int, dto.SalaryViewModel]{
		kind: domain.KindSalary, svc: svc.Salary, parseID: parseIntID,
		idOf: func(s domain.Salary) int { return s.ID }, toView: dto.ToSalaryViewModel,
	}).register(v1.Group("/salaries"))

	(&resourceHandler[domain.Schedule, int, dto.ScheduleViewModel]{
		kind: domain.KindSchedule, svc: svc.Schedule, parseID: parseIntID,
		idOf: func(s domain.Schedule) int { return s.ID }, toView: dto.ToScheduleViewModel,
	}).register(v1.Group("/schedules"))

	h := newRelationHandler(svc)
	orders.POST("/:id/pay", h.payOrder)
	clients.GET("/:id/pets", h.listClientPets)
	employees.POST("/:id/position/:positionID", h.assignPosition)
	employees.GET("/:id/schedules", h.listEmployeeSchedules)
	positions.GET("/:id/salaries", h.listPositionSalaries)
}

// healthCheck answers OK while the database responds to a ping.
func healthCheck(db DBPinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Health check failed", slog.String("error", err.Error()))
			c.String(http.StatusServiceUnavailable, "database unavailable")
			return
		}
		c.String(http.StatusOK, "OK")
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
