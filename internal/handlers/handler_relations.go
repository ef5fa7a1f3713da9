package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	portssvc "github.com/SscSPs/vetclinic_backend/internal/core/ports/services"
	"github.com/SscSPs/vetclinic_backend/internal/dto"
	"github.com/SscSPs/vetclinic_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// relationHandler serves the routes that span two entity kinds.
type relationHandler struct {
	orders    portssvc.OrderSvcFacade
	pets      portssvc.PetSvcFacade
	employees portssvc.EmployeeSvcFacade
	schedules portssvc.ScheduleSvcFacade
	salaries  portssvc.SalarySvcFacade
}

func newRelationHandler(svc *portssvc.ServiceContainer) *relationHandler {
	return &relationHandler{
		orders:    svc.Order,
		pets:      svc.Pet,
		employees: svc.Employee,
		schedules: svc.Schedule,
		salaries:  svc.Salary,
	}
}

// payOrder godoc
// @Summary Mark an order as paid
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} dto.OrderViewModel
// @Failure 404 {object} ErrorDetails "Order not found"
// @Security BearerAuth
// @Router /orders/{id}/pay [post]
func (h *relationHandler) payOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := parseIntID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.orders.MarkPaid(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, domain.KindOrder, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderViewModel(*order))
}

// listClientPets godoc
// @Summary List the pets of a client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {array} dto.PetViewModel
// @Security BearerAuth
// @Router /clients/{id}/pets [get]
func (h *relationHandler) listClientPets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	pets, err := h.pets.ListByClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, domain.KindPet, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToList(pets, dto.ToPetViewModel))
}

// assignPosition godoc
// @Summary Assign a position to an employee
// @Description Links both sides; any previous holder of the position is released.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Param positionID path int true "Employee position ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorDetails "Employee or position not found"
// @Security BearerAuth
// @Router /employees/{id}/position/{positionID} [post]
func (h *relationHandler) assignPosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")
	positionID, err := parseIntID(c.Param("positionID"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.employees.AssignPosition(c.Request.Context(), employeeID, positionID); err != nil {
		respondServiceError(c, logger, domain.KindEmployee, err)
		return
	}
	logger.Info("Position assigned", slog.String("employee_id", employeeID), slog.Int("position_id", positionID))
	c.JSON(http.StatusOK, gin.H{"message": "Position has been assigned"})
}

// listEmployeeSchedules godoc
// @Summary List the schedule of an employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {array} dto.ScheduleViewModel
// @Security BearerAuth
// @Router /employees/{id}/schedules [get]
func (h *relationHandler) listEmployeeSchedules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	schedules, err := h.schedules.ListByEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, domain.KindSchedule, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToList(schedules, dto.ToScheduleViewModel))
}

// listPositionSalaries godoc
// @Summary List the salaries paid under a position
// @Tags employee-positions
// @Produce json
// @Param id path int true "Employee position ID"
// @Success 200 {array} dto.SalaryViewModel
// @Security BearerAuth
// @Router /employee-positions/{id}/salaries [get]
func (h *relationHandler) listPositionSalaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := parseIntID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	salaries, err := h.salaries.ListByPosition(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, domain.KindSalary, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToList(salaries, dto.ToSalaryViewModel))
}
