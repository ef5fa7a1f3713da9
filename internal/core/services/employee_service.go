package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/vetclinic_backend/internal/apperrors"
	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/vetclinic_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/vetclinic_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

type employeeService struct {
	entityService[domain.Employee, string]
	positionRepo portsrepo.EmployeePositionRepository
}

func NewEmployeeService(repo portsrepo.EmployeeRepository, positionRepo portsrepo.EmployeePositionRepository) portssvc.EmployeeSvcFacade {
	svc := &employeeService{
		entityService: newEntityService[domain.Employee, string](domain.KindEmployee, repo,
			func(e *domain.Employee) string { return e.ID }, "EmployeePosition", "Schedules"),
		positionRepo: positionRepo,
	}
	// The position link is owned by AssignPosition, which keeps both sides in step.
	svc.prepareUpdate = func(stored, incoming *domain.Employee) error {
		incoming.EmployeePositionID = stored.EmployeePositionID
		return nil
	}
	return svc
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) Insert(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	return s.entityService.Insert(ctx, emp)
}

// AssignPosition links the employee and the position on both sides, releasing
// whatever either of them was linked to before.
func (s *employeeService) AssignPosition(ctx context.Context, employeeID string, positionID int) error {
	emp, err := s.find(ctx, employeeID)
	if err != nil {
		return err
	}
	pos, err := s.positionRepo.GetFirstOrDefault(ctx, portsrepo.Where(portsrepo.Eq("id", positionID)))
	if err != nil {
		return fmt.Errorf("failed to load %s %d: %w", domain.KindEmployeePosition, positionID, err)
	}
	if pos == nil {
		return apperrors.NotFound(domain.KindEmployeePosition)
	}

	if pos.EmployeeID != nil && *pos.EmployeeID != employeeID {
		prev, err := s.repo.GetFirstOrDefault(ctx, portsrepo.Where(portsrepo.Eq("id", *pos.EmployeeID)))
		if err != nil {
			return fmt.Errorf("failed to load previous holder of position %d: %w", positionID, err)
		}
		if prev != nil {
			prev.EmployeePositionID = nil
			if err := s.repo.Update(ctx, prev); err != nil {
				return err
			}
		}
	}
	if emp.EmployeePositionID != nil && *emp.EmployeePositionID != positionID {
		old, err := s.positionRepo.GetFirstOrDefault(ctx, portsrepo.Where(portsrepo.Eq("id", *emp.EmployeePositionID)))
		if err != nil {
			return fmt.Errorf("failed to load previous position of employee %s: %w", employeeID, err)
		}
		if old != nil {
			old.EmployeeID = nil
			if err := s.positionRepo.Update(ctx, old); err != nil {
				return err
			}
		}
	}

	emp.EmployeePositionID = &positionID
	pos.EmployeeID = &employeeID
	if err := s.repo.Update(ctx, emp); err != nil {
		return err
	}
	if err := s.positionRepo.Update(ctx, pos); err != nil {
		return err
	}
	if err := s.commit(ctx, "assign position"); err != nil {
		return err
	}
	s.LogInfo(ctx, "Position assigned",
		slog.String("employee_id", employeeID),
		slog.Int("position_id", positionID))
	return nil
}

type employeePositionService struct {
	entityService[domain.EmployeePosition, int]
}

func NewEmployeePositionService(repo portsrepo.EmployeePositionRepository) portssvc.EmployeePositionSvcFacade {
	svc := &employeePositionService{
		entityService: newEntityService[domain.EmployeePosition, int](domain.KindEmployeePosition, repo,
			func(p *domain.EmployeePosition) int { return p.ID }, "Salaries"),
	}
	svc.prepareUpdate = func(stored, incoming *domain.EmployeePosition) error {
		incoming.EmployeeID = stored.EmployeeID
		return nil
	}
	return svc
}

var _ portssvc.EmployeePositionSvcFacade = (*employeePositionService)(nil)

type salaryService struct {
	entityService[domain.Salary, int]
}

func NewSalaryService(repo portsrepo.SalaryRepository) portssvc.SalarySvcFacade {
	return &salaryService{
		entityService: newEntityService[domain.Salary, int](domain.KindSalary, repo,
			func(s *domain.Salary) int { return s.ID }),
	}
}

var _ portssvc.SalarySvcFacade = (*salaryService)(nil)

func (s *salaryService) ListByPosition(ctx context.Context, positionID int) ([]domain.Salary, error) {
	salaries, err := s.repo.Get(ctx,
		portsrepo.Where(portsrepo.Eq("employee_position_id", positionID)),
		portsrepo.OrderBy("paid_at", true),
		portsrepo.AsNoTracking(),
	)
	if err != nil {
		s.LogError(ctx, err, "Failed to list salaries", slog.Int("position_id", positionID))
		return nil, fmt.Errorf("failed to list salaries of position %d: %w", positionID, err)
	}
	return salaries, nil
}

type scheduleService struct {
	entityService[domain.Schedule, int]
}

func NewScheduleService(repo portsrepo.ScheduleRepository) portssvc.ScheduleSvcFacade {
	return &scheduleService{
		entityService: newEntityService[domain.Schedule, int](domain.KindSchedule, repo,
			func(s *domain.Schedule) int { return s.ID }),
	}
}

var _ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)

func (s *scheduleService) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Schedule, error) {
	schedules, err := s.repo.Get(ctx,
		portsrepo.Where(portsrepo.Eq("employee_id", employeeID)),
		portsrepo.OrderBy("day", false),
		portsrepo.OrderBy("from_time", false),
		portsrepo.AsNoTracking(),
	)
	if err != nil {
		s.LogError(ctx, err, "Failed to list schedules", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to list schedules of employee %s: %w", employeeID, err)
	}
	return schedules, nil
}
