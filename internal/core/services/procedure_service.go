package services

import (
	"github.com/SscSPs/vetclinic_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/vetclinic_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/vetclinic_backend/internal/core/ports/services"
)

type procedureService struct {
	entityService[domain.Procedure, int]
}

func NewProcedureService(repo portsrepo.ProcedureRepository) portssvc.ProcedureSvcFacade {
	return &procedureService{
		entityService: newEntityService[domain.Procedure, int](domain.KindProcedure, repo,
			func(p *domain.Procedure) int { return p.ID }),
	}
}

var _ portssvc.ProcedureSvcFacade = (*procedureService)(nil)

type orderProcedureService struct {
	entityService[domain.OrderProcedure, int]
}

// NewOrderProcedureService creates a service whose GetByID loads the procedure, appointment and order.
func NewOrderProcedureService(repo portsrepo.OrderProcedureRepository) portssvc.OrderProcedureSvcFacade {
	return &orderProcedureService{
		entityService: newEntityService[domain.OrderProcedure, int](domain.KindOrderProcedure, repo,
			func(op *domain.OrderProcedure) int { return op.ID }, "Procedure", "Appointment", "Order"),
	}
}

var _ portssvc.OrderProcedureSvcFacade = (*orderProcedureService)(nil)
