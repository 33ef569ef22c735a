package service

import (
	"context"
	"fmt"
	"time"

	"ai-training-be/internal/dto"
	"ai-training-be/internal/entity"
	"ai-training-be/internal/pkg/mailer"
	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/internal/repository/specification"
	"ai-training-be/internal/repository/unitofwork"
	"ai-training-be/pkg/events"
	pktNats "ai-training-be/pkg/nats"

	"github.com/google/uuid"
)

type IScenarioService interface {
	Create(ctx context.Context, companyId uuid.UUID, req *dto.CreateScenarioRequest) (*dto.ScenarioResponse, error)
	Show(ctx context.Context, companyId uuid.UUID, id uuid.UUID) (*dto.ScenarioResponse, error)
	List(ctx context.Context, companyId uuid.UUID, limit, offset int) ([]*dto.ScenarioResponse, error)
	Update(ctx context.Context, companyId uuid.UUID, req *dto.UpdateScenarioRequest) (*dto.ScenarioResponse, error)
	Delete(ctx context.Context, companyId uuid.UUID, id uuid.UUID) error
	Assign(ctx context.Context, companyId uuid.UUID, managerId uuid.UUID, scenarioId uuid.UUID, req *dto.AssignScenarioRequest) ([]*dto.AssignmentResponse, error)
	ListAssignments(ctx context.Context, employeeId uuid.UUID) ([]*dto.AssignmentResponse, error)
}

type scenarioService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewScenarioService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
) IScenarioService {
	return &scenarioService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func (c *scenarioService) Create(ctx context.Context, companyId uuid.UUID, req *dto.CreateScenarioRequest) (*dto.ScenarioResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	scenario := entity.Scenario{
		Id:           uuid.New(),
		CompanyId:    companyId,
		Title:        req.Title,
		Type:         entity.ScenarioType(req.Type),
		Description:  req.Description,
		DocumentIds:  req.DocumentIds,
		TopicIds:     req.TopicIds,
		TrackId:      req.TrackId,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    time.Now(),
	}

	if err := uow.ScenarioRepository().Create(ctx, &scenario); err != nil {
		return nil, err
	}

	return scenarioToResponse(&scenario), nil
}

func (c *scenarioService) Show(ctx context.Context, companyId uuid.UUID, id uuid.UUID) (*dto.ScenarioResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	scenario, err := uow.ScenarioRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if scenario == nil {
		return nil, nil
	}

	return scenarioToResponse(scenario), nil
}

func (c *scenarioService) List(ctx context.Context, companyId uuid.UUID, limit, offset int) ([]*dto.ScenarioResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	scenarios, err := uow.ScenarioRepository().FindAll(ctx,
		specification.CompanyOwnedBy{CompanyID: companyId},
		specification.OrderBy{Field: "display_order"},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ScenarioResponse, 0, len(scenarios))
	for _, scenario := range scenarios {
		response = append(response, scenarioToResponse(scenario))
	}

	return response, nil
}

func (c *scenarioService) Update(ctx context.Context, companyId uuid.UUID, req *dto.UpdateScenarioRequest) (*dto.ScenarioResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	scenario, err := uow.ScenarioRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if scenario == nil {
		return nil, nil
	}

	now := time.Now()
	scenario.Title = req.Title
	scenario.Type = entity.ScenarioType(req.Type)
	scenario.Description = req.Description
	scenario.DocumentIds = req.DocumentIds
	scenario.TopicIds = req.TopicIds
	scenario.TrackId = req.TrackId
	scenario.DisplayOrder = req.DisplayOrder
	scenario.UpdatedAt = &now

	if err := uow.ScenarioRepository().Update(ctx, scenario); err != nil {
		return nil, err
	}

	return scenarioToResponse(scenario), nil
}

func (c *scenarioService) Delete(ctx context.Context, companyId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	scenario, err := uow.ScenarioRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return err
	}
	if scenario == nil {
		return nil
	}

	return uow.ScenarioRepository().Delete(ctx, id)
}

// Assign creates one assignment per employee inside a single transaction,
// then notifies each employee by email on a best-effort basis.
func (c *scenarioService) Assign(ctx context.Context, companyId uuid.UUID, managerId uuid.UUID, scenarioId uuid.UUID, req *dto.AssignScenarioRequest) ([]*dto.AssignmentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	scenario, err := uow.ScenarioRepository().FindOne(ctx,
		specification.ByID{ID: scenarioId},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if scenario == nil {
		return nil, serverutils.NewNotFound("scenario not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	assignments := make([]*entity.ScenarioAssignment, 0, len(req.EmployeeIds))
	for _, employeeId := range req.EmployeeIds {
		assignment := entity.ScenarioAssignment{
			Id:         uuid.New(),
			ScenarioId: scenarioId,
			EmployeeId: employeeId,
			AssignedBy: managerId,
			Status:     entity.AssignmentStatusAssigned,
			DueAt:      req.DueAt,
			CreatedAt:  now,
		}
		if err := uow.AssignmentRepository().Create(ctx, &assignment); err != nil {
			return nil, err
		}
		assignments = append(assignments, &assignment)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.notifyAssignees(ctx, uow, scenario, assignments, req.DueAt)

	response := make([]*dto.AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		response = append(response, assignmentToResponse(assignment))
	}

	return response, nil
}

func (c *scenarioService) ListAssignments(ctx context.Context, employeeId uuid.UUID) ([]*dto.AssignmentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	assignments, err := uow.AssignmentRepository().FindAll(ctx,
		specification.ByEmployeeID{EmployeeID: employeeId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		response = append(response, assignmentToResponse(assignment))
	}

	return response, nil
}

// notifyAssignees sends the assignment email and event per employee. The
// assignments are already committed, failures here only get logged.
func (c *scenarioService) notifyAssignees(ctx context.Context, uow unitofwork.UnitOfWork, scenario *entity.Scenario, assignments []*entity.ScenarioAssignment, dueAt *time.Time) {
	dueText := "no due date"
	if dueAt != nil {
		dueText = dueAt.Format("2 Jan 2006")
	}

	for _, assignment := range assignments {
		if c.eventPublisher != nil {
			evt := events.New(events.TypeScenarioAssigned, map[string]interface{}{
				"assignment_id": assignment.Id,
				"scenario_id":   scenario.Id,
				"employee_id":   assignment.EmployeeId,
				"title":         scenario.Title,
			})
			if err := c.eventPublisher.Publish(ctx, evt); err != nil {
				fmt.Printf("[WARN] Failed to publish SCENARIO_ASSIGNED event: %v\n", err)
			}
		}

		if c.emailService == nil {
			continue
		}

		employee, err := uow.EmployeeRepository().FindOne(ctx, specification.ByID{ID: assignment.EmployeeId})
		if err != nil || employee == nil {
			fmt.Printf("[WARN] Assignment notice skipped, employee %s not found\n", assignment.EmployeeId)
			continue
		}
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: employee.UserId})
		if err != nil || user == nil {
			fmt.Printf("[WARN] Assignment notice skipped, user for employee %s not found\n", assignment.EmployeeId)
			continue
		}

		if err := c.emailService.SendAssignmentNotice(user.Email, user.FullName, scenario.Title, dueText); err != nil {
			fmt.Printf("[WARN] Failed to send assignment notice to %s: %v\n", user.Email, err)
		}
	}
}

func scenarioToResponse(s *entity.Scenario) *dto.ScenarioResponse {
	return &dto.ScenarioResponse{
		Id:           s.Id,
		Title:        s.Title,
		Type:         string(s.Type),
		Description:  s.Description,
		DocumentIds:  s.DocumentIds,
		TopicIds:     s.TopicIds,
		TrackId:      s.TrackId,
		DisplayOrder: s.DisplayOrder,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func assignmentToResponse(a *entity.ScenarioAssignment) *dto.AssignmentResponse {
	return &dto.AssignmentResponse{
		Id:         a.Id,
		ScenarioId: a.ScenarioId,
		EmployeeId: a.EmployeeId,
		AssignedBy: a.AssignedBy,
		Status:     string(a.Status),
		DueAt:      a.DueAt,
		CreatedAt:  a.CreatedAt,
	}
}
