package unitofwork

import (
	"context"

	"ai-training-be/internal/repository"
	"ai-training-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CompanyRepository() contract.CompanyRepository
	EmployeeRepository() contract.EmployeeRepository
	ManagerRepository() contract.ManagerRepository

	SessionRepository() contract.SessionRepository
	ScenarioRepository() contract.ScenarioRepository
	AssignmentRepository() contract.AssignmentRepository

	DocumentRepository() contract.DocumentRepository
	TopicRepository() contract.TopicRepository
	QuestionRepository() contract.QuestionRepository
	EmbeddingRepository() contract.EmbeddingRepository

	AttemptRepository() contract.AttemptRepository
	ProgressRepository() contract.ProgressRepository
	SettingsRepository() contract.SettingsRepository
	NotificationRepository() repository.NotificationRepository
}
