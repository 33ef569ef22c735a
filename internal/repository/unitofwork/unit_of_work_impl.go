package unitofwork

import (
	"context"
	"fmt"

	"ai-training-be/internal/repository"
	"ai-training-be/internal/repository/contract"
	"ai-training-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CompanyRepository() contract.CompanyRepository {
	return implementation.NewCompanyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EmployeeRepository() contract.EmployeeRepository {
	return implementation.NewEmployeeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ManagerRepository() contract.ManagerRepository {
	return implementation.NewManagerRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SessionRepository() contract.SessionRepository {
	return implementation.NewSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ScenarioRepository() contract.ScenarioRepository {
	return implementation.NewScenarioRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AssignmentRepository() contract.AssignmentRepository {
	return implementation.NewAssignmentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DocumentRepository() contract.DocumentRepository {
	return implementation.NewDocumentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TopicRepository() contract.TopicRepository {
	return implementation.NewTopicRepository(u.getDB())
}

func (u *UnitOfWorkImpl) QuestionRepository() contract.QuestionRepository {
	return implementation.NewQuestionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EmbeddingRepository() contract.EmbeddingRepository {
	return implementation.NewEmbeddingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AttemptRepository() contract.AttemptRepository {
	return implementation.NewAttemptRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProgressRepository() contract.ProgressRepository {
	return implementation.NewProgressRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SettingsRepository() contract.SettingsRepository {
	return implementation.NewSettingsRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NotificationRepository() repository.NotificationRepository {
	return implementation.NewNotificationRepository(u.getDB())
}
