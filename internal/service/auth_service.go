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

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error)
	InviteEmployee(ctx context.Context, companyId uuid.UUID, managerId uuid.UUID, req *dto.InviteEmployeeRequest) (*dto.InviteEmployeeResponse, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	jwtSecret    []byte
	clientURL    string
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, jwtSecret string, clientURL string) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		emailService: emailService,
		jwtSecret:    []byte(jwtSecret),
		clientURL:    clientURL,
	}
}

// Register creates the company together with its first manager account in
// one transaction.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewConflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	now := time.Now()
	company := entity.Company{
		Id:        uuid.New(),
		Name:      req.CompanyName,
		CreatedAt: now,
	}
	user := entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &hashStr,
		Role:         entity.UserRoleManager,
		Status:       entity.UserStatusActive,
		CompanyId:    &company.Id,
		CreatedAt:    now,
	}
	manager := entity.Manager{
		Id:        uuid.New(),
		UserId:    user.Id,
		CompanyId: company.Id,
		CreatedAt: now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.CompanyRepository().Create(ctx, &company); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}
	if err := uow.ManagerRepository().Create(ctx, &manager); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	token, err := s.signToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		UserId:    user.Id,
		CompanyId: company.Id,
		Token:     token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, serverutils.NewUnauthorized("invalid credentials")
	}
	if user == nil {
		return nil, serverutils.NewUnauthorized("invalid credentials")
	}

	if user.PasswordHash == nil {
		return nil, serverutils.NewUnauthorized("account has no password set")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewUnauthorized("invalid credentials")
	}

	if user.Status == entity.UserStatusBlocked {
		return nil, serverutils.NewForbidden("account is blocked")
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  userToMeResponse(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFound("user not found")
	}

	res := userToMeResponse(user)
	return &res, nil
}

// InviteEmployee creates the employee's account without a password and mails
// an invite link. The employee sets credentials through the client app.
func (s *authService) InviteEmployee(ctx context.Context, companyId uuid.UUID, managerId uuid.UUID, req *dto.InviteEmployeeRequest) (*dto.InviteEmployeeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewConflict("email already registered")
	}

	now := time.Now()
	user := entity.User{
		Id:        uuid.New(),
		Email:     req.Email,
		FullName:  req.FullName,
		Role:      entity.UserRoleEmployee,
		Status:    entity.UserStatusActive,
		CompanyId: &companyId,
		CreatedAt: now,
	}
	employee := entity.Employee{
		Id:        uuid.New(),
		UserId:    user.Id,
		CompanyId: companyId,
		ManagerId: &managerId,
		CreatedAt: now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}
	if err := uow.EmployeeRepository().Create(ctx, &employee); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.emailService != nil {
		inviteLink := fmt.Sprintf("%s/join?email=%s", s.clientURL, user.Email)
		go func() {
			if err := s.emailService.SendInvite(user.Email, inviteLink); err != nil {
				fmt.Printf("[WARN] Failed to send invite email to %s: %v\n", user.Email, err)
			}
		}()
	}

	return &dto.InviteEmployeeResponse{
		UserId:     user.Id,
		EmployeeId: employee.Id,
	}, nil
}

func (s *authService) signToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	if user.CompanyId != nil {
		claims["company_id"] = user.CompanyId.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func userToMeResponse(user *entity.User) dto.MeResponse {
	return dto.MeResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      string(user.Role),
		CompanyId: user.CompanyId,
		AvatarURL: user.AvatarURL,
	}
}
