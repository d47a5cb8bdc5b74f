package services

import (
	"errors"

	"club-review/models"
	"club-review/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(req models.SignupRequest) (*models.User, error)
	Login(req models.LoginRequest) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	log      *zap.Logger
}

func NewAuthService(userRepo repositories.UserRepository, log *zap.Logger) AuthService {
	return &authService{userRepo: userRepo, log: log}
}

func (s *authService) Signup(req models.SignupRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" || req.Name == "" || req.Email == "" {
		return nil, models.ErrBadRequest
	}

	// Check if user already exists
	existingUser, err := s.userRepo.GetByUsername(req.Username)
	if err == nil && existingUser != nil {
		return nil, models.ErrUsernameExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.WriteError(err)
	}

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Name:     req.Name,
		Password: hashedPassword,
		Email:    req.Email,
		Year:     req.Year,
		Major:    req.Major,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrUsernameExists
		}
		s.log.Error("create user", zap.String("username", req.Username), zap.Error(err))
		return nil, models.WriteError(err)
	}

	s.log.Info("user signed up", zap.String("username", user.Username))
	return user, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUnknownLogin
		}
		return nil, models.WriteError(err)
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(req.Password)); err != nil {
		return nil, models.ErrLoginFailed
	}

	return user, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNoSuchUser
		}
		return nil, models.WriteError(err)
	}
	return user, nil
}

func hashPassword(password string) ([]byte, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, models.ErrorBadRequest{Message: "Password too long"}
		}
		return nil, models.WriteError(err)
	}
	return hashed, nil
}
