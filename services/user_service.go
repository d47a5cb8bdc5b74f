package services

import (
	"errors"
	"strings"

	"club-review/models"
	"club-review/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(username string) (*models.ProfileResponse, error)
	PatchUser(actor models.Principal, req models.PatchUserRequest) (*models.User, error)
	MailingList(code string) ([]string, error)
}

type userService struct {
	userRepo     repositories.UserRepository
	clubRepo     repositories.ClubRepository
	favoriteRepo repositories.FavoriteRepository
	log          *zap.Logger
}

func NewUserService(userRepo repositories.UserRepository, clubRepo repositories.ClubRepository, favoriteRepo repositories.FavoriteRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo:     userRepo,
		clubRepo:     clubRepo,
		favoriteRepo: favoriteRepo,
		log:          log,
	}
}

func (s *userService) GetProfile(username string) (*models.ProfileResponse, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNoSuchUser
		}
		return nil, models.WriteError(err)
	}
	profile := models.NewProfileResponse(user)
	return &profile, nil
}

// PatchUser applies the present fields to the acting user. Nothing is
// written when the new username is already taken.
func (s *userService) PatchUser(actor models.Principal, req models.PatchUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrLoginRequired
		}
		return nil, models.WriteError(err)
	}

	fields := make(map[string]interface{})
	if req.Username != nil {
		if strings.TrimSpace(*req.Username) == "" {
			return nil, models.ErrBadRequest
		}
		fields["username"] = *req.Username
	}
	if req.Password != nil {
		if *req.Password == "" {
			return nil, models.ErrBadRequest
		}
		hashed, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hashed
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Year != nil {
		fields["year"] = *req.Year
	}
	if req.Major != nil {
		fields["major"] = *req.Major
	}

	if len(fields) == 0 {
		return user, nil
	}

	if err := s.userRepo.Update(user, fields); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrUsernameExists
		}
		s.log.Error("patch user", zap.Uint("user_id", actor.UserID), zap.Error(err))
		return nil, models.WriteError(err)
	}

	return s.userRepo.GetByID(user.ID)
}

func (s *userService) MailingList(code string) ([]string, error) {
	club, err := s.clubRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNoSuchClub
		}
		return nil, models.WriteError(err)
	}

	emails, err := s.favoriteRepo.EmailsByClub(club.ID)
	if err != nil {
		return nil, models.WriteError(err)
	}
	if emails == nil {
		emails = []string{}
	}
	return emails, nil
}
