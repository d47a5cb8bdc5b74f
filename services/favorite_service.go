package services

import (
	"errors"

	"club-review/models"
	"club-review/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FavoriteService interface {
	ToggleFavorite(clubName string, actor models.Principal) (bool, error)
	FavoriteCount(clubName string) (int64, error)
}

type favoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	clubRepo     repositories.ClubRepository
	userRepo     repositories.UserRepository
	log          *zap.Logger
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, clubRepo repositories.ClubRepository, userRepo repositories.UserRepository, log *zap.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		clubRepo:     clubRepo,
		userRepo:     userRepo,
		log:          log,
	}
}

// ToggleFavorite flips membership of the club in the actor's favorites and
// reports whether the club is a favorite afterwards.
func (s *favoriteService) ToggleFavorite(clubName string, actor models.Principal) (bool, error) {
	user, err := s.userRepo.GetByID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.ErrNoSuchUser
		}
		return false, models.WriteError(err)
	}

	club, err := s.clubRepo.GetByName(clubName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.ErrNoSuchClub
		}
		return false, models.WriteError(err)
	}

	exists, err := s.favoriteRepo.Exists(user.ID, club.ID)
	if err != nil {
		return false, models.WriteError(err)
	}

	if exists {
		err = s.favoriteRepo.Remove(user, club)
	} else {
		err = s.favoriteRepo.Add(user, club)
	}
	if err != nil {
		s.log.Error("toggle favorite",
			zap.String("club", clubName),
			zap.String("username", user.Username),
			zap.Error(err))
		return false, models.WriteError(err)
	}

	return !exists, nil
}

func (s *favoriteService) FavoriteCount(clubName string) (int64, error) {
	club, err := s.clubRepo.GetByName(clubName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.ErrNoSuchClub
		}
		return 0, models.WriteError(err)
	}

	count, err := s.favoriteRepo.CountByClub(club)
	if err != nil {
		return 0, models.WriteError(err)
	}
	return count, nil
}
