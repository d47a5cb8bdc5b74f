package services

import (
	"errors"

	"club-review/models"
	"club-review/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CommentService interface {
	AddComment(clubName string, req models.CommentRequest, actor models.Principal) (*models.Comment, error)
	ListComments(clubName string) ([]models.CommentResponse, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	clubRepo    repositories.ClubRepository
	userRepo    repositories.UserRepository
	log         *zap.Logger
}

func NewCommentService(commentRepo repositories.CommentRepository, clubRepo repositories.ClubRepository, userRepo repositories.UserRepository, log *zap.Logger) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		clubRepo:    clubRepo,
		userRepo:    userRepo,
		log:         log,
	}
}

func (s *commentService) AddComment(clubName string, req models.CommentRequest, actor models.Principal) (*models.Comment, error) {
	if req.Text == "" {
		return nil, models.ErrBadRequest
	}

	club, err := s.clubRepo.GetByName(clubName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNoSuchClub
		}
		return nil, models.WriteError(err)
	}

	if _, err := s.userRepo.GetByID(actor.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNoSuchUser
		}
		return nil, models.WriteError(err)
	}

	comment := &models.Comment{
		UserID: actor.UserID,
		ClubID: club.ID,
		Text:   req.Text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		s.log.Error("create comment", zap.String("club", clubName), zap.Error(err))
		return nil, models.WriteError(err)
	}

	return comment, nil
}

func (s *commentService) ListComments(clubName string) ([]models.CommentResponse, error) {
	club, err := s.clubRepo.GetByName(clubName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNoSuchClub
		}
		return nil, models.WriteError(err)
	}

	comments, err := s.commentRepo.ListByClub(club.ID)
	if err != nil {
		return nil, models.WriteError(err)
	}

	res := make([]models.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		res = append(res, models.CommentResponse{
			Author: comment.User.Username,
			Text:   comment.Text,
		})
	}
	return res, nil
}
