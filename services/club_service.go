package services

import (
	"errors"
	"strings"

	"club-review/models"
	"club-review/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ClubService interface {
	CreateClub(req models.CreateClubRequest, actor models.Principal) (*models.Club, error)
	PatchClub(code string, req models.PatchClubRequest, actor models.Principal) (*models.Club, error)
	SearchClubs(keyword string) ([]models.ClubResponse, error)
	ClubsByTag(tagName string) ([]models.ClubResponse, error)
}

type clubService struct {
	clubRepo   repositories.ClubRepository
	tagRepo    repositories.TagRepository
	tagService TagService
	log        *zap.Logger
}

func NewClubService(clubRepo repositories.ClubRepository, tagRepo repositories.TagRepository, tagService TagService, log *zap.Logger) ClubService {
	return &clubService{
		clubRepo:   clubRepo,
		tagRepo:    tagRepo,
		tagService: tagService,
		log:        log,
	}
}

func (s *clubService) CreateClub(req models.CreateClubRequest, actor models.Principal) (*models.Club, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, models.ErrBadRequest
	}

	code := req.Code
	if code == "" {
		code = models.AcronymCode(req.Name)
	}

	// Tags created here are not rolled back if the club insert fails.
	tags, err := s.tagService.ResolveTags(req.Tags)
	if err != nil {
		return nil, err
	}

	club := &models.Club{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
		Tags:        tags,
	}

	if err := s.clubRepo.Create(club); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrDuplicateFields
		}
		s.log.Error("create club", zap.String("code", code), zap.Error(err))
		return nil, models.WriteError(err)
	}

	s.log.Info("club created",
		zap.String("code", club.Code),
		zap.String("name", club.Name),
		zap.String("by", actor.Username))
	return club, nil
}

func (s *clubService) PatchClub(code string, req models.PatchClubRequest, actor models.Principal) (*models.Club, error) {
	club, err := s.clubRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNoSuchClub
		}
		return nil, models.WriteError(err)
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, models.ErrBadRequest
		}
		fields["name"] = *req.Name
	}
	if req.Code != nil {
		if strings.TrimSpace(*req.Code) == "" {
			return nil, models.ErrBadRequest
		}
		fields["code"] = *req.Code
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	var tags []models.Tag
	if req.Tags.Present {
		tags, err = s.tagService.ResolveTags(req.Tags.Names)
		if err != nil {
			return nil, err
		}
	}

	if err := s.clubRepo.Patch(club, fields, tags, req.Tags.Present); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrDuplicateFields
		}
		s.log.Error("patch club", zap.String("code", code), zap.Error(err))
		return nil, models.WriteError(err)
	}

	s.log.Info("club patched", zap.String("code", code), zap.String("by", actor.Username))
	return s.clubRepo.GetByID(club.ID)
}

func (s *clubService) SearchClubs(keyword string) ([]models.ClubResponse, error) {
	var (
		clubs []models.Club
		err   error
	)
	if keyword == "" {
		clubs, err = s.clubRepo.GetAll()
	} else {
		clubs, err = s.clubRepo.SearchByName(keyword)
	}
	if err != nil {
		return nil, models.WriteError(err)
	}
	return toClubResponses(clubs), nil
}

func (s *clubService) ClubsByTag(tagName string) ([]models.ClubResponse, error) {
	tag, err := s.tagRepo.GetByName(tagName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNoSuchTag
		}
		return nil, models.WriteError(err)
	}

	clubs, err := s.clubRepo.GetByTag(tag.ID)
	if err != nil {
		return nil, models.WriteError(err)
	}
	return toClubResponses(clubs), nil
}

func toClubResponses(clubs []models.Club) []models.ClubResponse {
	res := make([]models.ClubResponse, 0, len(clubs))
	for i := range clubs {
		res = append(res, models.NewClubResponse(&clubs[i]))
	}
	return res
}
