// services/tag_service.go
package services

import (
	"club-review/models"
	"club-review/repositories"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TagService interface {
	EnsureTag(req models.CreateTagRequest) (*models.Tag, error)
	ResolveTags(names []string) ([]models.Tag, error)
	GetTags() ([]models.Tag, error)
	TagCounts() ([]models.TagCount, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
	log     *zap.Logger
}

func NewTagService(tagRepo repositories.TagRepository, log *zap.Logger) TagService {
	return &tagService{
		tagRepo: tagRepo,
		log:     log,
	}
}

// EnsureTag returns the tag with the requested name, creating it first if
// needed. Repeated calls return the same row.
func (s *tagService) EnsureTag(req models.CreateTagRequest) (*models.Tag, error) {
	tags, err := s.ResolveTags([]string{req.Name})
	if err != nil {
		return nil, err
	}
	return &tags[0], nil
}

// ResolveTags looks every name up and creates the missing ones. Each new
// tag is committed on its own, so it survives a later failure of the
// caller's write.
func (s *tagService) ResolveTags(names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, models.ErrBadRequest
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		tag, err := s.getOrCreate(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}

	return tags, nil
}

func (s *tagService) getOrCreate(name string) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByName(name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.WriteError(err)
	}

	newTag := &models.Tag{TagName: name}
	if err := s.tagRepo.Create(newTag); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			s.log.Error("create tag", zap.String("tag", name), zap.Error(err))
			return nil, models.WriteError(err)
		}
		// Lost a race with another request creating the same tag.
		tag, err = s.tagRepo.GetByName(name)
		if err != nil {
			return nil, models.WriteError(err)
		}
		return tag, nil
	}

	s.log.Info("tag created", zap.String("tag", name))
	return newTag, nil
}

func (s *tagService) GetTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

func (s *tagService) TagCounts() ([]models.TagCount, error) {
	counts, err := s.tagRepo.CountClubsByTag()
	if err != nil {
		return nil, models.WriteError(err)
	}
	return counts, nil
}
