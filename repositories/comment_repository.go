package repositories

import (
	"club-review/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByClub(clubID uint) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Omit("User").Create(comment).Error
}

// ListByClub returns comments oldest first with their authors loaded.
func (r *commentRepository) ListByClub(clubID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").
		Where("club_id = ?", clubID).
		Order("id").
		Find(&comments).Error
	return comments, err
}
