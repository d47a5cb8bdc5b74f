package repositories

import (
	"club-review/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByName(name string) (*models.Tag, error)
	GetAll() ([]models.Tag, error)
	CountClubsByTag() ([]models.TagCount, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("tag_name = ?", name).First(&tag).Error
	return &tag, err
}

func (r *tagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("id").Find(&tags).Error
	return tags, err
}

// CountClubsByTag reports every tag, including tags no club holds.
func (r *tagRepository) CountClubsByTag() ([]models.TagCount, error) {
	var counts []models.TagCount

	query := `
		SELECT
			tags.tag_name AS tag,
			COUNT(tag_relations.club_id) AS count
		FROM tags
		LEFT JOIN tag_relations ON tag_relations.tag_id = tags.id
		GROUP BY tags.id, tags.tag_name
		ORDER BY tags.id
	`

	err := r.db.Raw(query).Scan(&counts).Error
	return counts, err
}
