package repositories

import (
	"club-review/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClubRepository interface {
	Create(club *models.Club) error
	GetByID(id uint) (*models.Club, error)
	GetByCode(code string) (*models.Club, error)
	GetByName(name string) (*models.Club, error)
	GetAll() ([]models.Club, error)
	SearchByName(keyword string) ([]models.Club, error)
	GetByTag(tagID uint) ([]models.Club, error)
	Patch(club *models.Club, fields map[string]interface{}, tags []models.Tag, replaceTags bool) error
}

type clubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

// Create inserts the club and its tag links. Tags must already exist.
func (r *clubRepository) Create(club *models.Club) error {
	return r.db.Omit("Tags.*").Create(club).Error
}

func (r *clubRepository) GetByID(id uint) (*models.Club, error) {
	var club models.Club
	err := r.db.Preload("Tags").First(&club, id).Error
	return &club, err
}

func (r *clubRepository) GetByCode(code string) (*models.Club, error) {
	var club models.Club
	err := r.db.Preload("Tags").Where("code = ?", code).First(&club).Error
	return &club, err
}

func (r *clubRepository) GetByName(name string) (*models.Club, error) {
	var club models.Club
	err := r.db.Preload("Tags").Where("name = ?", name).First(&club).Error
	return &club, err
}

func (r *clubRepository) GetAll() ([]models.Club, error) {
	var clubs []models.Club
	err := r.db.Preload("Tags").Order("id").Find(&clubs).Error
	return clubs, err
}

// SearchByName matches keyword as a LIKE substring. Wildcards inside
// keyword are passed through unescaped.
func (r *clubRepository) SearchByName(keyword string) ([]models.Club, error) {
	var clubs []models.Club
	err := r.db.Preload("Tags").
		Where("name LIKE ?", "%"+keyword+"%").
		Order("id").
		Find(&clubs).Error
	return clubs, err
}

func (r *clubRepository) GetByTag(tagID uint) ([]models.Club, error) {
	var clubs []models.Club
	err := r.db.Preload("Tags").
		Joins("JOIN tag_relations ON tag_relations.club_id = clubs.id").
		Where("tag_relations.tag_id = ?", tagID).
		Order("clubs.id").
		Find(&clubs).Error
	return clubs, err
}

// Patch writes fields and, when replaceTags is set, swaps the whole tag
// set in one transaction.
func (r *clubRepository) Patch(club *models.Club, fields map[string]interface{}, tags []models.Tag, replaceTags bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(club).Omit(clause.Associations).Updates(fields).Error; err != nil {
				return err
			}
		}
		if !replaceTags {
			return nil
		}
		association := tx.Model(club).Association("Tags")
		if len(tags) == 0 {
			return association.Clear()
		}
		return association.Replace(tags)
	})
}
