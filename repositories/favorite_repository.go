package repositories

import (
	"club-review/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Exists(userID, clubID uint) (bool, error)
	Add(user *models.User, club *models.Club) error
	Remove(user *models.User, club *models.Club) error
	CountByClub(club *models.Club) (int64, error)
	EmailsByClub(clubID uint) ([]string, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Exists(userID, clubID uint) (bool, error) {
	var count int64
	err := r.db.Table("favorites").
		Where("user_id = ? AND club_id = ?", userID, clubID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepository) Add(user *models.User, club *models.Club) error {
	return r.db.Model(user).Omit("Favorites.*").Association("Favorites").Append(club)
}

func (r *favoriteRepository) Remove(user *models.User, club *models.Club) error {
	return r.db.Model(user).Association("Favorites").Delete(club)
}

func (r *favoriteRepository) CountByClub(club *models.Club) (int64, error) {
	association := r.db.Model(club).Association("Favorites")
	count := association.Count()
	return count, association.Error
}

func (r *favoriteRepository) EmailsByClub(clubID uint) ([]string, error) {
	var emails []string
	err := r.db.Table("users").
		Joins("JOIN favorites ON favorites.user_id = users.id").
		Where("favorites.club_id = ?", clubID).
		Order("users.id").
		Pluck("users.email", &emails).Error
	return emails, err
}
