package models

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"size:120"`
	Password  []byte    `json:"-" gorm:"not null"`
	Email     string    `json:"email"`
	Year      *int      `json:"year,omitempty"`
	Major     *string   `json:"major,omitempty"`
	Favorites []Club    `json:"-" gorm:"many2many:favorites;"`
	Comments  []Comment `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Principal is the identity carried by an authenticated session.
type Principal struct {
	UserID   uint
	Username string
}

func (u *User) Principal() Principal {
	return Principal{UserID: u.ID, Username: u.Username}
}
