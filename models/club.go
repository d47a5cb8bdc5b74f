package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

type Club struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Code        string    `json:"code" gorm:"size:80;uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"size:120;uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Tags        []Tag     `json:"tags,omitempty" gorm:"many2many:tag_relations;"`
	Favorites   []User    `json:"-" gorm:"many2many:favorites;"`
	Comments    []Comment `json:"-" gorm:"foreignKey:ClubID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TagNames returns the names of the club's tags in the order they were loaded.
func (c *Club) TagNames() []string {
	names := make([]string, 0, len(c.Tags))
	for _, tag := range c.Tags {
		names = append(names, tag.TagName)
	}
	return names
}

// AcronymCode builds a club code from the first letter of every
// whitespace-separated word in name, keeping the original casing.
func AcronymCode(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}
