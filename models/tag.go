package models

import "time"

type Tag struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	TagName   string    `json:"tag_name" gorm:"column:tag_name;size:80;uniqueIndex;not null"`
	Clubs     []Club    `json:"-" gorm:"many2many:tag_relations;"`
	CreatedAt time.Time `json:"created_at"`
}
