package models

import (
	"bytes"
	"encoding/json"
)

type CreateClubRequest struct {
	Code        string   `json:"code" form:"code"`
	Name        string   `json:"name" form:"name" validate:"required"`
	Description string   `json:"description" form:"description"`
	Tags        []string `json:"tags" form:"tags"`
}

// PatchClubRequest holds only the fields present in the request body.
type PatchClubRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
	Tags        TagList `json:"tags"`
}

// TagList is a tag-name list that remembers whether its key appeared in
// the body. A present key must hold a JSON list; null is rejected.
type TagList struct {
	Present bool
	Names   []string
}

func NewTagList(names ...string) TagList {
	if names == nil {
		names = []string{}
	}
	return TagList{Present: true, Names: names}
}

func (t *TagList) UnmarshalJSON(data []byte) error {
	t.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return ErrorBadRequest{Message: "tags must be a list"}
	}
	return json.Unmarshal(data, &t.Names)
}

func (t TagList) MarshalJSON() ([]byte, error) {
	if !t.Present {
		return []byte("null"), nil
	}
	if t.Names == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.Names)
}

type ClubListParams struct {
	Search string `form:"search"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type SignupRequest struct {
	Username string  `json:"username" validate:"required,max=80"`
	Password string  `json:"password" validate:"required"`
	Name     string  `json:"name" validate:"required,max=120"`
	Email    string  `json:"email" validate:"required"`
	Year     *int    `json:"year"`
	Major    *string `json:"major"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type PatchUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Year     *int    `json:"year"`
	Major    *string `json:"major"`
}

type ClubResponse struct {
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func NewClubResponse(club *Club) ClubResponse {
	return ClubResponse{
		Name:        club.Name,
		Code:        club.Code,
		Description: club.Description,
		Tags:        club.TagNames(),
	}
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

type CommentResponse struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

type FavoriteCountResponse struct {
	FavoriteCount int64 `json:"favorite_count"`
}

type FavoriteToggleResponse struct {
	Club      string `json:"club"`
	Favorited bool   `json:"favorited"`
}

type ProfileResponse struct {
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Year     *int    `json:"year,omitempty"`
	Major    *string `json:"major,omitempty"`
}

func NewProfileResponse(user *User) ProfileResponse {
	return ProfileResponse{
		Username: user.Username,
		Name:     user.Name,
		Year:     user.Year,
		Major:    user.Major,
	}
}

type MailingListResponse struct {
	Code   string   `json:"code"`
	Emails []string `json:"emails"`
}
