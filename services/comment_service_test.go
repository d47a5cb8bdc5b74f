package services

import (
	"club-review/models"
)

func (s *ServiceSuite) TestCommentsKeepCreationOrder() {
	s.createClub("Water Club", "")
	other := s.signup("jen")

	_, err := s.comments.AddComment("Water Club", models.CommentRequest{Text: "first"}, s.actor)
	s.Require().NoError(err)
	_, err = s.comments.AddComment("Water Club", models.CommentRequest{Text: "second"}, other)
	s.Require().NoError(err)
	_, err = s.comments.AddComment("Water Club", models.CommentRequest{Text: "third"}, s.actor)
	s.Require().NoError(err)

	comments, err := s.comments.ListComments("Water Club")
	s.Require().NoError(err)
	s.Equal([]models.CommentResponse{
		{Author: "josh", Text: "first"},
		{Author: "jen", Text: "second"},
		{Author: "josh", Text: "third"},
	}, comments)
}

func (s *ServiceSuite) TestListCommentsEmpty() {
	s.createClub("Water Club", "")

	comments, err := s.comments.ListComments("Water Club")
	s.Require().NoError(err)
	s.NotNil(comments)
	s.Empty(comments)
}

func (s *ServiceSuite) TestAddCommentErrors() {
	s.createClub("Water Club", "")

	_, err := s.comments.AddComment("Water Club", models.CommentRequest{}, s.actor)
	s.ErrorIs(err, models.ErrBadRequest)

	_, err = s.comments.AddComment("Nope", models.CommentRequest{Text: "hi"}, s.actor)
	s.ErrorIs(err, models.ErrNoSuchClub)

	_, err = s.comments.ListComments("Nope")
	s.ErrorIs(err, models.ErrNoSuchClub)
}
