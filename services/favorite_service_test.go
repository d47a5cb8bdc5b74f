package services

import (
	"club-review/models"
)

func (s *ServiceSuite) TestToggleFavoriteTwice() {
	s.createClub("Water Club", "")

	count, err := s.favorites.FavoriteCount("Water Club")
	s.Require().NoError(err)
	s.Equal(int64(0), count)

	favorited, err := s.favorites.ToggleFavorite("Water Club", s.actor)
	s.Require().NoError(err)
	s.True(favorited)

	count, err = s.favorites.FavoriteCount("Water Club")
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	favorited, err = s.favorites.ToggleFavorite("Water Club", s.actor)
	s.Require().NoError(err)
	s.False(favorited)

	count, err = s.favorites.FavoriteCount("Water Club")
	s.Require().NoError(err)
	s.Equal(int64(0), count)
}

func (s *ServiceSuite) TestFavoriteCountsEachUser() {
	s.createClub("Water Club", "")
	other := s.signup("jen")

	_, err := s.favorites.ToggleFavorite("Water Club", s.actor)
	s.Require().NoError(err)
	_, err = s.favorites.ToggleFavorite("Water Club", other)
	s.Require().NoError(err)

	count, err := s.favorites.FavoriteCount("Water Club")
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func (s *ServiceSuite) TestToggleFavoriteUnknownClub() {
	_, err := s.favorites.ToggleFavorite("Nope", s.actor)
	s.ErrorIs(err, models.ErrNoSuchClub)

	_, err = s.favorites.FavoriteCount("Nope")
	s.ErrorIs(err, models.ErrNoSuchClub)
}

func (s *ServiceSuite) TestToggleFavoriteUnknownUser() {
	s.createClub("Water Club", "")

	_, err := s.favorites.ToggleFavorite("Water Club", models.Principal{UserID: 999, Username: "ghost"})
	s.ErrorIs(err, models.ErrNoSuchUser)
}
