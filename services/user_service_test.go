package services

import (
	"club-review/models"

	"golang.org/x/crypto/bcrypt"
)

func (s *ServiceSuite) TestSignupHashesPassword() {
	user, err := s.auth.GetUserByID(s.actor.UserID)
	s.Require().NoError(err)

	s.NotEqual([]byte("password123"), user.Password)
	s.NoError(bcrypt.CompareHashAndPassword(user.Password, []byte("password123")))
}

func (s *ServiceSuite) TestSignupConflict() {
	_, err := s.auth.Signup(models.SignupRequest{
		Username: "josh",
		Password: "other",
		Name:     "Someone Else",
		Email:    "else@example.com",
	})
	s.ErrorIs(err, models.ErrUsernameExists)

	var count int64
	s.Require().NoError(s.db.Model(&models.User{}).Where("username = ?", "josh").Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *ServiceSuite) TestSignupRequiresFields() {
	_, err := s.auth.Signup(models.SignupRequest{Username: "amy", Password: "pw"})
	s.ErrorIs(err, models.ErrBadRequest)
}

func (s *ServiceSuite) TestLogin() {
	user, err := s.auth.Login(models.LoginRequest{Username: "josh", Password: "password123"})
	s.Require().NoError(err)
	s.Equal(s.actor.UserID, user.ID)

	_, err = s.auth.Login(models.LoginRequest{Username: "josh", Password: "wrong"})
	s.ErrorIs(err, models.ErrLoginFailed)
	s.EqualError(err, "login failed")

	_, err = s.auth.Login(models.LoginRequest{Username: "nobody", Password: "password123"})
	s.ErrorIs(err, models.ErrUnknownLogin)
	s.EqualError(err, "no such user")
}

func (s *ServiceSuite) TestGetProfile() {
	year := 2024
	major := "CIS"
	_, err := s.auth.Signup(models.SignupRequest{
		Username: "jen",
		Password: "pw",
		Name:     "Jennifer",
		Email:    "jen@example.com",
		Year:     &year,
		Major:    &major,
	})
	s.Require().NoError(err)

	profile, err := s.users.GetProfile("jen")
	s.Require().NoError(err)
	s.Equal("jen", profile.Username)
	s.Equal("Jennifer", profile.Name)
	s.Equal(&year, profile.Year)
	s.Equal(&major, profile.Major)

	_, err = s.users.GetProfile("nobody")
	s.ErrorIs(err, models.ErrNoSuchUser)
}

func (s *ServiceSuite) TestPatchUser() {
	username := "joshua"
	password := "new-secret"
	year := 2026
	user, err := s.users.PatchUser(s.actor, models.PatchUserRequest{
		Username: &username,
		Password: &password,
		Year:     &year,
	})
	s.Require().NoError(err)
	s.Equal("joshua", user.Username)
	s.Require().NotNil(user.Year)
	s.Equal(2026, *user.Year)

	_, err = s.auth.Login(models.LoginRequest{Username: "joshua", Password: "new-secret"})
	s.NoError(err)

	_, err = s.auth.Login(models.LoginRequest{Username: "josh", Password: "password123"})
	s.ErrorIs(err, models.ErrUnknownLogin)
}

func (s *ServiceSuite) TestPatchUserConflict() {
	s.signup("jen")

	username := "jen"
	name := "Renamed"
	_, err := s.users.PatchUser(s.actor, models.PatchUserRequest{Username: &username, Name: &name})
	s.ErrorIs(err, models.ErrUsernameExists)

	profile, err := s.users.GetProfile("josh")
	s.Require().NoError(err)
	s.Equal("josh name", profile.Name)
}

func (s *ServiceSuite) TestPatchUserRejectsBlankUsername() {
	blank := ""
	_, err := s.users.PatchUser(s.actor, models.PatchUserRequest{Username: &blank})
	s.ErrorIs(err, models.ErrBadRequest)
}

func (s *ServiceSuite) TestMailingList() {
	s.createClub("Water Club", "")
	s.createClub("Penn Labs", "")
	other := s.signup("jen")

	_, err := s.favorites.ToggleFavorite("Water Club", s.actor)
	s.Require().NoError(err)
	_, err = s.favorites.ToggleFavorite("Water Club", other)
	s.Require().NoError(err)

	emails, err := s.users.MailingList("WC")
	s.Require().NoError(err)
	s.Equal([]string{"josh@example.com", "jen@example.com"}, emails)

	emails, err = s.users.MailingList("PL")
	s.Require().NoError(err)
	s.NotNil(emails)
	s.Empty(emails)

	_, err = s.users.MailingList("NOPE")
	s.ErrorIs(err, models.ErrNoSuchClub)
}
