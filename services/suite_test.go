package services

import (
	"testing"

	"club-review/config"
	"club-review/models"
	"club-review/repositories"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceSuite struct {
	suite.Suite
	db        *gorm.DB
	clubs     ClubService
	tags      TagService
	auth      AuthService
	users     UserService
	favorites FavoriteService
	comments  CommentService
	actor     models.Principal
}

func (s *ServiceSuite) SetupTest() {
	log := zap.NewNop()
	db, err := config.InitDB(config.Database{Driver: config.DriverSQLite, Path: ":memory:"}, log)
	s.Require().NoError(err)
	s.db = db

	userRepo := repositories.NewUserRepository(db)
	clubRepo := repositories.NewClubRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	s.tags = NewTagService(tagRepo, log)
	s.clubs = NewClubService(clubRepo, tagRepo, s.tags, log)
	s.auth = NewAuthService(userRepo, log)
	s.users = NewUserService(userRepo, clubRepo, favoriteRepo, log)
	s.favorites = NewFavoriteService(favoriteRepo, clubRepo, userRepo, log)
	s.comments = NewCommentService(commentRepo, clubRepo, userRepo, log)

	s.actor = s.signup("josh")
}

func (s *ServiceSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())
}

func (s *ServiceSuite) signup(username string) models.Principal {
	user, err := s.auth.Signup(models.SignupRequest{
		Username: username,
		Password: "password123",
		Name:     username + " name",
		Email:    username + "@example.com",
	})
	s.Require().NoError(err)
	return user.Principal()
}

func (s *ServiceSuite) createClub(name, code string, tags ...string) *models.Club {
	club, err := s.clubs.CreateClub(models.CreateClubRequest{
		Code: code,
		Name: name,
		Tags: tags,
	}, s.actor)
	s.Require().NoError(err)
	return club
}

func (s *ServiceSuite) tagCount(name string) (int64, bool) {
	counts, err := s.tags.TagCounts()
	s.Require().NoError(err)
	for _, c := range counts {
		if c.Tag == name {
			return c.Count, true
		}
	}
	return 0, false
}

func clubNames(clubs []models.ClubResponse) []string {
	names := make([]string, 0, len(clubs))
	for _, c := range clubs {
		names = append(names, c.Name)
	}
	return names
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}
