package services

import (
	"club-review/models"
)

func (s *ServiceSuite) TestCreateClubDerivesCode() {
	club := s.createClub("Water Club", "", "Health")

	s.Equal("WC", club.Code)
	s.Equal("", club.Description)
	s.Equal([]string{"Health"}, club.TagNames())
}

func (s *ServiceSuite) TestCreateClubKeepsExplicitCode() {
	club := s.createClub("Water Club", "abcd")
	s.Equal("abcd", club.Code)
}

func (s *ServiceSuite) TestCreateClubRequiresName() {
	_, err := s.clubs.CreateClub(models.CreateClubRequest{Code: "X"}, s.actor)
	s.ErrorIs(err, models.ErrBadRequest)

	_, err = s.clubs.CreateClub(models.CreateClubRequest{Name: "   "}, s.actor)
	s.ErrorIs(err, models.ErrBadRequest)
}

func (s *ServiceSuite) TestCreateClubDuplicateCode() {
	s.createClub("Water Club", "WC")

	_, err := s.clubs.CreateClub(models.CreateClubRequest{
		Code: "WC",
		Name: "Wine Club",
		Tags: []string{"Fresh"},
	}, s.actor)
	s.ErrorIs(err, models.ErrDuplicateFields)

	clubs, err := s.clubs.SearchClubs("")
	s.Require().NoError(err)
	s.Equal([]string{"Water Club"}, clubNames(clubs))

	// The tag created for the failed club stays behind.
	count, found := s.tagCount("Fresh")
	s.True(found)
	s.Equal(int64(0), count)
}

func (s *ServiceSuite) TestCreateClubDuplicateName() {
	s.createClub("Water Club", "WC")

	_, err := s.clubs.CreateClub(models.CreateClubRequest{Code: "OTHER", Name: "Water Club"}, s.actor)
	s.ErrorIs(err, models.ErrDuplicateFields)
}

func (s *ServiceSuite) TestCreateClubRepeatedTagName() {
	club := s.createClub("Water Club", "", "Health", "Health")
	s.Equal([]string{"Health"}, club.TagNames())
}

func (s *ServiceSuite) TestSearchClubs() {
	s.createClub("Water Club", "")
	s.createClub("Wine Club", "WiC")
	s.createClub("Penn Labs", "")

	all, err := s.clubs.SearchClubs("")
	s.Require().NoError(err)
	s.Len(all, 3)

	matched, err := s.clubs.SearchClubs("Wat")
	s.Require().NoError(err)
	s.Equal([]string{"Water Club"}, clubNames(matched))

	matched, err = s.clubs.SearchClubs("Club")
	s.Require().NoError(err)
	s.Equal([]string{"Water Club", "Wine Club"}, clubNames(matched))

	matched, err = s.clubs.SearchClubs("wat")
	s.Require().NoError(err)
	s.Empty(matched)

	// LIKE wildcards in the keyword are not escaped.
	matched, err = s.clubs.SearchClubs("%")
	s.Require().NoError(err)
	s.Len(matched, 3)
}

func (s *ServiceSuite) TestSearchClubsIncludesTags() {
	s.createClub("Water Club", "", "Undergraduate", "Health")

	clubs, err := s.clubs.SearchClubs("Water")
	s.Require().NoError(err)
	s.Require().Len(clubs, 1)
	s.ElementsMatch([]string{"Undergraduate", "Health"}, clubs[0].Tags)
	s.Equal("WC", clubs[0].Code)
}

func (s *ServiceSuite) TestPatchClubReplacesTags() {
	s.createClub("Water Club", "WC", "A", "B")

	club, err := s.clubs.PatchClub("WC", models.PatchClubRequest{Tags: models.NewTagList("C")}, s.actor)
	s.Require().NoError(err)
	s.Equal([]string{"C"}, club.TagNames())

	for name, want := range map[string]int64{"A": 0, "B": 0, "C": 1} {
		count, found := s.tagCount(name)
		s.True(found, name)
		s.Equal(want, count, name)
	}
}

func (s *ServiceSuite) TestPatchClubEmptyTagsClears() {
	s.createClub("Water Club", "WC", "A")

	club, err := s.clubs.PatchClub("WC", models.PatchClubRequest{Tags: models.NewTagList()}, s.actor)
	s.Require().NoError(err)
	s.Empty(club.Tags)
}

func (s *ServiceSuite) TestPatchClubFields() {
	s.createClub("Water Club", "WC", "A")

	name := "Sparkling Water Club"
	code := "SWC"
	description := ""
	club, err := s.clubs.PatchClub("WC", models.PatchClubRequest{
		Name:        &name,
		Code:        &code,
		Description: &description,
	}, s.actor)
	s.Require().NoError(err)
	s.Equal(name, club.Name)
	s.Equal(code, club.Code)
	s.Equal("", club.Description)
	s.Equal([]string{"A"}, club.TagNames())

	_, err = s.clubs.PatchClub("WC", models.PatchClubRequest{Name: &name}, s.actor)
	s.ErrorIs(err, models.ErrNoSuchClub)
}

func (s *ServiceSuite) TestPatchClubConflict() {
	s.createClub("Water Club", "WC")
	s.createClub("Wine Club", "WiC")

	name := "Wine Club"
	_, err := s.clubs.PatchClub("WC", models.PatchClubRequest{Name: &name}, s.actor)
	s.ErrorIs(err, models.ErrDuplicateFields)

	matched, err := s.clubs.SearchClubs("Water")
	s.Require().NoError(err)
	s.Equal([]string{"Water Club"}, clubNames(matched))
}

func (s *ServiceSuite) TestPatchClubRejectsBlankName() {
	s.createClub("Water Club", "WC")

	blank := " "
	_, err := s.clubs.PatchClub("WC", models.PatchClubRequest{Name: &blank}, s.actor)
	s.ErrorIs(err, models.ErrBadRequest)
}

func (s *ServiceSuite) TestClubsByTag() {
	s.createClub("Water Club", "", "Health")
	s.createClub("Wine Club", "WiC", "Health", "Social")
	s.createClub("Penn Labs", "", "Tech")

	clubs, err := s.clubs.ClubsByTag("Health")
	s.Require().NoError(err)
	s.Equal([]string{"Water Club", "Wine Club"}, clubNames(clubs))
	s.ElementsMatch([]string{"Health", "Social"}, clubs[1].Tags)

	_, err = s.clubs.ClubsByTag("Nope")
	s.ErrorIs(err, models.ErrNoSuchTag)
}
