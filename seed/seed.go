// Package seed loads club records into the database through the service
// layer, so seeded data obeys the same rules as API writes.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"club-review/models"
	"club-review/services"

	"go.uber.org/zap"
)

// seedActor is reported as the author of seeded writes.
var seedActor = models.Principal{Username: "seed"}

// LoadClubs decodes a JSON array of club records.
func LoadClubs(r io.Reader) ([]models.ClubSeed, error) {
	var clubs []models.ClubSeed
	if err := json.NewDecoder(r).Decode(&clubs); err != nil {
		return nil, fmt.Errorf("decode clubs: %w", err)
	}
	return clubs, nil
}

func LoadClubsFile(path string) ([]models.ClubSeed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadClubs(f)
}

type Seeder struct {
	clubs services.ClubService
	auth  services.AuthService
	log   *zap.Logger
}

func NewSeeder(clubs services.ClubService, auth services.AuthService, log *zap.Logger) *Seeder {
	return &Seeder{clubs: clubs, auth: auth, log: log}
}

// SeedClubs creates every club in order. Clubs whose code or name already
// exist are skipped so the seeder can be rerun.
func (s *Seeder) SeedClubs(clubs []models.ClubSeed) (created, skipped int, err error) {
	for _, club := range clubs {
		_, err := s.clubs.CreateClub(club.CreateRequest(), seedActor)
		if err != nil {
			var conflict models.ErrorConflict
			if errors.As(err, &conflict) {
				s.log.Debug("Skipping existing club", zap.String("name", club.Name))
				skipped++
				continue
			}
			return created, skipped, fmt.Errorf("seed club %q: %w", club.Name, err)
		}
		created++
	}

	s.log.Info("Seeded clubs", zap.Int("created", created), zap.Int("skipped", skipped))
	return created, skipped, nil
}

// SeedUser signs up a bootstrap account. An existing account with the same
// username is left untouched.
func (s *Seeder) SeedUser(req models.SignupRequest) error {
	_, err := s.auth.Signup(req)
	if err == nil {
		s.log.Info("Seeded user", zap.String("username", req.Username))
		return nil
	}

	var conflict models.ErrorConflict
	if errors.As(err, &conflict) {
		s.log.Info("User already exists", zap.String("username", req.Username))
		return nil
	}
	return fmt.Errorf("seed user %q: %w", req.Username, err)
}
