// Package scraper turns the public club listing page into seed records.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"club-review/models"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const DefaultURL = "https://ocwp.pennlabs.org"

type Scraper struct {
	client *http.Client
	log    *zap.Logger
}

// New returns a Scraper using client, or a client with a 30s timeout when
// client is nil.
func New(client *http.Client, log *zap.Logger) *Scraper {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Scraper{client: client, log: log}
}

// Scrape fetches url and parses every club box on the page.
func (s *Scraper) Scrape(ctx context.Context, url string) ([]models.ClubSeed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	clubs, err := ParseClubs(resp.Body)
	if err != nil {
		return nil, err
	}
	s.log.Info("Scraped clubs", zap.String("url", url), zap.Int("count", len(clubs)))
	return clubs, nil
}

// ParseClubs reads a listing document. Boxes without a club name are
// skipped; the code is the acronym of the name.
func ParseClubs(r io.Reader) ([]models.ClubSeed, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}

	clubs := make([]models.ClubSeed, 0)
	doc.Find("div.box").Each(func(_ int, box *goquery.Selection) {
		name := strings.TrimSpace(box.Find("strong.club-name").First().Text())
		if name == "" {
			return
		}

		tags := make([]string, 0)
		box.Find("span.tag").Each(func(_ int, tag *goquery.Selection) {
			tags = append(tags, strings.TrimSpace(tag.Text()))
		})

		clubs = append(clubs, models.ClubSeed{
			Code:        models.AcronymCode(name),
			Name:        name,
			Description: strings.TrimSpace(box.Find("em").First().Text()),
			Tags:        tags,
		})
	})

	return clubs, nil
}
