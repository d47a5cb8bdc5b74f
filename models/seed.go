package models

// ClubSeed is one record of the seed JSON array, produced either by a
// static file or by the scraper.
type ClubSeed struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func (s ClubSeed) CreateRequest() CreateClubRequest {
	return CreateClubRequest{
		Code:        s.Code,
		Name:        s.Name,
		Description: s.Description,
		Tags:        s.Tags,
	}
}
