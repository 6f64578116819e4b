package postings

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultParseMethod is how scraped pages are turned into job content when
// the operator does not say otherwise.
const DefaultParseMethod = "chatgpt"

// Scrape entity records how a posting's page content was obtained.
type Scrape struct {
	ID             uint
	URL            string `validate:"required,url"`
	CSSSelectors   string
	JobContent     string
	HTML           string
	ExternalLink   string `validate:"omitempty,url"`
	ParseMethod    string
	ScrapedAt      time.Time
	State          string
	CompanyID      *uint
	JobPostID      *uint
	SourceScrapeID *uint
}

// Validate for validating Scrape struct
func (s *Scrape) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Host returns the hostname of the scraped URL, or an empty string when the
// URL does not parse.
func (s *Scrape) Host() string {
	u, err := url.Parse(s.URL)
	if err != nil {
		return ""
	}
	return u.Host
}

// ScrapeQuery holds list filters and pagination for scrapes
type ScrapeQuery struct {
	CompanyID *uint
	JobPostID *uint
	State     string
	Limit     int
	Offset    int
}

// NewScrapeQuery creates a ScrapeQuery with default pagination
func NewScrapeQuery() *ScrapeQuery {
	return &ScrapeQuery{Limit: 50}
}
