package domain

import "time"

// DefaultPageSize is the page size the jobs endpoint uses when none is given.
const DefaultPageSize = 12

// Job is a freelance job posting scraped from a marketplace.
// Jobs are passed through from the backend unmodified.
type Job struct {
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	LinkHash    string    `json:"linkHash"`
	Description string    `json:"description"`
	Skills      string    `json:"skills"`
	MinBudget   *float64  `json:"minBudget,omitempty"`
	MaxBudget   *float64  `json:"maxBudget,omitempty"`
	ScrapedAt   Timestamp `json:"scraped_at"`
}

// JobPage is one page of the job listing.
type JobPage struct {
	Jobs          []Job `json:"content"`
	Page          int   `json:"number"`
	Size          int   `json:"size"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

// HasNext returns true if there is a page after this one.
func (p *JobPage) HasNext() bool {
	return p.Page+1 < p.TotalPages
}

// HasPrev returns true if there is a page before this one.
func (p *JobPage) HasPrev() bool {
	return p.Page > 0
}

// SearchField selects which job field a keyword search matches against.
type SearchField string

const (
	// SearchByTitle matches the keyword against job titles.
	SearchByTitle SearchField = "title"
	// SearchBySkills matches the keyword against the skills list.
	SearchBySkills SearchField = "skills"
)

// IsValid returns true if the search field is recognised.
func (f SearchField) IsValid() bool {
	return f == SearchByTitle || f == SearchBySkills
}

// JobSearch is a keyword search over jobs.
type JobSearch struct {
	Keyword string      `json:"keyword"`
	Type    SearchField `json:"type"`
}

// Timestamp decodes the backend's zone-less LocalDateTime values.
type Timestamp struct {
	time.Time
}

// timestampLayouts are tried in order when decoding.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
}

// UnmarshalJSON accepts LocalDateTime strings with or without fractional seconds.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// MarshalJSON writes the timestamp in the backend's LocalDateTime layout.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format("2006-01-02T15:04:05") + `"`), nil
}
