package domain

import "strings"

// Difficulty labels as normalized by the catalog API.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Course represents one course in the catalog.
type Course struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Category        string   `json:"category"`
	Difficulty      string   `json:"difficulty"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description"`
	ImageURL        string   `json:"image_url,omitempty"`
	PriceCents      int64    `json:"price_cents"`
	IsFree          bool     `json:"is_free"`
	IsPopular       bool     `json:"is_popular"`
	Rating          float64  `json:"rating,omitempty"`
	Students        int      `json:"students,omitempty"`
	Lessons         []Lesson `json:"lessons,omitempty"`
}

// Lesson is a single unit inside a course curriculum.
type Lesson struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration,omitempty"`
	IsFree   bool   `json:"is_free"`
}

// CategoryGroup is the shape /courses returns: courses grouped by category.
type CategoryGroup struct {
	Category string   `json:"category"`
	Courses  []Course `json:"courses"`
}

// NormalizedDifficulty returns the difficulty label lowercased and trimmed,
// so filter comparisons are insensitive to API formatting drift.
func (c Course) NormalizedDifficulty() string {
	return strings.ToLower(strings.TrimSpace(c.Difficulty))
}

// MatchesKeyword reports whether the keyword occurs (case-insensitively) in
// the course title or long description.
func (c Course) MatchesKeyword(keyword string) bool {
	k := strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(c.Title), k) ||
		strings.Contains(strings.ToLower(c.LongDescription), k)
}
