package catalog

import (
	"strings"

	"github.com/agamlatiff/upskills-sub001/internal/domain"
	"github.com/agamlatiff/upskills-sub001/pkg/pagination"
)

// PageSize is the fixed number of courses per catalog page.
const PageSize = 9

// FilterState holds the active catalog filters.
type FilterState struct {
	SearchTerm   string
	Categories   map[string]struct{}
	Difficulties map[string]struct{}
	PopularOnly  bool
	FreeOnly     bool
}

// View derives the visible page of courses from the full in-memory catalog
// and the current filter state. It is single-owner state: one consumer
// mutates it, recomputation is deterministic.
type View struct {
	courses []domain.Course
	filter  FilterState
	page    int
}

// NewView creates a view over a category-grouped catalog.
func NewView(groups []domain.CategoryGroup) *View {
	return &View{
		courses: Flatten(groups),
		filter: FilterState{
			Categories:   make(map[string]struct{}),
			Difficulties: make(map[string]struct{}),
		},
		page: 1,
	}
}

// Flatten turns the category-grouped catalog into a single ordered sequence:
// group order first, then within-group order.
func Flatten(groups []domain.CategoryGroup) []domain.Course {
	var courses []domain.Course
	for _, g := range groups {
		courses = append(courses, g.Courses...)
	}
	return courses
}

// Reload replaces the underlying catalog, keeping filters. The current page
// is clamped into the new valid range.
func (v *View) Reload(groups []domain.CategoryGroup) {
	v.courses = Flatten(groups)
	v.page = pagination.Clamp(v.page, pagination.TotalPages(len(v.filtered()), PageSize))
}

// SetSearch updates the search term and resets to the first page.
func (v *View) SetSearch(term string) {
	v.filter.SearchTerm = term
	v.page = 1
}

// SetCategories replaces the selected category set and resets to the first page.
func (v *View) SetCategories(categories []string) {
	v.filter.Categories = toSet(categories)
	v.page = 1
}

// SetDifficulties replaces the selected difficulty set and resets to the first page.
func (v *View) SetDifficulties(difficulties []string) {
	set := make(map[string]struct{}, len(difficulties))
	for _, d := range difficulties {
		set[strings.ToLower(strings.TrimSpace(d))] = struct{}{}
	}
	v.filter.Difficulties = set
	v.page = 1
}

// SetPopularOnly toggles the popular-only filter and resets to the first page.
func (v *View) SetPopularOnly(on bool) {
	v.filter.PopularOnly = on
	v.page = 1
}

// SetFreeOnly toggles the free-only filter and resets to the first page.
func (v *View) SetFreeOnly(on bool) {
	v.filter.FreeOnly = on
	v.page = 1
}

// SetPage navigates to the given page. Requests outside [1, TotalPages] are
// ignored; the reported bool says whether the page changed.
func (v *View) SetPage(page int) bool {
	if page < 1 || page > v.TotalPages() {
		return false
	}
	v.page = page
	return true
}

// Page returns the current page number.
func (v *View) Page() int { return v.page }

// TotalPages returns the page count for the filtered set, always at least 1.
func (v *View) TotalPages() int {
	return pagination.TotalPages(len(v.filtered()), PageSize)
}

// FilteredCount returns the number of courses passing the active filters.
func (v *View) FilteredCount() int { return len(v.filtered()) }

// Visible returns the current page of the filtered catalog.
func (v *View) Visible() pagination.Result[domain.Course] {
	return pagination.Paginate(v.filtered(), v.page, PageSize)
}

// filtered applies the active predicates in fixed order; a course must pass
// every active one.
func (v *View) filtered() []domain.Course {
	out := make([]domain.Course, 0, len(v.courses))
	for _, c := range v.courses {
		if !v.matches(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (v *View) matches(c domain.Course) bool {
	if term := strings.TrimSpace(v.filter.SearchTerm); term != "" && !c.MatchesKeyword(term) {
		return false
	}
	if len(v.filter.Categories) > 0 {
		if _, ok := v.filter.Categories[c.Category]; !ok {
			return false
		}
	}
	if len(v.filter.Difficulties) > 0 {
		if _, ok := v.filter.Difficulties[c.NormalizedDifficulty()]; !ok {
			return false
		}
	}
	if v.filter.PopularOnly && !c.IsPopular {
		return false
	}
	if v.filter.FreeOnly && !c.IsFree {
		return false
	}
	return true
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, s := range values {
		set[s] = struct{}{}
	}
	return set
}
