package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agamlatiff/upskills-sub001/internal/domain"
)

// catalogFixture builds two category groups: 6 programming courses and
// 4 design courses, 10 total. Courses 1-4 are free, 3, 6 and 9 popular.
func catalogFixture() []domain.CategoryGroup {
	var programming, design []domain.Course
	for i := 1; i <= 10; i++ {
		c := domain.Course{
			ID:         i,
			Title:      fmt.Sprintf("Course %d", i),
			Slug:       fmt.Sprintf("course-%d", i),
			Difficulty: "Beginner",
			IsFree:     i <= 4,
			IsPopular:  i%3 == 0,
		}
		if i <= 6 {
			c.Category = "Programming"
			programming = append(programming, c)
		} else {
			c.Category = "Design"
			c.Difficulty = "Advanced"
			design = append(design, c)
		}
	}
	return []domain.CategoryGroup{
		{Category: "Programming", Courses: programming},
		{Category: "Design", Courses: design},
	}
}

func TestFlatten_PreservesOrder(t *testing.T) {
	courses := Flatten(catalogFixture())

	require.Len(t, courses, 10)
	for i, c := range courses {
		assert.Equal(t, i+1, c.ID, "group order then in-group order")
	}
}

func TestView_NoFilters(t *testing.T) {
	v := NewView(catalogFixture())

	assert.Equal(t, 10, v.FilteredCount())
	assert.Equal(t, 2, v.TotalPages())
	assert.Equal(t, 1, v.Page())

	page := v.Visible()
	assert.Len(t, page.Items, PageSize)
	assert.Equal(t, 10, page.TotalCount)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)
}

func TestView_EmptyCatalogHasOnePage(t *testing.T) {
	v := NewView(nil)

	assert.Equal(t, 0, v.FilteredCount())
	assert.Equal(t, 1, v.TotalPages(), "total pages is never below 1")
	assert.Empty(t, v.Visible().Items)
}

func TestView_FreeOnly(t *testing.T) {
	v := NewView(catalogFixture())
	v.SetFreeOnly(true)

	assert.Equal(t, 4, v.FilteredCount())
	assert.Equal(t, 1, v.TotalPages())
	for _, c := range v.Visible().Items {
		assert.True(t, c.IsFree)
	}
}

func TestView_PopularOnly(t *testing.T) {
	v := NewView(catalogFixture())
	v.SetPopularOnly(true)

	assert.Equal(t, 3, v.FilteredCount())
	for _, c := range v.Visible().Items {
		assert.True(t, c.IsPopular)
	}
}

func TestView_CategoryFilter(t *testing.T) {
	v := NewView(catalogFixture())
	v.SetCategories([]string{"Design"})

	assert.Equal(t, 4, v.FilteredCount())
	for _, c := range v.Visible().Items {
		assert.Equal(t, "Design", c.Category)
	}
}

func TestView_DifficultyFilterCaseInsensitive(t *testing.T) {
	v := NewView(catalogFixture())
	v.SetDifficulties([]string{"ADVANCED"})

	assert.Equal(t, 4, v.FilteredCount())
	for _, c := range v.Visible().Items {
		assert.Equal(t, "Advanced", c.Difficulty)
	}
}

func TestView_SearchFilter(t *testing.T) {
	v := NewView(catalogFixture())
	v.SetSearch("course 1")

	// Substring match: "Course 1" and "Course 10".
	assert.Equal(t, 2, v.FilteredCount())
}

func TestView_FiltersCombineWithAnd(t *testing.T) {
	v := NewView(catalogFixture())
	v.SetCategories([]string{"Programming"})
	v.SetFreeOnly(true)

	// Programming is courses 1-6, free is 1-4: intersection is 1-4.
	assert.Equal(t, 4, v.FilteredCount())
	for _, c := range v.Visible().Items {
		assert.Equal(t, "Programming", c.Category)
		assert.True(t, c.IsFree)
	}

	v.SetPopularOnly(true)
	// Adding popular (3, 6, 9) narrows to course 3 only.
	require.Equal(t, 1, v.FilteredCount())
	assert.Equal(t, 3, v.Visible().Items[0].ID)
}

func TestView_PagePartition(t *testing.T) {
	v := NewView(catalogFixture())

	var seen []int
	for page := 1; page <= v.TotalPages(); page++ {
		require.True(t, v.SetPage(page))
		for _, c := range v.Visible().Items {
			seen = append(seen, c.ID)
		}
	}

	// Every course appears exactly once across pages, in order.
	require.Len(t, seen, 10)
	for i, id := range seen {
		assert.Equal(t, i+1, id)
	}
}

func TestView_FilterChangeResetsPage(t *testing.T) {
	v := NewView(catalogFixture())
	require.True(t, v.SetPage(2))

	v.SetSearch("course")
	assert.Equal(t, 1, v.Page())

	require.True(t, v.SetPage(2))
	v.SetCategories([]string{"Programming", "Design"})
	assert.Equal(t, 1, v.Page())

	require.True(t, v.SetPage(2))
	v.SetFreeOnly(false)
	assert.Equal(t, 1, v.Page(), "even a no-op toggle resets the page")
}

func TestView_SetPageIgnoresOutOfRange(t *testing.T) {
	v := NewView(catalogFixture())

	assert.False(t, v.SetPage(0))
	assert.Equal(t, 1, v.Page())

	assert.False(t, v.SetPage(3), "only 2 pages exist")
	assert.Equal(t, 1, v.Page())

	assert.True(t, v.SetPage(2))
	assert.Equal(t, 2, v.Page())
}

func TestView_ReloadClampsPage(t *testing.T) {
	v := NewView(catalogFixture())
	require.True(t, v.SetPage(2))

	// Reload with a catalog that only fills one page.
	v.Reload([]domain.CategoryGroup{{
		Category: "Programming",
		Courses:  []domain.Course{{ID: 1, Title: "Solo"}},
	}})

	assert.Equal(t, 1, v.Page())
	assert.Equal(t, 1, v.FilteredCount())
}

func TestView_SecondPageContents(t *testing.T) {
	v := NewView(catalogFixture())
	require.True(t, v.SetPage(2))

	page := v.Visible()
	require.Len(t, page.Items, 1)
	assert.Equal(t, 10, page.Items[0].ID)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)
}
