package postlist

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/llehouerou/clipnotes/internal/icons"
	"github.com/llehouerou/clipnotes/internal/posts"
	"github.com/llehouerou/clipnotes/internal/ui/testutil"
)

var fixedNow = time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)

func entries() []posts.Entry {
	return []posts.Entry{
		{Slug: "old", Title: "Old Tune", Date: "2023-01-10", Category: "Jazz", Dir: "/a"},
		{Slug: "new", Title: "New Tune", Date: "2024-03-05", Category: "Rock", Snippet: "riffs", Dir: "/a"},
		{Slug: "mid", Title: "Mid Tune", Date: "2023-06-01", Category: "jazz", Dir: "/b"},
	}
}

func newTestList(q posts.Query) Model {
	icons.Init("none")
	m := New(q)
	m.now = func() time.Time { return fixedNow }
	m.SetSize(80, 20)
	return m
}

func TestSetEntries_NewestFirst(t *testing.T) {
	m := newTestList(posts.Query{})
	m.SetEntries(entries())

	if m.Len() != 3 {
		t.Fatalf("Len = %d, want 3", m.Len())
	}
	e, ok := m.Selected()
	if !ok || e.Slug != "new" {
		t.Errorf("Selected = %+v, want newest post", e)
	}
}

func TestCycleCategory(t *testing.T) {
	m := newTestList(posts.Query{})
	m.SetEntries(entries())

	m.CycleCategory()
	if m.Category() != "jazz" {
		t.Fatalf("Category = %q, want jazz", m.Category())
	}
	if m.Len() != 2 {
		t.Errorf("jazz posts = %d, want 2", m.Len())
	}

	m.CycleCategory()
	if m.Category() != "rock" || m.Len() != 1 {
		t.Errorf("Category = %q with %d posts", m.Category(), m.Len())
	}

	m.CycleCategory()
	if m.Category() != "" || m.Len() != 3 {
		t.Errorf("cycle should wrap to all, got %q with %d posts", m.Category(), m.Len())
	}
}

func TestQueryLimit(t *testing.T) {
	m := newTestList(posts.Query{Limit: 2})
	m.SetEntries(entries())
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}
}

func TestSelectSlug(t *testing.T) {
	m := newTestList(posts.Query{})
	m.SetEntries(entries())

	if !m.SelectSlug("old") {
		t.Fatal("SelectSlug(old) = false")
	}
	if e, _ := m.Selected(); e.Slug != "old" {
		t.Errorf("Selected = %q, want old", e.Slug)
	}
	if m.SelectSlug("missing") {
		t.Error("SelectSlug(missing) = true")
	}
}

func TestView_Messages(t *testing.T) {
	m := newTestList(posts.Query{})
	if !strings.Contains(testutil.StripANSI(m.View()), "Loading") {
		t.Error("unloaded list should say it is loading")
	}

	m.SetEntries(nil)
	if !strings.Contains(testutil.StripANSI(m.View()), posts.EmptyMessage) {
		t.Errorf("empty list view = %q", m.View())
	}

	m.SetError(errors.New("boom"))
	view := testutil.StripANSI(m.View())
	if !strings.Contains(view, posts.ErrorMessage) || strings.Contains(view, "boom") {
		t.Errorf("error view = %q", view)
	}

	m.SetEntries(entries())
	if strings.Contains(testutil.StripANSI(m.View()), posts.ErrorMessage) {
		t.Error("loading entries should clear the error")
	}
}

func TestView_ItemText(t *testing.T) {
	m := newTestList(posts.Query{})
	m.SetEntries(entries())
	view := testutil.StripANSI(m.View())

	for _, want := range []string{"New Tune", "Mar 5, 2024", "3 days ago", "#Rock", "riffs"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestSetOpen_MarksPost(t *testing.T) {
	m := newTestList(posts.Query{})
	m.SetEntries(entries())
	m.SetOpen(entries()[2])

	line := testutil.FindLine(m.View(), "Mid Tune")
	if !strings.Contains(line, "| Mid Tune") {
		t.Errorf("open post not marked: %q", line)
	}
	if other := testutil.FindLine(m.View(), "New Tune"); strings.Contains(other, "| New Tune") {
		t.Errorf("closed post marked: %q", other)
	}
}

func TestUpdate_NavigatesAndIgnoresQuit(t *testing.T) {
	m := newTestList(posts.Query{})
	m.SetEntries(entries())

	m, _ = m.Update(testutil.Key("j"))
	if e, _ := m.Selected(); e.Slug != "mid" {
		t.Errorf("after j selected %q, want mid", e.Slug)
	}

	_, cmd := m.Update(testutil.Key("q"))
	if cmd != nil {
		t.Error("list must not handle quit itself")
	}
}
