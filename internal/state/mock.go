package state

import "slices"

// Mock is a test double for Manager.
type Mock struct {
	navState *NavigationState
	saved    []NavigationState
	recent   []RecentPost
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveNavigation(state NavigationState) {
	m.saved = append(m.saved, state)
	m.navState = &state
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	return m.navState, nil
}

func (m *Mock) AddRecent(p RecentPost) error {
	m.recent = slices.DeleteFunc(m.recent, func(r RecentPost) bool { return r.Path == p.Path })
	m.recent = slices.Insert(m.recent, 0, p)
	return nil
}

func (m *Mock) RecentPosts(limit int) ([]RecentPost, error) {
	if limit > 0 && len(m.recent) > limit {
		return slices.Clone(m.recent[:limit]), nil
	}
	return slices.Clone(m.recent), nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetNavigation(state *NavigationState) { m.navState = state }

func (m *Mock) SavedNavigation() []NavigationState { return m.saved }

func (m *Mock) IsClosed() bool { return m.closed }
