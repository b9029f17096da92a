package state

// Interface is what the app needs from a state store.
type Interface interface {
	GetNavigation() (*NavigationState, error)
	SaveNavigation(s NavigationState)
	RecentPosts(limit int) ([]RecentPost, error)
	AddRecent(p RecentPost) error
	Close() error
}

var (
	_ Interface = (*Manager)(nil)
	_ Interface = (*Mock)(nil)
)
