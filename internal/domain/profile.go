package domain

// Profile is a snapshot of a remote account taken by one fetch.
type Profile struct {
	ID               int64
	Username         string
	FullName         string
	Biography        string
	IsVerified       bool
	IsBusiness       bool
	IsPrivate        bool
	FollowedByViewer bool
	Followers        int
	Following        int
	Posts            int
	AvatarURL        string
}

// Restricted reports whether the logged in account cannot see the profile's media.
func (p Profile) Restricted() bool {
	return p.IsPrivate && !p.FollowedByViewer
}
