package domain

// Identity is the caller's resolved identity, threaded explicitly through
// handlers instead of a nullable user looked up as a side effect. It has
// two variants: Authenticated (carries a user id) and Anonymous.
type Identity struct {
	userID        int64
	authenticated bool
}

// Authenticated returns an identity for a verified user id.
func Authenticated(userID int64) Identity {
	return Identity{userID: userID, authenticated: true}
}

// Anonymous returns the identity of an unauthenticated caller.
func Anonymous() Identity {
	return Identity{}
}

// IsAuthenticated reports whether the identity carries a verified user.
func (i Identity) IsAuthenticated() bool {
	return i.authenticated
}

// UserID returns the verified user id, or ok=false for an anonymous caller.
func (i Identity) UserID() (int64, bool) {
	return i.userID, i.authenticated
}

// UserIDPtr returns the user id as a nullable reference for persistence,
// nil for an anonymous caller.
func (i Identity) UserIDPtr() *int64 {
	if !i.authenticated {
		return nil
	}
	id := i.userID
	return &id
}
