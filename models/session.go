package models

// Session is the locally persisted authentication state of the client.
// It is owned by the session store; the realtime layer only ever reads it.
type Session struct {
	// AccessToken is the bearer token for authenticated requests and
	// stream connections. Empty when no user is logged in.
	AccessToken string

	// UserID is the server-side identifier of the logged-in user.
	UserID string

	// Role is the logged-in user's role ([RoleTalent] or [RoleRecruiter]).
	Role string

	// Language is the preferred interface language code. Survives logout.
	Language string

	// OnboardingDone records whether the user has completed the first-run
	// onboarding. Deliberately untouched by logout.
	OnboardingDone bool
}

// Authenticated reports whether the session carries an access token.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}
