package model

// ListQuery selects which repositories are listed.
// With a token the authenticated identity's own repositories are listed (private included),
// otherwise only the public repositories of Account
type ListQuery struct {
	Account string
	Token   string
}

func (q ListQuery) Authenticated() bool {
	return q.Token != ""
}

// AccessDescription is the banner line telling which repositories will be fetched
func (q ListQuery) AccessDescription() string {
	if q.Authenticated() {
		return "Access to private repositories enabled"
	}

	return "Fetching public repositories only"
}
