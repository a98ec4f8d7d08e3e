package domain

// Session is the single authenticated identity held by the client.
// The access token is persisted in cleartext on disk; the store never
// encrypts it, which is a known weakness of the product, not an accident
// of this implementation.
type Session struct {
	AccessToken string
	User        *UserInfo
}

type UserInfo struct {
	Email   string
	Name    string
	Picture string
}

func (s Session) Valid() bool {
	return s.AccessToken != ""
}
