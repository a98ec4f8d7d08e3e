package domain

type Event struct {
	ID          string
	Title       string
	Start       string
	End         string
	Location    string
	Description string
}
