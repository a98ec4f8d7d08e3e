package domain

type Email struct {
	ID      string
	Sender  string
	Subject string
	Summary string
}

// DraftReply is an AI-generated reply to an unread message. InReplyTo and
// References are the threading headers returned by the draft endpoint; a
// send that drops them breaks threading in the recipient's mail client.
type DraftReply struct {
	Body       string
	To         string
	Subject    string
	InReplyTo  string
	References string
}

type OutgoingEmail struct {
	To         string
	Subject    string
	Body       string
	InReplyTo  string
	References string
}
