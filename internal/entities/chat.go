package entities

import (
	"time"
)

// Author tells who wrote a message.
type Author string

const (
	// Mine ...
	Mine Author = "mine"
	// Theirs ...
	Theirs Author = "theirs"
)

// Message ...
type Message struct {
	Author Author
	Text   string
}

// ChatPeer is a reference to the person a chat is held with.
type ChatPeer struct {
	ID       string
	Nickname string
	Avatar   string
}

// Chat ...
type Chat struct {
	ID       string
	With     ChatPeer
	Messages []Message
	Unread   int
	Last     string
}

// Feedback is a bug report or any other user feedback.
type Feedback struct {
	ID        int64
	Type      string
	Message   string
	View      string
	Role      string
	IP        string
	CreatedAt time.Time
}
