package session

import "image"

// Entry is one uploaded card image in the session list. ID is issued from a
// monotonically increasing counter at insertion time and is stable for the
// life of the session.
type Entry struct {
	ID       uint64      `json:"id"`
	Name     string      `json:"name"`
	Position int         `json:"position"`
	Image    image.Image `json:"-"`
}
