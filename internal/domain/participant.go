package domain

// Participant is a connected (or known) session participant.
// GM marks a privileged participant.
type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	GM     bool   `json:"gm"`
	Active bool   `json:"active"`
}
