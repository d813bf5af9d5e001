package game

import "strings"

// Rejection is the error returned for any refused action: permission
// violations, structural validation failures and unknown references alike.
// A rejected action leaves the prior game state fully intact.
type Rejection struct {
	Reasons []string
}

func (r *Rejection) Error() string {
	return strings.Join(r.Reasons, "; ")
}

// Reject builds a Rejection from one or more violation messages.
func Reject(reasons ...string) *Rejection {
	return &Rejection{Reasons: reasons}
}

// NotFound builds a Rejection for a missing entity reference.
func NotFound(what string) *Rejection {
	return Reject(what + " not found")
}
