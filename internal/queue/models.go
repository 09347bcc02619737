package queue

import "time"

// Action is one of the three RSVP buttons.
type Action string

const (
	ActionAccept    Action = "accept"
	ActionDecline   Action = "decline"
	ActionTentative Action = "tentative"
)

// ParseAction maps the wire string back to an Action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionAccept, ActionDecline, ActionTentative:
		return Action(s), nil
	}
	return "", ErrBadAction
}

// Queue tracks who answered a role ping. One record per posted message,
// keyed by the interaction that created it.
type Queue struct {
	ID             string `json:"id"`      // interaction ID of the /queue invocation
	RoleID         string `json:"role_id"` // role that was pinged
	RoleColour     int    `json:"role_colour"`
	VoiceChannelID string `json:"voice_channel_id,omitempty"`

	// membership lists, in click order. A user is in at most one of them.
	Accept    []string `json:"accept"`
	Decline   []string `json:"decline"`
	Tentative []string `json:"tentative"`

	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}

// IdleSince is the reference time for expiry: the last click, or creation
// if nobody ever clicked.
func (q *Queue) IdleSince() time.Time {
	if q.LastUpdated.IsZero() {
		return q.CreatedAt
	}
	return q.LastUpdated
}

// snapshot returns a deep copy, so callers never share slices with the store.
func snapshot(q *Queue) *Queue {
	cp := *q
	cp.Accept = append([]string(nil), q.Accept...)
	cp.Decline = append([]string(nil), q.Decline...)
	cp.Tentative = append([]string(nil), q.Tentative...)
	return &cp
}
