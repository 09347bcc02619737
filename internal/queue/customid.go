package queue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/disgoorg/snowflake/v2"
)

// CustomID is the structured form of a button's custom_id. Discord echoes
// the string back verbatim on every click, so it carries enough display
// metadata to re-render the message without extra lookups.
//
// Wire format: action_queueId_roleId_colour[_voiceChannelId]
type CustomID struct {
	Action         Action
	QueueID        string
	RoleID         string
	Colour         int
	VoiceChannelID string
}

func (c CustomID) String() string {
	s := fmt.Sprintf("%s_%s_%s_%d", c.Action, c.QueueID, c.RoleID, c.Colour)
	if c.VoiceChannelID != "" {
		s += "_" + c.VoiceChannelID
	}
	return s
}

// ParseCustomID parses and validates a button custom_id. Anything that does
// not look like one of ours (wrong arity, unknown action, non-snowflake ids,
// non-numeric colour) fails with ErrBadCustomID so the router can reject it
// instead of acting on garbage fields.
func ParseCustomID(s string) (CustomID, error) {
	parts := strings.Split(s, "_")
	if len(parts) < 4 || len(parts) > 5 {
		return CustomID{}, fmt.Errorf("%w: %q", ErrBadCustomID, s)
	}

	action, err := ParseAction(parts[0])
	if err != nil {
		return CustomID{}, fmt.Errorf("%w: action %q", ErrBadCustomID, parts[0])
	}
	if _, err := snowflake.Parse(parts[1]); err != nil {
		return CustomID{}, fmt.Errorf("%w: queue id %q", ErrBadCustomID, parts[1])
	}
	if _, err := snowflake.Parse(parts[2]); err != nil {
		return CustomID{}, fmt.Errorf("%w: role id %q", ErrBadCustomID, parts[2])
	}
	colour, err := strconv.Atoi(parts[3])
	if err != nil || colour < 0 {
		return CustomID{}, fmt.Errorf("%w: colour %q", ErrBadCustomID, parts[3])
	}

	c := CustomID{
		Action:  action,
		QueueID: parts[1],
		RoleID:  parts[2],
		Colour:  colour,
	}
	if len(parts) == 5 {
		if _, err := snowflake.Parse(parts[4]); err != nil {
			return CustomID{}, fmt.Errorf("%w: voice channel %q", ErrBadCustomID, parts[4])
		}
		c.VoiceChannelID = parts[4]
	}
	return c, nil
}
