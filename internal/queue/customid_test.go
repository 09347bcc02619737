package queue

import (
	"errors"
	"testing"
)

func TestCustomIDRoundTrip(t *testing.T) {
	in := CustomID{
		Action:  ActionAccept,
		QueueID: "1234567890123456789",
		RoleID:  "2234567890123456789",
		Colour:  0x57F287,
	}
	out, err := ParseCustomID(in.String())
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestCustomIDRoundTripWithVoice(t *testing.T) {
	in := CustomID{
		Action:         ActionTentative,
		QueueID:        "1234567890123456789",
		RoleID:         "2234567890123456789",
		Colour:         0,
		VoiceChannelID: "3234567890123456789",
	}
	out, err := ParseCustomID(in.String())
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestParseCustomIDRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"accept",
		"accept_123",
		"kick_1234567890123456789_2234567890123456789_0",          // unknown action
		"accept_notasnowflake_2234567890123456789_0",              // bad queue id
		"accept_1234567890123456789_alsonot_0",                    // bad role id
		"accept_1234567890123456789_2234567890123456789_red",      // bad colour
		"accept_1234567890123456789_2234567890123456789_-5",       // negative colour
		"accept_1234567890123456789_2234567890123456789_0_nope",   // bad voice id
		"accept_1234567890123456789_2234567890123456789_0_1_2",    // too many parts
		"queue_action",                                            // a different component's id
	}
	for _, s := range cases {
		if _, err := ParseCustomID(s); !errors.Is(err, ErrBadCustomID) {
			t.Fatalf("ParseCustomID(%q): want ErrBadCustomID, got %v", s, err)
		}
	}
}
