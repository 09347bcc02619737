package queue

// Apply is the click state transition. The user is removed from whichever
// list currently holds them and appended to the list matching the action,
// so a repeated click moves the user to the back of their list. Everyone
// else keeps their relative order.
//
// Apply works on a value and returns fresh slices; it never mutates its
// input's lists.
func Apply(q Queue, action Action, userID string) Queue {
	q.Accept = without(q.Accept, userID)
	q.Decline = without(q.Decline, userID)
	q.Tentative = without(q.Tentative, userID)

	switch action {
	case ActionAccept:
		q.Accept = append(q.Accept, userID)
	case ActionDecline:
		q.Decline = append(q.Decline, userID)
	case ActionTentative:
		q.Tentative = append(q.Tentative, userID)
	}
	return q
}

// without copies ids minus userID, preserving order.
func without(ids []string, userID string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != userID {
			out = append(out, id)
		}
	}
	return out
}
