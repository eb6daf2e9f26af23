package roster

import "strings"

// ParseCommand turns a raw "/escala" command into an ordered sequence of
// (worker, assignment) drafts.
//
// Line 0 carries the command token and the free-text date. Every following
// line is either a time block header ("Horário 16:00"), which sets the active
// time for subsequent lines, or a candidate worker line. Worker lines are
// paired positionally with mentions: line i consumes the next unconsumed
// mention, regardless of what the literal "@" text on the line says.
//
// Two authoring styles coexist in the same message: "@worker 12:00" inline,
// and a "Horário 16:00" header followed by bare "@worker" lines. An explicit
// inline time always wins over the carried block time for that one line. A
// worker line with neither is dropped (its mention stays consumed).
//
// location comes from the group subject when the command originated in a
// group; pass "" otherwise and the sentinel is used. directory maps worker
// tokens to display names and may be nil.
func ParseCommand(text string, mentions []WorkerID, group GroupID, location string, directory map[WorkerID]string) []Draft {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil
	}

	dateLabel := stripCommandToken(lines[0])
	if dateLabel == "" {
		dateLabel = DefaultDateLabel
	}
	if location == "" {
		location = DefaultLocation
	}

	var drafts []Draft
	mentionIndex := 0
	activeTime := ""

	for _, line := range lines[1:] {
		if token, ok := MatchTimeHeader(line); ok {
			activeTime = token
			continue
		}

		// Traditional format: "@worker 12:00" — the last token is an
		// explicit time when the line mentions someone and has more
		// than one token.
		explicitTime := ""
		fields := strings.Fields(line)
		if strings.Contains(line, "@") && len(fields) > 1 {
			explicitTime = fields[len(fields)-1]
		}

		if mentionIndex >= len(mentions) {
			continue // no mention left to pair with this line
		}
		worker := mentions[mentionIndex]
		mentionIndex++

		timeLabel := explicitTime
		if timeLabel == "" {
			timeLabel = activeTime
		}
		if timeLabel == "" {
			continue // no discoverable time for this line
		}

		name := directory[worker]
		if name == "" {
			name = DefaultWorkerName
		}

		drafts = append(drafts, Draft{
			Worker: worker,
			Assignment: ShiftAssignment{
				Group:      group,
				Location:   location,
				DateLabel:  dateLabel,
				TimeLabel:  timeLabel,
				WorkerName: name,
			},
		})
	}

	return drafts
}

// IsScheduleCommand reports whether trimmed message text is a roster command.
// Both the slash form and the bare verb are accepted, case-insensitively.
func IsScheduleCommand(text string) bool {
	lower := strings.ToLower(text)
	return strings.HasPrefix(lower, "/escala") || strings.HasPrefix(lower, "escala")
}

// stripCommandToken removes the leading "/escala" or "escala" token from the
// header line, case-insensitively, trimming exactly once.
func stripCommandToken(header string) string {
	lower := strings.ToLower(header)
	switch {
	case strings.HasPrefix(lower, "/escala"):
		header = header[len("/escala"):]
	case strings.HasPrefix(lower, "escala"):
		header = header[len("escala"):]
	}
	return strings.TrimSpace(header)
}

// splitLines splits text into trimmed, non-empty lines.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
