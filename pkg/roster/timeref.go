package roster

import "regexp"

// Matches a time block header such as "Horário 16:00", "horario 13h30" or
// "Horário 9h". The captured group is the time token itself.
var timeHeaderRegex = regexp.MustCompile(`(?i)^hor[aá]rio\s*(\d{1,2}:\d{2}|\d{1,2}h\d{0,2})`)

// MatchTimeHeader reports whether line is a block header that sets the active
// time for the worker lines that follow it. On a match it returns the time
// token; the line itself produces no assignment.
func MatchTimeHeader(line string) (string, bool) {
	m := timeHeaderRegex.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}
