package protocols

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/reusee/pane/grids"
)

const (
	markerOpen  = "<!--"
	markerClose = "-->"
)

var (
	keywordPattern = regexp.MustCompile(`^\s*([A-Z][A-Z0-9_]*)\s*(?::\s*(.*?))?\s*$`)
	bracketPattern = regexp.MustCompile(`\[([^\[\]]*)\]`)
)

// Tokenize scans the whole buffer in one pass and returns the
// recognized events plus the unconsumed tail: a trailing open marker
// whose close marker has not arrived yet. Everything else is either a
// delimiter or content.
func Tokenize(buffer string) (events []Event, tail string) {
	var content strings.Builder
	flush := func() {
		if content.Len() > 0 {
			events = append(events, ScreenContent{Chunk: content.String()})
			content.Reset()
		}
	}

	pos := 0
	for {
		rel := strings.Index(buffer[pos:], markerOpen)
		if rel < 0 {
			content.WriteString(buffer[pos:])
			flush()
			return events, ""
		}
		start := pos + rel

		rel = strings.Index(buffer[start+len(markerOpen):], markerClose)
		if rel < 0 {
			// the close marker may still be in flight
			content.WriteString(buffer[pos:start])
			flush()
			return events, buffer[start:]
		}
		innerEnd := start + len(markerOpen) + rel
		next := innerEnd + len(markerClose)

		event, isDelimiter := parseDelimiter(buffer[start+len(markerOpen) : innerEnd])
		if isDelimiter {
			content.WriteString(buffer[pos:start])
			flush()
			if event != nil {
				events = append(events, event)
			}
		} else {
			// ordinary comment, part of the surrounding content
			content.WriteString(buffer[pos:next])
		}
		pos = next
	}
}

// parseDelimiter decides whether a comment body is a protocol
// delimiter. A body matching the uppercase keyword shape is always
// consumed, even when the keyword is unknown, so newer producers stay
// compatible with older parsers.
func parseDelimiter(inner string) (event Event, isDelimiter bool) {
	m := keywordPattern.FindStringSubmatch(inner)
	if m == nil {
		return nil, false
	}
	keyword, payload := m[1], m[2]
	switch keyword {
	case "PROJECT_NAME":
		return ProjectName{Name: payload}, true
	case "PROJECT_ICON":
		return ProjectIcon{Icon: payload}, true
	case "MESSAGE":
		return Message{Text: payload}, true
	case "SCREEN_START":
		return parseScreenPayload(payload, ScreenCreate), true
	case "SCREEN_EDIT":
		return parseScreenPayload(payload, ScreenEdit), true
	case "SCREEN_END":
		return ScreenClosed{}, true
	}
	return nil, true
}

// parseScreenPayload splits a screen payload into the display name
// and its bracket groups. A group containing a comma is a grid cell,
// ROOT marks the entry screen, anything else is an unrecognized flag
// and dropped. Bracket groups never contribute to the name.
func parseScreenPayload(payload string, mode ScreenMode) ScreenOpened {
	ret := ScreenOpened{
		Mode: mode,
	}
	name := bracketPattern.ReplaceAllStringFunc(payload, func(group string) string {
		inner := strings.TrimSpace(group[1 : len(group)-1])
		if strings.EqualFold(inner, "ROOT") {
			ret.Root = true
		} else if column, row, ok := parseCell(inner); ok && !ret.HasCell {
			ret.Cell = grids.Cell{
				Column: column,
				Row:    row,
			}
			ret.HasCell = true
		}
		return " "
	})
	ret.Name = strings.Join(strings.Fields(name), " ")
	return ret
}

func parseCell(inner string) (column int, row int, ok bool) {
	first, second, found := strings.Cut(inner, ",")
	if !found {
		return 0, 0, false
	}
	// malformed numbers fall back to zero
	column, _ = strconv.Atoi(strings.TrimSpace(first))
	row, _ = strconv.Atoi(strings.TrimSpace(second))
	return column, row, true
}
