package pgn

import (
	"strings"

	"github.com/navanchauhan/gochess/chesserr"
)

// parseHeader consumes the leading run of `[Key "Value"]` tag-pair lines
// from src and returns them plus the remaining text (the movetext),
// tolerating arbitrary tag order per spec.md §6.
func parseHeader(src string) (*TagPairs, string, error) {
	tags := NewTagPairs()
	rest := src

	for {
		trimmed := strings.TrimLeft(rest, " \t\r\n")
		if !strings.HasPrefix(trimmed, "[") {
			return tags, trimmed, nil
		}
		close := strings.IndexByte(trimmed, ']')
		if close < 0 {
			return tags, trimmed, &chesserr.PGNError{Err: chesserr.ErrInvalidPgn, Token: trimmed}
		}
		line := trimmed[1:close]
		rest = trimmed[close+1:]

		key, value, err := parseTagLine(line)
		if err != nil {
			return tags, rest, err
		}
		tags.Set(key, value)
	}
}

// parseTagLine parses the inside of one `Key "Value"` tag body, unescaping
// `\"` and `\\` per spec.md §6.
func parseTagLine(line string) (key, value string, err error) {
	line = strings.TrimSpace(line)
	sp := strings.IndexByte(line, ' ')
	if sp < 0 {
		return "", "", &chesserr.PGNError{Err: chesserr.ErrInvalidPgn, Token: line}
	}
	key = line[:sp]
	rest := strings.TrimSpace(line[sp+1:])
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", "", &chesserr.PGNError{Err: chesserr.ErrInvalidPgn, Token: line}
	}

	var sb strings.Builder
	body := rest[1 : len(rest)-1]
	escaped := false
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if escaped {
			sb.WriteByte(ch)
			escaped = false
			continue
		}
		if ch == '\\' {
			escaped = true
			continue
		}
		sb.WriteByte(ch)
	}
	return key, sb.String(), nil
}
