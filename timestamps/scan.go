package timestamps

import "strings"

// candidate is a token/label span found on one line, before parsing.
type candidate struct {
	token string
	label string
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isTokenByte(c byte) bool { return isDigit(c) || c == ':' }

func isSeparator(c byte) bool { return c == '-' || c == ':' }

// scanForward matches a line that starts with a timestamp:
//
//	0:00 Intro
//	(1:02:03) - Outro
//	12:30: Bridge
func scanForward(line string) (candidate, bool) {
	rest := strings.TrimLeft(line, " \t")
	rest = strings.TrimPrefix(rest, "(")
	if rest == "" || !isDigit(rest[0]) {
		return candidate{}, false
	}

	n := 0
	for n < len(rest) && isTokenByte(rest[n]) {
		n++
	}
	token := rest[:n]
	// "1:00: Intro" - the last colon separates, it is not part of the token.
	if strings.HasSuffix(token, ":") {
		n--
		token = token[:n]
	}

	after := strings.TrimPrefix(rest[n:], ")")
	after = strings.TrimLeft(after, " \t")
	if after != "" && isSeparator(after[0]) {
		after = after[1:]
	}
	return candidate{token: token, label: strings.TrimSpace(after)}, true
}

// scanReverse matches a line that ends with a separator and a timestamp:
//
//	Intro - 0:00
//	The Healing Hand: 29:02
//	Outro:1:02:03
func scanReverse(line string) (candidate, bool) {
	i := len(line)
	for i > 0 && isTokenByte(line[i-1]) {
		i--
	}
	run, head := line[i:], line[:i]
	if run == "" {
		return candidate{}, false
	}

	token := run
	if token[0] == ':' {
		// "Outro:1:02:03" - the leading colon is the separator.
		token = token[1:]
	} else {
		head = strings.TrimRight(head, " \t")
		if head == "" || !isSeparator(head[len(head)-1]) {
			return candidate{}, false
		}
		head = head[:len(head)-1]
	}
	if token == "" || !isDigit(token[0]) {
		return candidate{}, false
	}
	return candidate{token: token, label: strings.TrimSpace(head)}, true
}
