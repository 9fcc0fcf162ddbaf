package extraction

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	minAddressRunes = 5
	minNameRunes    = 2
	nameWindowRunes = 30

	// amountWindowRunes is the span searched on each side of an amount cue.
	amountWindowRunes = 20

	addressTerminators = ".,\n"
)

// NameIndicators introduce a customer name regardless of the app.
var NameIndicators = []string{"customer", "client", "recipient", "name"}

var numberPattern = regexp.MustCompile(`[0-9\x{0660}-\x{0669}\x{06F0}-\x{06F9}]+(?:\.[0-9\x{0660}-\x{0669}\x{06F0}-\x{06F9}]+)?`)

// MatchAddress returns the text following the first cue that yields an address
// longer than five characters. Text runs until the nearest '.', ',' or line break.
func MatchAddress(content string, cues []string) (string, bool) {
	for _, cue := range cues {
		idx := strings.Index(content, cue)
		if cue == "" || idx < 0 {
			continue
		}

		rest := content[idx+len(cue):]
		if end := strings.IndexAny(rest, addressTerminators); end >= 0 {
			rest = rest[:end]
		}

		candidate := strings.TrimSpace(rest)
		if utf8.RuneCountInString(candidate) > minAddressRunes {
			return candidate, true
		}
	}

	return "", false
}

// MatchAmount returns the largest number found within twenty characters around
// the first cue that has any number nearby.
func MatchAmount(content string, cues []string) (float64, bool) {
	runes := []rune(content)

	for _, cue := range cues {
		idx := strings.Index(content, cue)
		if cue == "" || idx < 0 {
			continue
		}

		pos := utf8.RuneCountInString(content[:idx])
		lo := max(0, pos-amountWindowRunes)
		hi := min(len(runes), pos+amountWindowRunes)

		tokens := numberPattern.FindAllString(string(runes[lo:hi]), -1)
		if len(tokens) == 0 {
			continue
		}

		best := math.Inf(-1)
		for _, token := range tokens {
			value, err := strconv.ParseFloat(asciiDigits(token), 64)
			if err != nil {
				continue
			}
			best = max(best, value)
		}

		if math.IsInf(best, -1) {
			continue
		}

		return best, true
	}

	return 0, false
}

// MatchCustomerName returns up to thirty characters after the first name indicator,
// cut at the first '.', when longer than two characters.
func MatchCustomerName(content string) (string, bool) {
	for _, indicator := range NameIndicators {
		idx := strings.Index(content, indicator)
		if idx < 0 {
			continue
		}

		after := []rune(content[idx+len(indicator):])
		if len(after) > nameWindowRunes {
			after = after[:nameWindowRunes]
		}

		candidate := strings.TrimSpace(string(after))
		if dot := strings.IndexByte(candidate, '.'); dot >= 0 {
			candidate = strings.TrimSpace(candidate[:dot])
		}

		if utf8.RuneCountInString(candidate) > minNameRunes {
			return candidate, true
		}
	}

	return "", false
}

// asciiDigits maps Arabic-Indic digits onto 0-9 so strconv can parse them.
func asciiDigits(token string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		}

		return r
	}, token)
}
