package sqids

import "strings"

const minBlocklistWordLength = 3

// filterBlocklist lowercases words and drops those that could never match an
// id built from alphabet: too short, or using characters it does not have.
func filterBlocklist(words []string, alphabet string) []string {
	lower := strings.ToLower(alphabet)
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < minBlocklistWordLength {
			continue
		}
		w = strings.ToLower(w)
		if _, dup := seen[w]; dup {
			continue
		}
		usable := true
		for _, c := range w {
			if !strings.ContainsRune(lower, c) {
				usable = false
				break
			}
		}
		if usable {
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

// isBlocked reports whether id matches a blocklist word. Short ids and short
// words only match exactly; words with digits only match at either end;
// anything else matches anywhere.
func (s *Sqids) isBlocked(id string) bool {
	id = strings.ToLower(id)
	for _, word := range s.blocklist {
		if len(word) > len(id) {
			continue
		}
		switch {
		case len(id) <= 3 || len(word) <= 3:
			if id == word {
				return true
			}
		case strings.ContainsAny(word, "0123456789"):
			if strings.HasPrefix(id, word) || strings.HasSuffix(id, word) {
				return true
			}
		case strings.Contains(id, word):
			return true
		}
	}
	return false
}
