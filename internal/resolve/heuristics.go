package resolve

import (
	"regexp"
	"strings"

	"depscope/internal/paths"
)

// Exact matches when input is literally a known id.
func Exact(input string, ids []string) (string, bool) {
	for _, id := range ids {
		if id == input {
			return id, true
		}
	}
	return "", false
}

// CaseInsensitive matches lowercase(input) against lowercase ids. When two ids
// differ only by case the first one wins.
func CaseInsensitive(input string, ids []string) (string, bool) {
	id, ok := lowerIndex(ids)[strings.ToLower(input)]
	return id, ok
}

func lowerIndex(ids []string) map[string]string {
	index := make(map[string]string, len(ids))
	for _, id := range ids {
		key := strings.ToLower(id)
		if _, exists := index[key]; !exists {
			index[key] = id
		}
	}
	return index
}

var swappedExts = map[string]string{
	".js":  ".ts",
	".ts":  ".js",
	".jsx": ".tsx",
	".tsx": ".jsx",
}

// ExtensionSwap retries exact and case-insensitive matching with the paired
// extension, so a guessed "a/b.js" finds "a/b.ts".
func ExtensionSwap(input string, ids []string) (string, bool) {
	candidate, ok := swapExtension(input)
	if !ok {
		return "", false
	}
	if id, ok := Exact(candidate, ids); ok {
		return id, true
	}
	return CaseInsensitive(candidate, ids)
}

func swapExtension(input string) (string, bool) {
	base := paths.Base(input)
	dot := strings.LastIndex(base, ".")
	if dot <= 0 {
		return "", false
	}
	ext := base[dot:]
	swapped, ok := swappedExts[strings.ToLower(ext)]
	if !ok {
		return "", false
	}
	return input[:len(input)-len(ext)] + swapped, true
}

// Basename groups ids by case-insensitive, extension-less basename. A single
// id sharing the input's basename wins outright; several are ranked by the
// length of the common trailing run of their directory and the input's
// directory, earliest id first on ties.
func Basename(input string, ids []string) (string, bool) {
	key := basenameKey(input)
	if key == "" {
		return "", false
	}

	var candidates []string
	for _, id := range ids {
		if basenameKey(id) == key {
			candidates = append(candidates, id)
		}
	}

	switch len(candidates) {
	case 0:
		return "", false
	case 1:
		return candidates[0], true
	}

	inputDir := paths.Dir(paths.NormalizePath(input))
	best, bestScore := candidates[0], -1
	for _, id := range candidates {
		score := commonSuffixLen(paths.Dir(id), inputDir)
		if score > bestScore {
			best, bestScore = id, score
		}
	}
	return best, true
}

func basenameKey(p string) string {
	return strings.ToLower(paths.StripExt(paths.Base(paths.NormalizePath(p))))
}

// commonSuffixLen compares a and b from the end, character by character,
// until the first mismatch.
func commonSuffixLen(a, b string) int {
	n := 0
	for i, j := len(a)-1, len(b)-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if a[i] != b[j] {
			break
		}
		n++
	}
	return n
}

// Topic scores every id against free text:
//
//	+10 id contains the input
//	+15 id's basename contains the input
//	 +5 per input word longer than 2 chars found as a whole word in the id
//	 +3 per "/" segment of the id containing the input
//
// Comparisons are case-insensitive. The highest positive score wins, earliest
// id first on ties.
func Topic(input string, ids []string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", false
	}
	words := wordMatchers(needle)

	best, bestScore := "", 0
	for _, id := range ids {
		score := topicScore(strings.ToLower(id), needle, words)
		if score > bestScore {
			best, bestScore = id, score
		}
	}
	return best, bestScore > 0
}

// scoreTopic is the score Topic gives a single id.
func scoreTopic(input, id string) int {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return 0
	}
	return topicScore(strings.ToLower(id), needle, wordMatchers(needle))
}

func topicScore(id, needle string, words []*regexp.Regexp) int {
	score := 0
	if strings.Contains(id, needle) {
		score += 10
	}
	if strings.Contains(paths.Base(id), needle) {
		score += 15
	}
	for _, w := range words {
		if w.MatchString(id) {
			score += 5
		}
	}
	for _, seg := range strings.Split(id, "/") {
		if strings.Contains(seg, needle) {
			score += 3
		}
	}
	return score
}

func wordMatchers(needle string) []*regexp.Regexp {
	fields := strings.Fields(needle)
	matchers := make([]*regexp.Regexp, 0, len(fields))
	for _, w := range fields {
		if len(w) <= 2 {
			continue
		}
		matchers = append(matchers, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return matchers
}
