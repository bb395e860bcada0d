package direct

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggest returns up to limit registered phrases sharing a prefix or
// substring with partial, prefix matches first, then substring matches, then
// remaining phrases ranked by fuzzy closeness. Pure read.
func (idx *Index) Suggest(partial string, limit int) []string {
	needle := normalizeKey(partial)
	if needle == "" || limit <= 0 {
		return nil
	}

	idx.mu.RLock()
	phrases := make([]string, 0, len(idx.customOrder)+len(idx.order))
	phrases = append(phrases, idx.customOrder...)
	phrases = append(phrases, idx.order...)
	idx.mu.RUnlock()

	seen := make(map[string]bool, len(phrases))
	var prefix, substring, rest []string
	for _, p := range phrases {
		if seen[p] {
			continue
		}
		seen[p] = true
		switch {
		case strings.HasPrefix(p, needle):
			prefix = append(prefix, p)
		case strings.Contains(p, needle):
			substring = append(substring, p)
		default:
			rest = append(rest, p)
		}
	}

	out := make([]string, 0, limit)
	out = appendUpTo(out, prefix, limit)
	out = appendUpTo(out, substring, limit)
	if len(out) < limit {
		for _, m := range fuzzy.Find(needle, rest) {
			out = append(out, m.Str)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func appendUpTo(dst, src []string, limit int) []string {
	for _, s := range src {
		if len(dst) == limit {
			return dst
		}
		dst = append(dst, s)
	}
	return dst
}
