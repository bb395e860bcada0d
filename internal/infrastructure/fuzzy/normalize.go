// Package fuzzy implements the multi-algorithm matching tier: input
// normalization, four independent matchers, the weighted combiner and the
// adaptive learning store.
package fuzzy

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/doeshing/nlsh-go/internal/domain"
)

// synonymRewrites folds common phrasing variants onto the vocabulary the
// matcher tables are written in.
var synonymRewrites = map[string]string{
	"display":    "show",
	"view":       "show",
	"print":      "show",
	"remove":     "delete",
	"erase":      "delete",
	"folder":     "directory",
	"folders":    "directories",
	"dir":        "directory",
	"find":       "search",
	"locate":     "search",
	"lookup":     "search",
	"terminate":  "kill",
	"stop":       "kill",
	"procs":      "processes",
	"filese":     "files",
	"fles":       "files",
	"direcotry":  "directory",
	"proccesses": "processes",
	"procesess":  "processes",
}

// multilingualKeywords translates foreign command-related words to their
// English table vocabulary, per language. Fixed dictionaries, not an NLP
// layer.
var multilingualKeywords = map[string]map[string]string{
	"es": {
		"listar":   "list",
		"archivos": "files",
		"mostrar":  "show",
		"buscar":   "search",
		"borrar":   "delete",
		"crear":    "create",
		"procesos": "processes",
		"memoria":  "memory",
		"disco":    "disk",
	},
	"fr": {
		"lister":    "list",
		"fichiers":  "files",
		"afficher":  "show",
		"chercher":  "search",
		"supprimer": "delete",
		"creer":     "create",
		"processus": "processes",
		"memoire":   "memory",
		"disque":    "disk",
	},
	"de": {
		"auflisten": "list",
		"dateien":   "files",
		"anzeigen":  "show",
		"suchen":    "search",
		"loeschen":  "delete",
		"erstellen": "create",
		"prozesse":  "processes",
		"speicher":  "memory",
	},
}

var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "in": true, "on": true,
	"to": true, "me": true, "my": true, "for": true, "all": true, "and": true,
	"with": true, "please": true, "can": true, "you": true, "i": true,
	"want": true, "how": true, "do": true,
}

var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize lowercases, strips Unicode diacritics, rewrites known synonyms
// and misspellings, and substitutes per-language keywords. The language code
// may be empty; unknown languages are left alone.
func Normalize(phrase, language string) string {
	lowered := strings.ToLower(strings.TrimSpace(phrase))
	if lowered == "" {
		return ""
	}
	if stripped, _, err := transform.String(diacriticStripper, lowered); err == nil {
		lowered = stripped
	}

	dict := multilingualKeywords[language]
	fields := strings.Fields(lowered)
	for i, f := range fields {
		if dict != nil {
			if en, ok := dict[f]; ok {
				f = en
			}
		}
		if syn, ok := synonymRewrites[f]; ok {
			f = syn
		}
		fields[i] = f
	}
	return strings.Join(fields, " ")
}

// Tokens splits a normalized phrase into its content words, dropping
// stopwords.
func Tokens(normalized string) []string {
	fields := strings.Fields(normalized)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if !stopwords[f] {
			out = append(out, f)
		}
	}
	return out
}

// tokenSet builds a membership set from a token slice.
func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

// PatternKey derives the learning key for a phrase: its three longest
// significant words, lowercased, alphabetically sorted and joined.
func PatternKey(phrase string) string {
	words := Tokens(Normalize(phrase, ""))
	if len(words) == 0 {
		return ""
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	if len(words) > domain.PatternKeyWords {
		words = words[:domain.PatternKeyWords]
	}
	sort.Strings(words)
	return strings.Join(words, " ")
}
