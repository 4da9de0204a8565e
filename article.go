package bibliofind

import (
	"context"
	"sort"
	"strings"
)

// Article represents one row of the catalog used as grounding context for
// the completion model.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        string `json:"tags"` // comma-separated
	URL         string `json:"url"`
}

// HasURL reports whether the article carries a real link rather than the
// "#" placeholder used for rows without one.
func (a Article) HasURL() bool {
	return a.URL != "" && a.URL != "#"
}

// CatalogSource loads article records from a backing store.
// Implementations hide where the catalog lives (remote sheet, local
// directory) and return typed errors (EUNAVAILABLE) when the source
// cannot be reached.
type CatalogSource interface {
	// Name returns the source's identifier (e.g., "remote", "local").
	Name() string

	// Load returns all catalog rows. A reachable but empty source
	// returns an empty slice and no error.
	Load(ctx context.Context) ([]Article, error)
}

// ExtractTags returns the unique tags across all articles, sorted
// case-insensitively. Tags fields are split on commas; tokens are
// trimmed and empty tokens discarded.
func ExtractTags(articles []Article) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, a := range articles {
		for _, tok := range strings.Split(a.Tags, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			tags = append(tags, tok)
		}
	}
	sort.Slice(tags, func(i, j int) bool {
		a, b := strings.ToLower(tags[i]), strings.ToLower(tags[j])
		if a == b {
			return tags[i] < tags[j]
		}
		return a < b
	})
	return tags
}

// MatchTitles maps titles returned by the model back to catalog articles.
// Matching is case-insensitive after trimming whitespace; the first
// article in catalog order wins when titles are duplicated. Titles that
// match no article are dropped.
func MatchTitles(titles []string, articles []Article) []Article {
	var matched []Article
	for _, title := range titles {
		want := strings.TrimSpace(title)
		if want == "" {
			continue
		}
		for _, a := range articles {
			if strings.EqualFold(want, strings.TrimSpace(a.Title)) {
				matched = append(matched, a)
				break
			}
		}
	}
	return matched
}

// DuplicateTitles returns the number of catalog rows whose title repeats
// an earlier row's title (case-insensitive, trimmed). Duplicates are kept
// in the catalog; this count exists so loads can surface them in logs.
func DuplicateTitles(articles []Article) int {
	seen := make(map[string]struct{})
	dups := 0
	for _, a := range articles {
		key := strings.ToLower(strings.TrimSpace(a.Title))
		if _, ok := seen[key]; ok {
			dups++
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}
