package bibliofind

import "context"

// Searcher answers free-text questions against the catalog.
type Searcher interface {
	// Search runs one question through the completion model and maps the
	// returned titles back to catalog articles. Completion failures are
	// propagated; a malformed model response yields an empty result.
	Search(ctx context.Context, question string) (*SearchResult, error)
}

// SearchResult is the outcome of one question.
type SearchResult struct {
	Question string
	Titles   []string  // titles as returned by the model, nil when unparseable
	Articles []Article // titles matched back to catalog rows
	Raw      string    // raw model response, kept for the query log
}

// Ensure Search implements Searcher at compile time.
var _ Searcher = (*Search)(nil)

// Search orchestrates one question: snapshot the catalog, build the
// instruction, call the completion model, parse and match the answer.
type Search struct {
	Catalog   *CatalogCache
	Completer Completer
}

// Search answers a free-text question against the current catalog snapshot.
func (s *Search) Search(ctx context.Context, question string) (*SearchResult, error) {
	if question == "" {
		return nil, Errorf(EINVALID, "question required")
	}

	// A failed reload degrades to the held snapshot; the logging source
	// decorator has already recorded the failure.
	snap, _ := s.Catalog.Get(ctx)

	instruction := BuildInstruction(snap.Articles)
	raw, err := s.Completer.Complete(ctx, instruction, question)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Question: question, Raw: raw}
	titles, err := ParseTitles(raw)
	if err != nil {
		// Malformed output is a recognized failure mode: no results.
		return result, nil
	}
	result.Titles = titles
	result.Articles = MatchTitles(titles, snap.Articles)
	return result, nil
}
