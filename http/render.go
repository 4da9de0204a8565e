package http

import (
	"bytes"
	"html/template"

	"github.com/jmartel/bibliofind"
)

// NoResultsFragment is rendered when no returned title matches an article.
const NoResultsFragment template.HTML = `<p class="text-gray-600 italic">Je n&#39;ai pas trouv&eacute; d&#39;article correspondant dans la base.</p>`

var cardsTmpl = template.Must(template.New("cards").Parse(cardsHTML))

const cardsHTML = `{{range .}}<div class="mb-4 p-4 border rounded bg-white">
	<h3 class="font-bold text-lg text-indigo-600">{{.Title}}</h3>
	{{if .Tags}}<p class="text-sm text-gray-600 mb-2"><em>{{.Tags}}</em></p>
	{{end}}<p class="text-gray-800 mb-3">{{.Description}}</p>
	{{if .HasURL}}<a href="{{.URL}}" target="_blank" rel="noopener" class="inline-block bg-blue-600 text-white px-3 py-1 rounded text-sm hover:bg-blue-700">Lire l&#39;article &rarr;</a>
	{{end}}</div>
{{end}}`

// RenderResults maps titles returned by the model back to catalog articles
// and renders them as HTML cards. Unmatched titles are dropped; when
// nothing matches, the fixed no-results fragment is returned.
func RenderResults(titles []string, articles []bibliofind.Article) template.HTML {
	return RenderArticles(bibliofind.MatchTitles(titles, articles))
}

// RenderArticles renders already-matched articles as HTML cards. The
// read-more link is omitted when the URL is empty or the "#" placeholder.
func RenderArticles(articles []bibliofind.Article) template.HTML {
	if len(articles) == 0 {
		return NoResultsFragment
	}

	var buf bytes.Buffer
	if err := cardsTmpl.Execute(&buf, articles); err != nil {
		return NoResultsFragment
	}
	return template.HTML(buf.String())
}
