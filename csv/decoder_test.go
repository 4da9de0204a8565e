package csv_test

import (
	"strings"
	"testing"

	"github.com/jmartel/bibliofind"
	"github.com/jmartel/bibliofind/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCatalog(t *testing.T) {
	t.Parallel()

	t.Run("decodes recognized columns", func(t *testing.T) {
		t.Parallel()

		input := "Titre,Description,Tags,URL\n" +
			"Intro to X,Basics of X,\"ml,intro\",http://a\n"

		articles, err := csv.DecodeCatalog(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, bibliofind.Article{
			Title:       "Intro to X",
			Description: "Basics of X",
			Tags:        "ml,intro",
			URL:         "http://a",
		}, articles[0])
	})

	t.Run("tolerates a leading byte-order mark", func(t *testing.T) {
		t.Parallel()

		input := "\uFEFFTitre,Description,Tags,URL\nA,d,t,u\n"

		articles, err := csv.DecodeCatalog(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "A", articles[0].Title)
	})

	t.Run("applies defaults for absent columns", func(t *testing.T) {
		t.Parallel()

		input := "Description\nonly a description\n"

		articles, err := csv.DecodeCatalog(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, csv.DefaultTitle, articles[0].Title)
		assert.Equal(t, "only a description", articles[0].Description)
		assert.Empty(t, articles[0].Tags)
		assert.Equal(t, csv.DefaultURL, articles[0].URL)
	})

	t.Run("pads short rows with defaults", func(t *testing.T) {
		t.Parallel()

		input := "Titre,Description,Tags,URL\nJust a title\n"

		articles, err := csv.DecodeCatalog(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "Just a title", articles[0].Title)
		assert.Equal(t, csv.DefaultDescription, articles[0].Description)
		assert.Equal(t, csv.DefaultURL, articles[0].URL)
	})

	t.Run("trims whitespace in fields", func(t *testing.T) {
		t.Parallel()

		input := "Titre,URL\n  A  ,  http://a  \n"

		articles, err := csv.DecodeCatalog(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "A", articles[0].Title)
		assert.Equal(t, "http://a", articles[0].URL)
	})

	t.Run("header only decodes to empty", func(t *testing.T) {
		t.Parallel()

		articles, err := csv.DecodeCatalog(strings.NewReader("Titre,Description,Tags,URL\n"))

		require.NoError(t, err)
		assert.Empty(t, articles)
	})

	t.Run("empty input decodes to empty", func(t *testing.T) {
		t.Parallel()

		articles, err := csv.DecodeCatalog(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, articles)
	})

	t.Run("malformed quoting is invalid", func(t *testing.T) {
		t.Parallel()

		input := "Titre,Description\n\"unterminated,d\n"

		_, err := csv.DecodeCatalog(strings.NewReader(input))

		require.Error(t, err)
		assert.Equal(t, bibliofind.EINVALID, bibliofind.ErrorCode(err))
	})

	t.Run("column names are case-sensitive", func(t *testing.T) {
		t.Parallel()

		input := "titre,description\nA,d\n"

		articles, err := csv.DecodeCatalog(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, csv.DefaultTitle, articles[0].Title)
	})
}
