package bibliofind

import (
	"fmt"
	"strings"
)

// FormatArticles serializes the catalog into the context block embedded in
// the model instruction. URLs are deliberately excluded so the model works
// from titles, descriptions, and tags only. Articles are numbered from 1.
func FormatArticles(articles []Article) string {
	if len(articles) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, a := range articles {
		fmt.Fprintf(&sb, "--- ARTICLE %d ---\n", i+1)
		fmt.Fprintf(&sb, "TITLE: %s\n", a.Title)
		fmt.Fprintf(&sb, "DESCRIPTION: %s\n", a.Description)
		fmt.Fprintf(&sb, "TAGS: %s\n", a.Tags)
		sb.WriteString("----------------\n")
	}
	return sb.String()
}

// BuildInstruction builds the system instruction for a catalog snapshot.
// The template is static except for the interpolated context block, so it
// is rebuilt per request to reflect the current snapshot.
func BuildInstruction(articles []Article) string {
	var sb strings.Builder
	sb.WriteString("You are an internal bibliographic search assistant. ")
	sb.WriteString("Your role is to find the articles in the catalog below that are most relevant to the user's request.\n\n")
	sb.WriteString("CATALOG:\n")
	sb.WriteString(FormatArticles(articles))
	sb.WriteString("\nRESPONSE RULES:\n")
	sb.WriteString("1. Respond with a JSON array containing the exact titles of the matching articles, e.g. [\"Title A\", \"Title B\"].\n")
	sb.WriteString("2. If no article matches, respond with an empty JSON array: [].\n")
	sb.WriteString("3. Do not change the titles. They are used verbatim to look the articles up.\n")
	sb.WriteString("4. Do not add any text before or after the JSON array.\n")
	return sb.String()
}
