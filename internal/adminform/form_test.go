package adminform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apaudel/folio/internal/content"
)

// Populating the form from a sanitized document and extracting it back
// must reproduce the document exactly once re-sanitized.
func TestPopulateExtractRoundTrip(t *testing.T) {
	original := content.Sanitize(map[string]any{
		"profile": map[string]any{
			"name": "Aswin", "role": "Dev", "niche": "Web", "bio": "bio",
			"logoText": "AP", "location": "US", "email": "a@b.c",
			"ctaLabel": "Hire me", "ctaLink": "mailto:a@b.c",
		},
		"theme":  map[string]any{"bg": "#101010", "accent": "#abc"},
		"skills": map[string]any{"technical": []any{"Go", "React"}, "soft": []any{"Empathy"}},
		"socials": []any{
			map[string]any{"platform": "GitHub", "url": "https://github.com/x"},
		},
		"experience": []any{
			map[string]any{"role": "Dev", "company": "Acme", "period": "2024", "description": "d"},
		},
		"certifications": []any{
			map[string]any{"title": "Cert", "category": "Web", "issuer": "Meta", "date": "2025"},
		},
		"books": []any{
			map[string]any{"title": "Book", "author": "A", "category": "Eng", "descriptionHtml": "<p>x</p>"},
		},
		"blogs": []any{
			map[string]any{"title": "Post", "date": "2025-01-01", "excerpt": "e", "url": "https://x"},
		},
		"projects": []any{
			map[string]any{"title": "P1", "category": "Web", "tech": "Go", "summary": "s"},
		},
		"credibility": []any{
			map[string]any{"label": "Years", "value": float64(3.5)},
		},
		"projectCategories": []any{"Web", "Mobile"},
		"bookCategories":    []any{"Eng"},
	})

	extracted := FromDocument(original).Document()
	roundTripped := content.Sanitize(extracted)
	require.Equal(t, original, roundTripped)
}

func TestRoundTripOfDefaultDocument(t *testing.T) {
	def := content.DefaultDocument()
	got := content.Sanitize(FromDocument(def).Document())
	require.Equal(t, def, got)
}

func TestCategoryHintsDeduplicate(t *testing.T) {
	doc := content.Document{
		ProjectCategories: []string{"Web", "Mobile", "Web"},
		Projects: []content.Project{
			{Title: "A", Category: "Web"},
			{Title: "B", Category: "CLI"},
			{Title: "C", Category: ""},
		},
		BookCategories: []string{"Eng"},
		Books: []content.Book{
			{Title: "X", Category: "Design"},
			{Title: "Y", Category: "Eng"},
		},
	}
	projects, books := CategoryHints(doc)
	require.Equal(t, []string{"Web", "Mobile", "CLI"}, projects)
	require.Equal(t, []string{"Eng", "Design"}, books)
}
