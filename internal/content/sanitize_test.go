package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeNeverPanicsOnMalformedInput(t *testing.T) {
	cases := []map[string]any{
		nil,
		{},
		{"profile": "not a map"},
		{"profile": 42, "skills": true, "projects": "nope"},
		{"socials": []any{"bare string", 12, nil}},
		{"theme": []any{"not", "a", "map"}},
		{"credibility": []any{map[string]any{"label": 5, "value": "x"}}},
	}
	for _, raw := range cases {
		doc := Sanitize(raw)
		require.NotNil(t, doc.Socials)
		require.NotNil(t, doc.Projects)
		require.NotNil(t, doc.Skills.Technical)
	}
}

func TestSanitizeTrimsAndCoercesProfile(t *testing.T) {
	doc := Sanitize(map[string]any{
		"profile": map[string]any{
			"name":  "  Aswin  ",
			"role":  float64(7),
			"email": "a@b.c\n",
		},
	})
	require.Equal(t, "Aswin", doc.Profile.Name)
	require.Equal(t, "7", doc.Profile.Role)
	require.Equal(t, "a@b.c", doc.Profile.Email)
	require.Equal(t, "", doc.Profile.Phone)
}

func TestSanitizeThemeHexFallback(t *testing.T) {
	doc := Sanitize(map[string]any{
		"theme": map[string]any{
			"bg":     "#ABC",
			"accent": "#112233",
			"text":   "red",
			"muted":  "#12345",
		},
	})
	require.Equal(t, "#abc", doc.Theme.Bg)
	require.Equal(t, "#112233", doc.Theme.Accent)
	require.Equal(t, DefaultPalette.Text, doc.Theme.Text)
	require.Equal(t, DefaultPalette.Muted, doc.Theme.Muted)
	require.Equal(t, DefaultPalette.Line, doc.Theme.Line)
}

func TestSanitizeLegacySkillsArray(t *testing.T) {
	doc := Sanitize(map[string]any{
		"skills": []any{" Go ", "", "React"},
	})
	require.Equal(t, []string{"Go", "React"}, doc.Skills.Technical)
	require.Empty(t, doc.Skills.Soft)
}

func TestSanitizeFiltersEmptyEntries(t *testing.T) {
	doc := Sanitize(map[string]any{
		"socials": []any{
			map[string]any{"platform": "", "url": ""},
			map[string]any{"platform": "GitHub", "url": ""},
			map[string]any{"platform": "", "url": "https://x.com"},
		},
		"experience": []any{
			map[string]any{"role": "", "company": "", "period": "2020"},
			map[string]any{"role": "Dev", "company": ""},
		},
		"certifications": []any{
			map[string]any{"title": "", "issuer": "Meta"},
			map[string]any{"title": "Cert", "issuer": "Meta"},
		},
		"books": []any{
			map[string]any{"title": "", "author": "X"},
		},
		"blogs": []any{
			map[string]any{"title": " ", "url": "https://x"},
		},
	})
	require.Len(t, doc.Socials, 2)
	require.Len(t, doc.Experience, 1)
	require.Len(t, doc.Certifications, 1)
	require.Empty(t, doc.Books)
	require.Empty(t, doc.Blogs)
}

func TestSanitizeProjectIDAssignment(t *testing.T) {
	doc := Sanitize(map[string]any{
		"projects": []any{
			map[string]any{"id": "custom", "title": "A"},
			map[string]any{"title": ""},
			map[string]any{"title": "C"},
		},
	})
	require.Len(t, doc.Projects, 2)
	require.Equal(t, "custom", doc.Projects[0].ID)
	// position in the submitted list, not among kept entries
	require.Equal(t, "3", doc.Projects[1].ID)
}

func TestSanitizeCredibilityClampsNegatives(t *testing.T) {
	doc := Sanitize(map[string]any{
		"credibility": []any{
			map[string]any{"label": "Years", "value": float64(-3)},
			map[string]any{"label": "Projects", "value": "12"},
			map[string]any{"label": "", "value": float64(5)},
		},
	})
	require.Len(t, doc.Credibility, 2)
	require.Equal(t, float64(0), doc.Credibility[0].Value)
	require.Equal(t, float64(12), doc.Credibility[1].Value)
}

func TestSanitizeStripsDangerousHTML(t *testing.T) {
	doc := Sanitize(map[string]any{
		"books": []any{
			map[string]any{
				"title":           "B",
				"descriptionHtml": `<p>fine</p><script>alert(1)</script><img src="javascript:x">`,
			},
		},
	})
	require.Contains(t, doc.Books[0].DescriptionHTML, "<p>fine</p>")
	require.NotContains(t, doc.Books[0].DescriptionHTML, "script")
	require.NotContains(t, doc.Books[0].DescriptionHTML, "javascript:")
}

func TestSanitizeIdempotent(t *testing.T) {
	raw := map[string]any{
		"profile": map[string]any{"name": "A", "bio": " b "},
		"skills":  map[string]any{"technical": []any{"Go"}, "soft": []any{"Empathy"}},
		"projects": []any{
			map[string]any{"title": "P", "descriptionHtml": "<p>x</p>"},
		},
		"credibility": []any{map[string]any{"label": "Years", "value": float64(4)}},
	}
	first := Sanitize(raw)

	// re-sanitizing the sanitized document must be a fixed point
	b, err := json.Marshal(first)
	require.NoError(t, err)
	var roundTripped map[string]any
	require.NoError(t, json.Unmarshal(b, &roundTripped))
	second := Sanitize(roundTripped)
	require.Equal(t, first, second)
}
