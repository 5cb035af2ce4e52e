package content

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// richText is the allow-list policy applied to the descriptionHtml
// fields. Plain formatting tags survive; scripts, iframes, styles and
// on* event attributes are stripped. Links get target=_blank plus
// rel=noreferrer so admin-authored HTML cannot leak the admin page.
var richText = buildRichTextPolicy()

func buildRichTextPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "ul", "ol", "li", "blockquote", "pre", "code", "strong", "em", "b", "i", "h3", "h4")
	p.AllowAttrs("href").OnElements("a")
	p.AllowStandardURLs()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)
	p.AllowAttrs("src", "alt").OnElements("img")
	return p
}

// Sanitize normalizes arbitrary decoded JSON into the canonical
// document shape. It is total: any input shape yields a valid
// document, never an error. Strings are trimmed, list entries failing
// their keep predicate are dropped, theme colors fall back to the
// default palette, and rich-text fields pass through the allow-list
// policy. The only save-time validation (non-empty profile name) is
// enforced by the service, not here.
func Sanitize(raw map[string]any) Document {
	profile := asMap(raw["profile"])
	return Document{
		Profile: Profile{
			Name:            asString(profile["name"]),
			Role:            asString(profile["role"]),
			Niche:           asString(profile["niche"]),
			Bio:             asString(profile["bio"]),
			LogoText:        asString(profile["logoText"]),
			LogoImageURL:    asString(profile["logoImageUrl"]),
			Location:        asString(profile["location"]),
			Email:           asString(profile["email"]),
			Phone:           asString(profile["phone"]),
			ProfileImageURL: asString(profile["profileImageUrl"]),
			ProfileAudioURL: asString(profile["profileAudioUrl"]),
			ProfileVideoURL: asString(profile["profileVideoUrl"]),
			CVURL:           asString(profile["cvUrl"]),
			CTALabel:        asString(profile["ctaLabel"]),
			CTALink:         asString(profile["ctaLink"]),
		},
		Theme:             sanitizeTheme(asMap(raw["theme"])),
		Skills:            sanitizeSkills(raw["skills"]),
		Socials:           sanitizeSocials(asList(raw["socials"])),
		Experience:        sanitizeExperience(asList(raw["experience"])),
		Certifications:    sanitizeCertifications(asList(raw["certifications"])),
		Books:             sanitizeBooks(asList(raw["books"])),
		Blogs:             sanitizeBlogs(asList(raw["blogs"])),
		Projects:          sanitizeProjects(asList(raw["projects"])),
		Credibility:       sanitizeCredibility(asList(raw["credibility"])),
		ProjectCategories: asStringList(raw["projectCategories"]),
		BookCategories:    asStringList(raw["bookCategories"]),
	}
}

func sanitizeTheme(m map[string]any) Theme {
	return Theme{
		Bg:      hexOr(asString(m["bg"]), DefaultPalette.Bg),
		Surface: hexOr(asString(m["surface"]), DefaultPalette.Surface),
		Text:    hexOr(asString(m["text"]), DefaultPalette.Text),
		Muted:   hexOr(asString(m["muted"]), DefaultPalette.Muted),
		Accent:  hexOr(asString(m["accent"]), DefaultPalette.Accent),
		Line:    hexOr(asString(m["line"]), DefaultPalette.Line),
	}
}

// sanitizeSkills accepts both the canonical {technical, soft} shape
// and the legacy bare array, which maps to technical skills only.
func sanitizeSkills(v any) Skills {
	if list, ok := v.([]any); ok {
		return Skills{Technical: asStringList(list), Soft: []string{}}
	}
	m := asMap(v)
	return Skills{
		Technical: asStringList(m["technical"]),
		Soft:      asStringList(m["soft"]),
	}
}

func sanitizeSocials(list []any) []Social {
	out := []Social{}
	for _, v := range list {
		m := asMap(v)
		s := Social{Platform: asString(m["platform"]), URL: asString(m["url"])}
		if s.Platform != "" || s.URL != "" {
			out = append(out, s)
		}
	}
	return out
}

func sanitizeExperience(list []any) []Experience {
	out := []Experience{}
	for _, v := range list {
		m := asMap(v)
		e := Experience{
			Role:        asString(m["role"]),
			Company:     asString(m["company"]),
			Period:      asString(m["period"]),
			Description: asString(m["description"]),
		}
		if e.Role != "" || e.Company != "" {
			out = append(out, e)
		}
	}
	return out
}

func sanitizeCertifications(list []any) []Certification {
	out := []Certification{}
	for _, v := range list {
		m := asMap(v)
		c := Certification{
			Title:         asString(m["title"]),
			Category:      asString(m["category"]),
			Issuer:        asString(m["issuer"]),
			Date:          asString(m["date"]),
			ImageURL:      asString(m["imageUrl"]),
			CredentialURL: asString(m["credentialUrl"]),
		}
		if c.Title != "" {
			out = append(out, c)
		}
	}
	return out
}

func sanitizeBooks(list []any) []Book {
	out := []Book{}
	for _, v := range list {
		m := asMap(v)
		b := Book{
			ImageURL:        asString(m["imageUrl"]),
			Title:           asString(m["title"]),
			Author:          asString(m["author"]),
			Category:        asString(m["category"]),
			DescriptionHTML: sanitizeHTML(m["descriptionHtml"]),
		}
		if b.Title != "" {
			out = append(out, b)
		}
	}
	return out
}

func sanitizeBlogs(list []any) []Blog {
	out := []Blog{}
	for _, v := range list {
		m := asMap(v)
		b := Blog{
			Title:           asString(m["title"]),
			Date:            asString(m["date"]),
			ImageURL:        asString(m["imageUrl"]),
			Excerpt:         asString(m["excerpt"]),
			URL:             asString(m["url"]),
			DescriptionHTML: sanitizeHTML(m["descriptionHtml"]),
		}
		if b.Title != "" {
			out = append(out, b)
		}
	}
	return out
}

func sanitizeProjects(list []any) []Project {
	out := []Project{}
	for i, v := range list {
		m := asMap(v)
		p := Project{
			ID:              asString(m["id"]),
			Title:           asString(m["title"]),
			Category:        asString(m["category"]),
			Tech:            asString(m["tech"]),
			Summary:         asString(m["summary"]),
			DescriptionHTML: sanitizeHTML(m["descriptionHtml"]),
			DemoURL:         asString(m["demoUrl"]),
			RepoURL:         asString(m["repoUrl"]),
			ImageURL:        asString(m["imageUrl"]),
		}
		if p.ID == "" {
			// 1-based position in the submitted list, assigned before
			// empty-title entries are filtered out
			p.ID = strconv.Itoa(i + 1)
		}
		if p.Title != "" {
			out = append(out, p)
		}
	}
	return out
}

func sanitizeCredibility(list []any) []Stat {
	out := []Stat{}
	for _, v := range list {
		m := asMap(v)
		s := Stat{Label: asString(m["label"]), Value: asNumber(m["value"])}
		if s.Value < 0 {
			s.Value = 0
		}
		if s.Label != "" {
			out = append(out, s)
		}
	}
	return out
}

func sanitizeHTML(v any) string {
	return strings.TrimSpace(richText.Sanitize(asString(v)))
}

func hexOr(v, fallback string) string {
	if hexColorRe.MatchString(v) {
		return strings.ToLower(v)
	}
	return fallback
}

// Coercion helpers. Decoded JSON hands us any-typed values; these
// mirror the loose string/number coercion the admin form relies on.

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strings.TrimSpace(strconv.FormatFloat(t, 'f', -1, 64))
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return strings.TrimSpace(t.String())
	case int:
		return strconv.Itoa(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

func asNumber(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case json.Number:
		f, _ := t.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f
	default:
		return 0
	}
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asList(v any) []any {
	if l, ok := v.([]any); ok {
		return l
	}
	return nil
}

func asStringList(v any) []string {
	out := []string{}
	for _, item := range asList(v) {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	if s, ok := v.([]string); ok {
		for _, item := range s {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
