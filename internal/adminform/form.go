// Package adminform is the server-side model of the admin editor: a
// flat, string-typed FormModel mirroring the form controls, with a
// bidirectional mapping to the content document. Populating the form
// and extracting the submission are plain transforms here, testable
// without any UI runtime.
package adminform

import (
	"strconv"

	"github.com/apaudel/folio/internal/content"
)

// FormModel carries every editable control's current value. All
// scalars are strings because form inputs are strings; coercion back
// to numbers happens in the sanitizer.
type FormModel struct {
	// profile inputs
	Name, Role, Niche, Bio             string
	LogoText, LogoImageURL             string
	Location, Email, Phone             string
	ProfileImageURL, ProfileAudioURL   string
	ProfileVideoURL, CVURL             string
	CTALabel, CTALink                  string

	// theme pickers
	ThemeBg, ThemeSurface, ThemeText   string
	ThemeMuted, ThemeAccent, ThemeLine string

	// dynamic list sections, one row per entry
	TechnicalSkills []string
	SoftSkills      []string
	Socials         []SocialRow
	Experience      []ExperienceRow
	Certifications  []CertificationRow
	Books           []BookRow
	Blogs           []BlogRow
	Projects        []ProjectRow
	Credibility     []CredibilityRow

	ProjectCategories []string
	BookCategories    []string
}

type SocialRow struct {
	Platform, URL string
}

type ExperienceRow struct {
	Role, Company, Period, Description string
}

type CertificationRow struct {
	Title, Category, Issuer, Date, ImageURL, CredentialURL string
}

type BookRow struct {
	ImageURL, Title, Author, Category, DescriptionHTML string
}

type BlogRow struct {
	Title, Date, ImageURL, Excerpt, URL, DescriptionHTML string
}

type ProjectRow struct {
	ID, Title, Category, Tech, Summary          string
	DescriptionHTML, DemoURL, RepoURL, ImageURL string
}

type CredibilityRow struct {
	Label, Value string
}

// FromDocument populates a form model from a content document, the
// equivalent of rebuilding the editor's dynamic sections.
func FromDocument(doc content.Document) FormModel {
	m := FormModel{
		Name:            doc.Profile.Name,
		Role:            doc.Profile.Role,
		Niche:           doc.Profile.Niche,
		Bio:             doc.Profile.Bio,
		LogoText:        doc.Profile.LogoText,
		LogoImageURL:    doc.Profile.LogoImageURL,
		Location:        doc.Profile.Location,
		Email:           doc.Profile.Email,
		Phone:           doc.Profile.Phone,
		ProfileImageURL: doc.Profile.ProfileImageURL,
		ProfileAudioURL: doc.Profile.ProfileAudioURL,
		ProfileVideoURL: doc.Profile.ProfileVideoURL,
		CVURL:           doc.Profile.CVURL,
		CTALabel:        doc.Profile.CTALabel,
		CTALink:         doc.Profile.CTALink,

		ThemeBg:      doc.Theme.Bg,
		ThemeSurface: doc.Theme.Surface,
		ThemeText:    doc.Theme.Text,
		ThemeMuted:   doc.Theme.Muted,
		ThemeAccent:  doc.Theme.Accent,
		ThemeLine:    doc.Theme.Line,

		TechnicalSkills:   append([]string{}, doc.Skills.Technical...),
		SoftSkills:        append([]string{}, doc.Skills.Soft...),
		ProjectCategories: append([]string{}, doc.ProjectCategories...),
		BookCategories:    append([]string{}, doc.BookCategories...),
	}

	for _, s := range doc.Socials {
		m.Socials = append(m.Socials, SocialRow{Platform: s.Platform, URL: s.URL})
	}
	for _, e := range doc.Experience {
		m.Experience = append(m.Experience, ExperienceRow{Role: e.Role, Company: e.Company, Period: e.Period, Description: e.Description})
	}
	for _, cert := range doc.Certifications {
		m.Certifications = append(m.Certifications, CertificationRow{
			Title: cert.Title, Category: cert.Category, Issuer: cert.Issuer,
			Date: cert.Date, ImageURL: cert.ImageURL, CredentialURL: cert.CredentialURL,
		})
	}
	for _, b := range doc.Books {
		m.Books = append(m.Books, BookRow{ImageURL: b.ImageURL, Title: b.Title, Author: b.Author, Category: b.Category, DescriptionHTML: b.DescriptionHTML})
	}
	for _, b := range doc.Blogs {
		m.Blogs = append(m.Blogs, BlogRow{Title: b.Title, Date: b.Date, ImageURL: b.ImageURL, Excerpt: b.Excerpt, URL: b.URL, DescriptionHTML: b.DescriptionHTML})
	}
	for _, p := range doc.Projects {
		m.Projects = append(m.Projects, ProjectRow{
			ID: p.ID, Title: p.Title, Category: p.Category, Tech: p.Tech, Summary: p.Summary,
			DescriptionHTML: p.DescriptionHTML, DemoURL: p.DemoURL, RepoURL: p.RepoURL, ImageURL: p.ImageURL,
		})
	}
	for _, s := range doc.Credibility {
		m.Credibility = append(m.Credibility, CredibilityRow{Label: s.Label, Value: strconv.FormatFloat(s.Value, 'f', -1, 64)})
	}
	return m
}

// Document extracts the raw submission from the form model, the shape
// sent to the save endpoint and fed into content.Sanitize.
func (m FormModel) Document() map[string]any {
	socials := make([]any, 0, len(m.Socials))
	for _, r := range m.Socials {
		socials = append(socials, map[string]any{"platform": r.Platform, "url": r.URL})
	}
	experience := make([]any, 0, len(m.Experience))
	for _, r := range m.Experience {
		experience = append(experience, map[string]any{"role": r.Role, "company": r.Company, "period": r.Period, "description": r.Description})
	}
	certifications := make([]any, 0, len(m.Certifications))
	for _, r := range m.Certifications {
		certifications = append(certifications, map[string]any{
			"title": r.Title, "category": r.Category, "issuer": r.Issuer,
			"date": r.Date, "imageUrl": r.ImageURL, "credentialUrl": r.CredentialURL,
		})
	}
	books := make([]any, 0, len(m.Books))
	for _, r := range m.Books {
		books = append(books, map[string]any{"imageUrl": r.ImageURL, "title": r.Title, "author": r.Author, "category": r.Category, "descriptionHtml": r.DescriptionHTML})
	}
	blogs := make([]any, 0, len(m.Blogs))
	for _, r := range m.Blogs {
		blogs = append(blogs, map[string]any{"title": r.Title, "date": r.Date, "imageUrl": r.ImageURL, "excerpt": r.Excerpt, "url": r.URL, "descriptionHtml": r.DescriptionHTML})
	}
	projects := make([]any, 0, len(m.Projects))
	for _, r := range m.Projects {
		projects = append(projects, map[string]any{
			"id": r.ID, "title": r.Title, "category": r.Category, "tech": r.Tech, "summary": r.Summary,
			"descriptionHtml": r.DescriptionHTML, "demoUrl": r.DemoURL, "repoUrl": r.RepoURL, "imageUrl": r.ImageURL,
		})
	}
	credibility := make([]any, 0, len(m.Credibility))
	for _, r := range m.Credibility {
		credibility = append(credibility, map[string]any{"label": r.Label, "value": r.Value})
	}

	return map[string]any{
		"profile": map[string]any{
			"name":            m.Name,
			"role":            m.Role,
			"niche":           m.Niche,
			"bio":             m.Bio,
			"logoText":        m.LogoText,
			"logoImageUrl":    m.LogoImageURL,
			"location":        m.Location,
			"email":           m.Email,
			"phone":           m.Phone,
			"profileImageUrl": m.ProfileImageURL,
			"profileAudioUrl": m.ProfileAudioURL,
			"profileVideoUrl": m.ProfileVideoURL,
			"cvUrl":           m.CVURL,
			"ctaLabel":        m.CTALabel,
			"ctaLink":         m.CTALink,
		},
		"theme": map[string]any{
			"bg":      m.ThemeBg,
			"surface": m.ThemeSurface,
			"text":    m.ThemeText,
			"muted":   m.ThemeMuted,
			"accent":  m.ThemeAccent,
			"line":    m.ThemeLine,
		},
		"skills": map[string]any{
			"technical": toAnyList(m.TechnicalSkills),
			"soft":      toAnyList(m.SoftSkills),
		},
		"socials":           socials,
		"experience":        experience,
		"certifications":    certifications,
		"books":             books,
		"blogs":             blogs,
		"projects":          projects,
		"credibility":       credibility,
		"projectCategories": toAnyList(m.ProjectCategories),
		"bookCategories":    toAnyList(m.BookCategories),
	}
}

// CategoryHints merges the document's category lists with the
// categories used by individual entries, de-duplicated in first-seen
// order. De-duplication lives here only; the stored lists keep
// whatever the admin typed.
func CategoryHints(doc content.Document) (projects, books []string) {
	projects = dedupe(doc.ProjectCategories, categoriesOfProjects(doc.Projects))
	books = dedupe(doc.BookCategories, categoriesOfBooks(doc.Books))
	return projects, books
}

func categoriesOfProjects(list []content.Project) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Category)
	}
	return out
}

func categoriesOfBooks(list []content.Book) []string {
	out := make([]string, 0, len(list))
	for _, b := range list {
		out = append(out, b.Category)
	}
	return out
}

func dedupe(lists ...[]string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, list := range lists {
		for _, v := range list {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func toAnyList(in []string) []any {
	out := make([]any, 0, len(in))
	for _, v := range in {
		out = append(out, v)
	}
	return out
}
