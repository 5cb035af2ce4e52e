package content

// DefaultPalette is used whenever a stored or submitted theme color is
// missing or not a valid hex value.
var DefaultPalette = Theme{
	Bg:      "#0b0c10",
	Surface: "#13151a",
	Text:    "#e8e9ee",
	Muted:   "#9aa0ae",
	Accent:  "#6cf0c2",
	Line:    "#23262f",
}

// DefaultDocument returns the seed content written on first read and
// used to fill gaps in partially populated stored documents. Callers
// receive a fresh copy and may mutate it freely.
func DefaultDocument() Document {
	return Document{
		Profile: Profile{
			Name:     "Aswin Paudel",
			Role:     "Full-Stack Developer",
			Niche:    "Performance-first web products",
			Bio:      "I design and build high-impact digital products focused on performance, clarity, and real user outcomes.",
			LogoText: "AP",
			Location: "United States",
			Email:    "aswin@example.com",
			Phone:    "+1 (000) 000-0000",
			CTALabel: "Let's Build Together",
			CTALink:  "mailto:aswin@example.com",
		},
		Theme: DefaultPalette,
		Skills: Skills{
			Technical: []string{"JavaScript", "Go", "React", "MongoDB"},
			Soft:      []string{"Communication", "Team Collaboration", "Problem Solving"},
		},
		Socials: []Social{
			{Platform: "GitHub", URL: "https://github.com/"},
			{Platform: "LinkedIn", URL: "https://linkedin.com/"},
		},
		Experience: []Experience{
			{
				Role:        "Full-Stack Developer",
				Company:     "Freelance",
				Period:      "2024 - Present",
				Description: "Building production web apps with clean UX, performance-first architecture, and admin-driven content workflows.",
			},
		},
		Certifications: []Certification{
			{
				Title:    "Meta Front-End Developer",
				Category: "Web Development",
				Issuer:   "Meta",
				Date:     "2025",
			},
		},
		Books: []Book{
			{
				Title:           "The Pragmatic Programmer",
				Author:          "Andrew Hunt, David Thomas",
				Category:        "Engineering",
				DescriptionHTML: "<p>A field guide to building software that lasts.</p>",
			},
		},
		Blogs: []Blog{
			{
				Title:   "Shipping a portfolio that loads in under a second",
				Date:    "2025-01-15",
				Excerpt: "Notes on performance budgets for personal sites.",
			},
		},
		Projects: []Project{
			{
				ID:       "1",
				Title:    "Flagship Product Site",
				Category: "Web",
				Tech:     "Go, React, MongoDB",
				Summary:  "A conversion-focused marketing website with rapid load times and strong SEO foundations.",
				DemoURL:  "https://example.com",
				RepoURL:  "https://github.com/",
			},
		},
		Credibility: []Stat{
			{Label: "Years of experience", Value: 3},
			{Label: "Projects shipped", Value: 12},
		},
		ProjectCategories: []string{"Web", "Mobile", "Tooling"},
		BookCategories:    []string{"Engineering", "Design", "Business"},
	}
}

// WithDefaults fills gaps in a stored document before it is served.
// List fields are replaced wholesale by the seed list when empty, and
// the theme is merged color by color. The profile is seeded only when
// entirely absent: every save writes the complete profile, so a stored
// profile with some blank fields means the admin cleared them, and
// backfilling those would resurrect seed values the admin removed.
func WithDefaults(stored Document) Document {
	def := DefaultDocument()
	out := stored

	if stored.Profile == (Profile{}) {
		out.Profile = def.Profile
	}
	out.Theme = mergeTheme(def.Theme, stored.Theme)

	if len(stored.Skills.Technical) == 0 {
		out.Skills.Technical = def.Skills.Technical
	}
	if len(stored.Skills.Soft) == 0 {
		out.Skills.Soft = def.Skills.Soft
	}
	if len(stored.Socials) == 0 {
		out.Socials = def.Socials
	}
	if len(stored.Experience) == 0 {
		out.Experience = def.Experience
	}
	if len(stored.Certifications) == 0 {
		out.Certifications = def.Certifications
	}
	if len(stored.Books) == 0 {
		out.Books = def.Books
	}
	if len(stored.Blogs) == 0 {
		out.Blogs = def.Blogs
	}
	if len(stored.Projects) == 0 {
		out.Projects = def.Projects
	}
	if len(stored.Credibility) == 0 {
		out.Credibility = def.Credibility
	}
	if len(stored.ProjectCategories) == 0 {
		out.ProjectCategories = def.ProjectCategories
	}
	if len(stored.BookCategories) == 0 {
		out.BookCategories = def.BookCategories
	}
	return out
}

func mergeTheme(def, t Theme) Theme {
	return Theme{
		Bg:      hexOr(t.Bg, def.Bg),
		Surface: hexOr(t.Surface, def.Surface),
		Text:    hexOr(t.Text, def.Text),
		Muted:   hexOr(t.Muted, def.Muted),
		Accent:  hexOr(t.Accent, def.Accent),
		Line:    hexOr(t.Line, def.Line),
	}
}
