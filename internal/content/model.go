package content

// Document is the single structured record holding all portfolio data.
// One instance exists per deployment; it is only ever mutated through
// the save path, which runs every input through Sanitize first.
type Document struct {
	Profile           Profile         `json:"profile" bson:"profile"`
	Theme             Theme           `json:"theme" bson:"theme"`
	Skills            Skills          `json:"skills" bson:"skills"`
	Socials           []Social        `json:"socials" bson:"socials"`
	Experience        []Experience    `json:"experience" bson:"experience"`
	Certifications    []Certification `json:"certifications" bson:"certifications"`
	Books             []Book          `json:"books" bson:"books"`
	Blogs             []Blog          `json:"blogs" bson:"blogs"`
	Projects          []Project       `json:"projects" bson:"projects"`
	Credibility       []Stat          `json:"credibility" bson:"credibility"`
	ProjectCategories []string        `json:"projectCategories" bson:"projectCategories"`
	BookCategories    []string        `json:"bookCategories" bson:"bookCategories"`
}

type Profile struct {
	Name            string `json:"name" bson:"name"`
	Role            string `json:"role" bson:"role"`
	Niche           string `json:"niche" bson:"niche"`
	Bio             string `json:"bio" bson:"bio"`
	LogoText        string `json:"logoText" bson:"logoText"`
	LogoImageURL    string `json:"logoImageUrl" bson:"logoImageUrl"`
	Location        string `json:"location" bson:"location"`
	Email           string `json:"email" bson:"email"`
	Phone           string `json:"phone" bson:"phone"`
	ProfileImageURL string `json:"profileImageUrl" bson:"profileImageUrl"`
	ProfileAudioURL string `json:"profileAudioUrl" bson:"profileAudioUrl"`
	ProfileVideoURL string `json:"profileVideoUrl" bson:"profileVideoUrl"`
	CVURL           string `json:"cvUrl" bson:"cvUrl"`
	CTALabel        string `json:"ctaLabel" bson:"ctaLabel"`
	CTALink         string `json:"ctaLink" bson:"ctaLink"`
}

// Theme holds the site palette. Each value is a #rgb or #rrggbb hex
// string; invalid values are replaced by the default palette.
type Theme struct {
	Bg      string `json:"bg" bson:"bg"`
	Surface string `json:"surface" bson:"surface"`
	Text    string `json:"text" bson:"text"`
	Muted   string `json:"muted" bson:"muted"`
	Accent  string `json:"accent" bson:"accent"`
	Line    string `json:"line" bson:"line"`
}

type Skills struct {
	Technical []string `json:"technical" bson:"technical"`
	Soft      []string `json:"soft" bson:"soft"`
}

type Social struct {
	Platform string `json:"platform" bson:"platform"`
	URL      string `json:"url" bson:"url"`
}

type Experience struct {
	Role        string `json:"role" bson:"role"`
	Company     string `json:"company" bson:"company"`
	Period      string `json:"period" bson:"period"`
	Description string `json:"description" bson:"description"`
}

type Certification struct {
	Title         string `json:"title" bson:"title"`
	Category      string `json:"category" bson:"category"`
	Issuer        string `json:"issuer" bson:"issuer"`
	Date          string `json:"date" bson:"date"`
	ImageURL      string `json:"imageUrl" bson:"imageUrl"`
	CredentialURL string `json:"credentialUrl" bson:"credentialUrl"`
}

type Book struct {
	ImageURL        string `json:"imageUrl" bson:"imageUrl"`
	Title           string `json:"title" bson:"title"`
	Author          string `json:"author" bson:"author"`
	Category        string `json:"category" bson:"category"`
	DescriptionHTML string `json:"descriptionHtml" bson:"descriptionHtml"`
}

type Blog struct {
	Title           string `json:"title" bson:"title"`
	Date            string `json:"date" bson:"date"`
	ImageURL        string `json:"imageUrl" bson:"imageUrl"`
	Excerpt         string `json:"excerpt" bson:"excerpt"`
	URL             string `json:"url" bson:"url"`
	DescriptionHTML string `json:"descriptionHtml" bson:"descriptionHtml"`
}

type Project struct {
	ID              string `json:"id" bson:"id"`
	Title           string `json:"title" bson:"title"`
	Category        string `json:"category" bson:"category"`
	Tech            string `json:"tech" bson:"tech"`
	Summary         string `json:"summary" bson:"summary"`
	DescriptionHTML string `json:"descriptionHtml" bson:"descriptionHtml"`
	DemoURL         string `json:"demoUrl" bson:"demoUrl"`
	RepoURL         string `json:"repoUrl" bson:"repoUrl"`
	ImageURL        string `json:"imageUrl" bson:"imageUrl"`
}

// Stat is a single credibility metric shown on the landing page,
// e.g. {"Projects shipped", 24}.
type Stat struct {
	Label string  `json:"label" bson:"label"`
	Value float64 `json:"value" bson:"value"`
}
