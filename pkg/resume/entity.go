package resume

// Categories holds the per-area sub-scores of a resume.
type Categories struct {
	Formatting int `json:"formatting"`
	Keywords   int `json:"keywords"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Skills     int `json:"skills"`
}

// Score is the result of analysing a resume.
type Score struct {
	Overall     int        `json:"overall"`
	Categories  Categories `json:"categories"`
	Suggestions []string   `json:"suggestions"`
}

// Inclusive bounds for each generated value.
type scoreRange struct{ min, max int }

var (
	overallRange    = scoreRange{65, 90}
	formattingRange = scoreRange{60, 95}
	keywordsRange   = scoreRange{55, 95}
	experienceRange = scoreRange{50, 95}
	educationRange  = scoreRange{70, 95}
	skillsRange     = scoreRange{60, 95}
)

var suggestions = []string{
	"Add more industry-specific keywords to improve ATS compatibility",
	`Consider adding quantifiable achievements (e.g., "Increased sales by 25%")`,
	"Include a professional summary at the top of your resume",
	"Add more technical skills relevant to your target positions",
	"Consider reformatting to use bullet points for better readability",
}

// Suggestions returns a copy of the fixed improvement suggestions.
func Suggestions() []string {
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}
