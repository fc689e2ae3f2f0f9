// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

// PersonalInfo holds the contact details rendered in the resume header.
type PersonalInfo struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Location         string `json:"location"`
	LinkedinURL      string `json:"linkedin_url"`
	ProfileImageData string `json:"profile_image_data,omitempty"` // data URI, present only after a successful upload
}

// Experience is one work history entry. Duration is free text, not a parsed
// date range; Description may contain line breaks.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education is one education entry. Year is free text.
type Education struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

// Project is one project entry. Technologies is free text by
// comma-separated convention and is never parsed.
type Project struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
}

// ResumeRecord is the root resume entity. List order is display order and is
// never reordered automatically. No field is required; the scorer treats
// absence as a signal, not a validation error.
type ResumeRecord struct {
	PersonalInfo PersonalInfo `json:"personal_info"`
	Summary      string       `json:"summary"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []string     `json:"skills"`
	Projects     []Project    `json:"projects"`
}

// NewRecord returns a record with the blank defaults an editing session
// starts from: one placeholder entry per list.
func NewRecord() *ResumeRecord {
	return &ResumeRecord{
		Experience: []Experience{{}},
		Education:  []Education{{}},
		Skills:     []string{""},
		Projects:   []Project{{}},
	}
}

// Clone returns a deep copy of the record. Scorer, renderer and exporter all
// work from snapshots so that a concurrent edit never changes their input
// mid-derivation.
func (r *ResumeRecord) Clone() *ResumeRecord {
	if r == nil {
		return nil
	}
	out := &ResumeRecord{
		PersonalInfo: r.PersonalInfo,
		Summary:      r.Summary,
	}
	if r.Experience != nil {
		out.Experience = make([]Experience, len(r.Experience))
		copy(out.Experience, r.Experience)
	}
	if r.Education != nil {
		out.Education = make([]Education, len(r.Education))
		copy(out.Education, r.Education)
	}
	if r.Skills != nil {
		out.Skills = make([]string, len(r.Skills))
		copy(out.Skills, r.Skills)
	}
	if r.Projects != nil {
		out.Projects = make([]Project, len(r.Projects))
		copy(out.Projects, r.Projects)
	}
	return out
}

// IsBlank reports whether the entry is an untouched form placeholder.
func (e Experience) IsBlank() bool {
	return e.Title == "" && e.Company == "" && e.Duration == "" && e.Description == ""
}

// IsBlank reports whether the entry is an untouched form placeholder.
func (e Education) IsBlank() bool {
	return e.Degree == "" && e.School == "" && e.Year == ""
}

// IsBlank reports whether the entry is an untouched form placeholder.
func (p Project) IsBlank() bool {
	return p.Name == "" && p.Description == "" && p.Technologies == ""
}
