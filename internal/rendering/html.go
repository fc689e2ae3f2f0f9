// Package rendering maps resume records to a fixed-geometry visual document.
package rendering

import (
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Page geometry in device-independent units: ISO A4 portrait at 96 DPI.
const (
	PageWidth  = 794
	PageHeight = 1123
)

// Document is a rendered resume surface. Identical record and template ID
// inputs always produce an identical document, so exports are reproducible
// and the renderer is testable without a live display.
type Document struct {
	HTML   string
	Width  int
	Height int
}

// pageData is the view model handed to the page template.
type pageData struct {
	Palette      Palette
	Width        int
	Height       int
	Name         string
	Email        string
	Phone        string
	Location     string
	LinkedinURL  string
	ProfileImage template.URL
	Summary      string
	Experience   []types.Experience
	Projects     []types.Project
	Education    []types.Education
	Skills       []string

	ShowSummary    bool
	ShowExperience bool
	ShowProjects   bool
	ShowEducation  bool
	ShowSkills     bool
}

var pageTemplate = template.Must(template.New("resume").Funcs(template.FuncMap{
	"orDefault": orDefault,
}).Parse(pageHTML))

// Render produces the visual document for a record and template selection.
// It is pure: no I/O, no clock, no randomness.
func Render(record *types.ResumeRecord, templateID int) (*Document, error) {
	data := buildPageData(record, templateID)

	var out strings.Builder
	if err := pageTemplate.Execute(&out, data); err != nil {
		return nil, &RenderError{Message: "failed to execute page template", Cause: err}
	}

	return &Document{
		HTML:   out.String(),
		Width:  PageWidth,
		Height: PageHeight,
	}, nil
}

// buildPageData assembles the view model, resolving the palette and
// evaluating the section predicates in their fixed order.
func buildPageData(record *types.ResumeRecord, templateID int) *pageData {
	data := &pageData{
		Palette:     paletteFor(templateID),
		Width:       PageWidth,
		Height:      PageHeight,
		Name:        record.PersonalInfo.Name,
		Email:       record.PersonalInfo.Email,
		Phone:       record.PersonalInfo.Phone,
		Location:    record.PersonalInfo.Location,
		LinkedinURL: record.PersonalInfo.LinkedinURL,
		Summary:     record.Summary,
		Experience:  record.Experience,
		Projects:    record.Projects,
		Education:   record.Education,
		Skills:      FilterSkills(record.Skills),
	}

	// The image payload is a data URI produced by our own upload path, so it
	// is safe to mark as a trusted URL for the img src attribute.
	if record.PersonalInfo.ProfileImageData != "" {
		data.ProfileImage = template.URL(record.PersonalInfo.ProfileImageData)
	}

	for _, name := range VisibleSections(record) {
		switch name {
		case SectionSummary:
			data.ShowSummary = true
		case SectionExperience:
			data.ShowExperience = true
		case SectionProjects:
			data.ShowProjects = true
		case SectionEducation:
			data.ShowEducation = true
		case SectionSkills:
			data.ShowSkills = true
		}
	}

	return data
}

// orDefault substitutes a placeholder for blank header and entry fields.
func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: Helvetica, Arial, sans-serif; background: #ffffff; }
  #resume-preview {
    width: {{.Width}}px;
    min-height: {{.Height}}px;
    padding: 32px;
    background: {{.Palette.Background}};
  }
  .header { display: flex; align-items: flex-start; gap: 24px; margin-bottom: 24px; }
  .profile-image {
    width: 96px; height: 96px; border-radius: 50%; overflow: hidden;
    border: 4px solid #ffffff; box-shadow: 0 2px 8px rgba(0,0,0,0.15);
    flex-shrink: 0;
  }
  .profile-image img { width: 100%; height: 100%; object-fit: cover; }
  .name { font-size: 30px; font-weight: bold; color: {{.Palette.Primary}}; margin-bottom: 8px; }
  .contact { color: #4b5563; font-size: 14px; line-height: 1.6; }
  .contact .linkedin { color: #2563eb; }
  .section { margin-bottom: 24px; }
  .accent-bar { height: 4px; background: {{.Palette.Accent}}; margin-bottom: 12px; }
  .section-title {
    font-size: 20px; font-weight: bold; color: {{.Palette.Primary}};
    border-bottom: 2px solid {{.Palette.SectionBorder}};
    padding-bottom: 4px; margin-bottom: 12px;
  }
  .entry { margin-bottom: 16px; }
  .entry-head { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 6px; }
  .entry-title { font-weight: 600; color: #111827; }
  .entry-subtitle { color: #4b5563; font-weight: 500; }
  .entry-date { font-size: 13px; color: #6b7280; font-weight: 500; }
  .entry-body { color: #374151; font-size: 13px; line-height: 1.5; white-space: pre-line; }
  .summary-text { color: #374151; font-size: 14px; line-height: 1.6; }
  .technologies { color: #4b5563; font-size: 13px; }
  .skill-list { display: flex; flex-wrap: wrap; gap: 8px; }
  .skill-chip {
    padding: 4px 12px; background: #e5e7eb; color: #374151;
    border-radius: 9999px; font-size: 13px; font-weight: 500;
  }
</style>
</head>
<body>
<div id="resume-preview">
  <div class="header">
    {{if .ProfileImage}}<div class="profile-image"><img src="{{.ProfileImage}}" alt="Profile"></div>{{end}}
    <div>
      <div class="name">{{orDefault .Name "Your Name"}}</div>
      <div class="contact">
        {{if .Email}}<p>{{.Email}}</p>{{end}}
        {{if .Phone}}<p>{{.Phone}}</p>{{end}}
        {{if .Location}}<p>{{.Location}}</p>{{end}}
        {{if .LinkedinURL}}<p class="linkedin">{{.LinkedinURL}}</p>{{end}}
      </div>
    </div>
  </div>

  {{if .ShowSummary}}
  <div class="section" id="summary">
    <div class="accent-bar"></div>
    <div class="section-title">Professional Summary</div>
    <p class="summary-text">{{.Summary}}</p>
  </div>
  {{end}}

  {{if .ShowExperience}}
  <div class="section" id="experience">
    <div class="accent-bar"></div>
    <div class="section-title">Experience</div>
    {{range .Experience}}{{if not .IsBlank}}
    <div class="entry">
      <div class="entry-head">
        <div>
          <div class="entry-title">{{orDefault .Title "Job Title"}}</div>
          <div class="entry-subtitle">{{orDefault .Company "Company Name"}}</div>
        </div>
        <span class="entry-date">{{.Duration}}</span>
      </div>
      {{if .Description}}<p class="entry-body">{{.Description}}</p>{{end}}
    </div>
    {{end}}{{end}}
  </div>
  {{end}}

  {{if .ShowProjects}}
  <div class="section" id="projects">
    <div class="accent-bar"></div>
    <div class="section-title">Projects</div>
    {{range .Projects}}{{if .Name}}
    <div class="entry">
      <div class="entry-title">{{.Name}}</div>
      {{if .Description}}<p class="entry-body">{{.Description}}</p>{{end}}
      {{if .Technologies}}<p class="technologies"><strong>Technologies:</strong> {{.Technologies}}</p>{{end}}
    </div>
    {{end}}{{end}}
  </div>
  {{end}}

  {{if .ShowEducation}}
  <div class="section" id="education">
    <div class="accent-bar"></div>
    <div class="section-title">Education</div>
    {{range .Education}}{{if not .IsBlank}}
    <div class="entry">
      <div class="entry-head">
        <div>
          <div class="entry-title">{{orDefault .Degree "Degree"}}</div>
          <div class="entry-subtitle">{{orDefault .School "School Name"}}</div>
        </div>
        <span class="entry-date">{{.Year}}</span>
      </div>
    </div>
    {{end}}{{end}}
  </div>
  {{end}}

  {{if .ShowSkills}}
  <div class="section" id="skills">
    <div class="accent-bar"></div>
    <div class="section-title">Skills</div>
    <div class="skill-list">
      {{range .Skills}}<span class="skill-chip">{{.}}</span>{{end}}
    </div>
  </div>
  {{end}}
</div>
</body>
</html>
`
