package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Section names, in the fixed render order.
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionEducation  = "education"
	SectionSkills     = "skills"
)

// section pairs a qualifying predicate with the name of a template block.
// Which sections appear is decided by walking this list in order, so the
// content-presence rule is testable without executing the template.
type section struct {
	name    string
	present func(*types.ResumeRecord) bool
}

var sectionOrder = []section{
	{SectionSummary, hasSummary},
	{SectionExperience, hasExperience},
	{SectionProjects, hasProjects},
	{SectionEducation, hasEducation},
	{SectionSkills, hasSkills},
}

// VisibleSections returns the names of the sections that qualify for
// rendering, in render order. A section with only blank or placeholder
// entries is omitted entirely.
func VisibleSections(record *types.ResumeRecord) []string {
	visible := []string{}
	for _, s := range sectionOrder {
		if s.present(record) {
			visible = append(visible, s.name)
		}
	}
	return visible
}

func hasSummary(record *types.ResumeRecord) bool {
	return strings.TrimSpace(record.Summary) != ""
}

func hasExperience(record *types.ResumeRecord) bool {
	for _, exp := range record.Experience {
		if !exp.IsBlank() {
			return true
		}
	}
	return false
}

func hasProjects(record *types.ResumeRecord) bool {
	for _, p := range record.Projects {
		if strings.TrimSpace(p.Name) != "" {
			return true
		}
	}
	return false
}

func hasEducation(record *types.ResumeRecord) bool {
	for _, edu := range record.Education {
		if !edu.IsBlank() {
			return true
		}
	}
	return false
}

func hasSkills(record *types.ResumeRecord) bool {
	for _, s := range record.Skills {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

// FilterSkills drops blank entries so they are never rendered as empty chips.
func FilterSkills(skills []string) []string {
	out := []string{}
	for _, s := range skills {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
