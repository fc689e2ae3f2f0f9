package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestVisibleSectionsBlankRecord(t *testing.T) {
	assert.Empty(t, VisibleSections(types.NewRecord()))
}

func TestVisibleSectionsOrderIsFixed(t *testing.T) {
	record := &types.ResumeRecord{
		Summary:    "A summary.",
		Experience: []types.Experience{{Title: "Engineer"}},
		Education:  []types.Education{{Degree: "BSc"}},
		Skills:     []string{"Go"},
		Projects:   []types.Project{{Name: "Thing"}},
	}

	assert.Equal(t,
		[]string{SectionSummary, SectionExperience, SectionProjects, SectionEducation, SectionSkills},
		VisibleSections(record))
}

func TestVisibleSectionsWhitespaceSummaryDoesNotQualify(t *testing.T) {
	record := types.NewRecord()
	record.Summary = "   \n\t"
	assert.NotContains(t, VisibleSections(record), SectionSummary)
}

func TestVisibleSectionsExperienceNeedsOneNonBlankEntry(t *testing.T) {
	record := types.NewRecord()
	record.Experience = []types.Experience{{}, {Duration: "2020"}}
	assert.Contains(t, VisibleSections(record), SectionExperience)
}

func TestVisibleSectionsProjectNeedsName(t *testing.T) {
	record := types.NewRecord()
	record.Projects = []types.Project{{Description: "nameless"}}
	assert.NotContains(t, VisibleSections(record), SectionProjects)

	record.Projects = []types.Project{{Name: "Named"}}
	assert.Contains(t, VisibleSections(record), SectionProjects)
}

func TestVisibleSectionsSkillsIgnoreBlankEntries(t *testing.T) {
	record := types.NewRecord()
	record.Skills = []string{"", "  "}
	assert.NotContains(t, VisibleSections(record), SectionSkills)

	record.Skills = []string{"", "Go"}
	assert.Contains(t, VisibleSections(record), SectionSkills)
}

func TestFilterSkills(t *testing.T) {
	assert.Equal(t, []string{"React"}, FilterSkills([]string{"", "React", " "}))
	assert.Empty(t, FilterSkills(nil))
	assert.Empty(t, FilterSkills([]string{"", "  "}))
}
