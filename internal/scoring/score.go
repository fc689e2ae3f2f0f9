// Package scoring implements the heuristic ATS compatibility score for resume records.
package scoring

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

// technicalKeywords is the fixed keyword set matched against the record text.
// Matching is case-insensitive and substring-based.
var technicalKeywords = []string{"javascript", "python", "react", "node", "sql", "aws", "docker", "git"}

// Point deductions, applied in fixed order from a base of 100.
const (
	deductMissingEmail    = 10
	deductMissingPhone    = 10
	deductMissingLocation = 5
	deductShortSummary    = 15
	deductNoNumbers       = 10
	deductMissingSkills   = 20
	deductFewSkills       = 5
	deductFewKeywords     = 8
	deductMissingDuration = 5
)

// minSummaryLength is the character count below which the summary is flagged.
const minSummaryLength = 50

// minKeywordMatches is the match count below which the keyword suggestion fires.
const minKeywordMatches = 3

// minSkillCount is the non-blank skill count below which more skills are suggested.
const minSkillCount = 5

// Result holds the score and categorized findings for one record snapshot.
type Result struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Suggestions     []string `json:"suggestions"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// Score computes the ATS compatibility result for a record. It is pure: no
// I/O, deterministic for a given record, and the record is never mutated.
// Every deduction is evaluated independently; an earlier deduction never
// short-circuits a later one. Deduction order only fixes the ordering of the
// issue and suggestion lists, not the numeric score.
func Score(record *types.ResumeRecord) Result {
	issues := []string{}
	suggestions := []string{}
	score := 100

	// Contact information
	if strings.TrimSpace(record.PersonalInfo.Email) == "" {
		issues = append(issues, "Missing email address")
		score -= deductMissingEmail
	}
	if strings.TrimSpace(record.PersonalInfo.Phone) == "" {
		issues = append(issues, "Missing phone number")
		score -= deductMissingPhone
	}
	if strings.TrimSpace(record.PersonalInfo.Location) == "" {
		suggestions = append(suggestions, "Add location for better local job matching")
		score -= deductMissingLocation
	}

	// Summary length, counted in characters, not bytes
	if utf8.RuneCountInString(record.Summary) < minSummaryLength {
		issues = append(issues, "Professional summary is too short or missing")
		score -= deductShortSummary
	}

	// Quantifiable achievements
	if !hasQuantifiableAchievement(record.Experience) {
		suggestions = append(suggestions, "Add quantifiable achievements (numbers, percentages, etc.)")
		score -= deductNoNumbers
	}

	// Skills section
	if len(record.Skills) == 0 || strings.TrimSpace(record.Skills[0]) == "" {
		issues = append(issues, "Missing skills section")
		score -= deductMissingSkills
	} else if countNonBlank(record.Skills) < minSkillCount {
		suggestions = append(suggestions, "Add more relevant skills (aim for 8-12 skills)")
		score -= deductFewSkills
	}

	// Keyword density
	matched := matchKeywords(record)
	if len(matched) < minKeywordMatches {
		suggestions = append(suggestions, "Include more industry-relevant keywords")
		score -= deductFewKeywords
	}

	// Experience durations. An entirely blank entry is a form placeholder and
	// does not count; only entries with some content and no duration fire this.
	if hasMissingDuration(record.Experience) {
		suggestions = append(suggestions, "Add duration for all work experiences")
		score -= deductMissingDuration
	}

	if score < 0 {
		score = 0
	}

	return Result{
		Score:           score,
		Issues:          issues,
		Suggestions:     suggestions,
		MatchedKeywords: matched,
	}
}

// hasQuantifiableAchievement reports whether any experience description
// contains a numeric digit.
func hasQuantifiableAchievement(experience []types.Experience) bool {
	for _, exp := range experience {
		if exp.Description != "" && strings.ContainsAny(exp.Description, "0123456789") {
			return true
		}
	}
	return false
}

// hasMissingDuration reports whether any non-placeholder experience entry has
// a blank duration.
func hasMissingDuration(experience []types.Experience) bool {
	for _, exp := range experience {
		if exp.IsBlank() {
			continue
		}
		if strings.TrimSpace(exp.Duration) == "" {
			return true
		}
	}
	return false
}

// matchKeywords concatenates summary, experience titles and descriptions, and
// skills into one lowercase blob and collects every keyword it contains.
func matchKeywords(record *types.ResumeRecord) []string {
	parts := []string{record.Summary}
	for _, exp := range record.Experience {
		parts = append(parts, exp.Title+" "+exp.Description)
	}
	parts = append(parts, record.Skills...)
	blob := strings.ToLower(strings.Join(parts, " "))

	matched := []string{}
	for _, keyword := range technicalKeywords {
		if strings.Contains(blob, keyword) {
			matched = append(matched, keyword)
		}
	}
	return matched
}

// countNonBlank counts skill entries that are non-empty after trimming.
func countNonBlank(skills []string) int {
	count := 0
	for _, s := range skills {
		if strings.TrimSpace(s) != "" {
			count++
		}
	}
	return count
}
