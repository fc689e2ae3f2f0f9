package checker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUpload() Upload {
	return Upload{Filename: "resume.pdf", Size: 1024, Data: []byte("%PDF-1.4")}
}

func TestAnalyzeReturnsStableReport(t *testing.T) {
	analyzer := NewSimulatedAnalyzer()

	first, err := analyzer.Analyze(validUpload())
	require.NoError(t, err)
	second, err := analyzer.Analyze(Upload{Filename: "other.docx", Size: 2048, Data: []byte("different bytes")})
	require.NoError(t, err)

	assert.Equal(t, first, second, "report should not depend on document contents")
	assert.Equal(t, 78, first.OverallScore)
	assert.Len(t, first.Categories, 6)
	assert.Len(t, first.Suggestions, 4)
}

func TestAnalyzeReportCoversAllStatusLevels(t *testing.T) {
	report, err := NewSimulatedAnalyzer().Analyze(validUpload())
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, c := range report.Categories {
		seen[c.Status] = true
		assert.GreaterOrEqual(t, c.Score, 0)
		assert.LessOrEqual(t, c.Score, 100)
	}
	assert.True(t, seen[StatusExcellent])
	assert.True(t, seen[StatusGood])
	assert.True(t, seen[StatusWarning])
}

func TestAnalyzeKeywordListsAreDisjoint(t *testing.T) {
	report, err := NewSimulatedAnalyzer().Analyze(validUpload())
	require.NoError(t, err)

	for _, found := range report.FoundKeywords {
		assert.NotContains(t, report.MissingKeywords, found)
	}
}

func TestValidateUploadAcceptsKnownExtensions(t *testing.T) {
	for _, name := range []string{"resume.pdf", "resume.doc", "resume.docx", "RESUME.PDF"} {
		err := ValidateUpload(Upload{Filename: name, Size: 100})
		assert.NoError(t, err, name)
	}
}

func TestValidateUploadRejectsUnknownExtension(t *testing.T) {
	err := ValidateUpload(Upload{Filename: "resume.txt", Size: 100})
	require.Error(t, err)

	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Contains(t, uploadErr.Message, "unsupported file type")
}

func TestValidateUploadRejectsMissingExtension(t *testing.T) {
	err := ValidateUpload(Upload{Filename: "resume", Size: 100})
	assert.Error(t, err)
}

func TestValidateUploadRejectsOversizedFile(t *testing.T) {
	err := ValidateUpload(Upload{Filename: "resume.pdf", Size: MaxUploadSize + 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5MB")
}

func TestValidateUploadRejectsOversizedPayloadWithSmallDeclaredSize(t *testing.T) {
	// The declared size is client-supplied; the actual bytes decide.
	err := ValidateUpload(Upload{Filename: "resume.pdf", Size: 100, Data: make([]byte, MaxUploadSize+1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5MB")
}

func TestValidateUploadAcceptsExactlyMaxSize(t *testing.T) {
	err := ValidateUpload(Upload{Filename: "resume.pdf", Size: MaxUploadSize})
	assert.NoError(t, err)
}

func TestValidateUploadJudgesExtensionNotContent(t *testing.T) {
	// A text payload with a .pdf name passes; only the name is examined.
	err := ValidateUpload(Upload{Filename: "fake.pdf", Size: 10, Data: []byte(strings.Repeat("a", 10))})
	assert.NoError(t, err)
}
