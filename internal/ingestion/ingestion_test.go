package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/extractor"
	"github.com/jonathan/resume-screener/internal/taxonomy"
)

func TestCleanText(t *testing.T) {
	input := "Line one   with   spaces\r\n\r\n\r\n\r\nLine two\t\n  indented   line\n"

	got := CleanText(input)

	assert.Equal(t, "Line one with spaces\n\nLine two\n  indented line", got)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n"))
}

func TestLoadFile_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nPython   engineer\n"), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "resume.txt", doc.SourceFile)
	assert.Equal(t, "Jane Doe\nPython engineer", doc.Text)
	assert.NotEmpty(t, doc.Hash)
	assert.False(t, doc.LoadedAt.IsZero())
}

func TestLoadFile_HTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.html")
	html := `<html><body><nav>menu</nav><p>Jane Doe</p><p>Python engineer</p></body></html>`
	require.NoError(t, os.WriteFile(path, []byte(html), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Contains(t, doc.Text, "Jane Doe")
	assert.NotContains(t, doc.Text, "menu")
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o644))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorContains(t, err, "file not found")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("second"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("first"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.bin"), []byte{0x00}, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	docs, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a.txt", docs[0].SourceFile)
	assert.Equal(t, "b.txt", docs[1].SourceFile)
}

func TestFetchJobPosting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="job-description">Senior Go engineer, 5 years of experience</div></body></html>`))
	}))
	defer srv.Close()

	doc, err := FetchJobPosting(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, doc.URL)
	assert.Contains(t, doc.Text, "Senior Go engineer")
}

func TestFetchJobPosting_RequestFailure(t *testing.T) {
	_, err := FetchJobPosting(context.Background(), "::bad::")
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestBuilderCandidateProfile(t *testing.T) {
	doc := &Document{
		SourceFile: "jane.txt",
		Text: "Jane Doe\njane@example.com\n\nSUMMARY\nSenior engineer with 6 years of experience\n\n" +
			"SKILLS\nPython, PostgreSQL, Docker",
	}
	builder := NewBuilder(extractor.New(taxonomy.Default(), nil))

	profile := builder.CandidateProfile(doc)

	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "jane.txt", profile.SourceFile)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "jane@example.com", profile.Contact.Email)
	assert.Equal(t, 6, profile.YearsExperience)
	assert.Equal(t, taxonomy.SenioritySenior, profile.SeniorityLevel)
	assert.Contains(t, profile.SkillProfile.Skills, "Python")
	assert.Contains(t, profile.SectionSkills["skills"], "PostgreSQL")
}

func TestBuilderJobProfile_RequiredSkillsOverride(t *testing.T) {
	doc := &Document{Text: "Looking for a backend engineer, 4 years of experience, Java required"}
	builder := NewBuilder(extractor.New(taxonomy.Default(), nil))

	profile := builder.JobProfile(doc, []string{"k8s", "Python"})

	// Explicit requirements replace detected skills, synonym-normalized.
	assert.Equal(t, []string{"Kubernetes", "Python"}, profile.SkillProfile.Skills)
	assert.Equal(t, 4, profile.YearsExperience)
}

func TestBuilderJobProfile_DetectedSkills(t *testing.T) {
	doc := &Document{Text: "Java and PostgreSQL experience required"}
	builder := NewBuilder(extractor.New(taxonomy.Default(), nil))

	profile := builder.JobProfile(doc, nil)

	assert.Contains(t, profile.SkillProfile.Skills, "Java")
	assert.Contains(t, profile.SkillProfile.Skills, "PostgreSQL")
}
