package export

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/learncode/internal/catalog"
	"github.com/abhisek/learncode/internal/progress"
)

func builtin(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	return cat
}

func TestFilenames(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"certificate", CertificateFilename("HTML Fundamentals"), "html-fundamentals-certificate.html"},
		{"certificate whitespace runs", CertificateFilename("Intro  to\tGo"), "intro-to-go-certificate.html"},
		{"cheat sheet md", CheatSheetFilename("CSS Styling", FormatMarkdown), "css-styling-cheatsheet.md"},
		{"cheat sheet html", CheatSheetFilename("CSS Styling", FormatHTML), "css-styling-cheatsheet.html"},
		{"resource", ResourceFilename("HTML Element Reference", FormatMarkdown), "html-element-reference.md"},
		{"slash in title", CertificateFilename("HTML/CSS Basics"), "html-css-basics-certificate.html"},
		{"backslash in title", CheatSheetFilename(`Tools\\Tips`, FormatMarkdown), "tools-tips-cheatsheet.md"},
		{"parent dirs in title", CertificateFilename("../../Escaped Course"), "..-..-escaped-course-certificate.html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("HTML")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f)

	_, err = ParseFormat("pdf")
	require.Error(t, err)
}

func TestCertificate(t *testing.T) {
	course, ok := builtin(t).Course("html")
	require.True(t, ok)

	on := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	cert := NewCertificate(*course, "", on)

	assert.Equal(t, "Student Developer", cert.Recipient)
	assert.Equal(t, "January 2, 2026", cert.Date())
	assert.Equal(t, "html-fundamentals-certificate.html", cert.Filename())
	_, err := uuid.Parse(cert.CredentialID)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cert.Render(&buf))
	doc := buf.String()
	assert.Contains(t, doc, "<title>Certificate - HTML Fundamentals</title>")
	assert.Contains(t, doc, "Certificate of Completion")
	assert.Contains(t, doc, "Student Developer")
	assert.Contains(t, doc, "Completed on January 2, 2026")
	assert.Contains(t, doc, "Demonstrating proficiency in learn the building blocks of web development with html")
	assert.Contains(t, doc, course.Icon)
	assert.Contains(t, doc, cert.CredentialID)
}

func TestCertificate_EscapesRecipient(t *testing.T) {
	course, _ := builtin(t).Course("css")
	cert := NewCertificate(*course, "<script>alert(1)</script>", time.Now())

	var buf bytes.Buffer
	require.NoError(t, cert.Render(&buf))
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestCertificate_UniqueCredentials(t *testing.T) {
	course, _ := builtin(t).Course("css")
	a := NewCertificate(*course, "Ada", time.Now())
	b := NewCertificate(*course, "Ada", time.Now())
	assert.NotEqual(t, a.CredentialID, b.CredentialID)
}

func TestCheatSheet(t *testing.T) {
	course, _ := builtin(t).Course("html")

	md := CheatSheet(*course, FormatMarkdown)
	assert.Equal(t, "html-fundamentals-cheatsheet.md", md.Filename)
	var buf bytes.Buffer
	require.NoError(t, md.Write(&buf, FormatMarkdown))
	assert.Equal(t, course.CheatSheet, buf.String())

	html := CheatSheet(*course, FormatHTML)
	assert.Equal(t, "html-fundamentals-cheatsheet.html", html.Filename)
	buf.Reset()
	require.NoError(t, html.Write(&buf, FormatHTML))
	out := buf.String()
	assert.Contains(t, out, "<title>HTML Fundamentals Cheat Sheet</title>")
	assert.Contains(t, out, "<h1>HTML Cheat Sheet</h1>")
	assert.Contains(t, out, "<pre><code class=\"language-html\">")
	// Code inside the cheat sheet is escaped, not rendered.
	assert.Contains(t, out, "&lt;!DOCTYPE html&gt;")
}

func TestResourceDocument(t *testing.T) {
	res, ok := builtin(t).Resource("python-stdlib")
	require.True(t, ok)

	doc := ResourceDocument(*res, FormatMarkdown)
	assert.Equal(t, "python-standard-library.md", doc.Filename)
	assert.Equal(t, res.Content, doc.Markdown)
}

func TestRenderMarkdown_EscapesRawHTML(t *testing.T) {
	out, err := RenderMarkdown("Hello <script>x</script>\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	s := string(out)
	assert.NotContains(t, s, "<script>")
	assert.Contains(t, s, "<table>")
}

func TestWriteReport(t *testing.T) {
	cat := builtin(t)
	now := time.Date(2026, 5, 14, 9, 0, 0, 0, time.UTC)

	st := progress.NewState()
	st = progress.Reduce(st, progress.CompleteLesson{CourseID: "html", LessonID: "html-basics", Score: progress.Score(90)}, now)
	st = progress.Reduce(st, progress.CompleteLesson{CourseID: "html", LessonID: "html-forms"}, now)
	st = progress.Reduce(st, progress.AwardCertificate{CourseID: "html"}, now)
	st = progress.Reduce(st, progress.CompleteLesson{CourseID: "python", LessonID: "py-basics"}, now)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, cat, st))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{CoursesSheet, LessonsSheet}, f.GetSheetList())

	courses, err := f.GetRows(CoursesSheet)
	require.NoError(t, err)
	require.Len(t, courses, 1+len(cat.Courses()))
	assert.Equal(t, "Course", courses[0][0])
	assert.Equal(t, []string{"html", "HTML Fundamentals", "HTML & CSS", "2", "2", "100", "Yes"}, courses[1])

	var python []string
	for _, row := range courses {
		if row[0] == "python" {
			python = row
		}
	}
	require.NotNil(t, python)
	assert.Equal(t, "1", python[3])
	assert.Equal(t, "50", python[5])
	assert.Equal(t, "No", python[6])

	lessons, err := f.GetRows(LessonsSheet)
	require.NoError(t, err)
	assert.Len(t, lessons, 1+cat.TotalLessons())
	assert.Equal(t, "html-basics", lessons[1][1])
	assert.Equal(t, "Yes", lessons[1][3])
	assert.Equal(t, "90", lessons[1][4])
	assert.True(t, strings.HasPrefix(lessons[1][5], "2026-05-14T09:00:00"))
}

func TestStateRoundTrip(t *testing.T) {
	st := progress.Reduce(progress.NewState(), progress.CompleteLesson{CourseID: "css", LessonID: "css-basics", Score: progress.Score(75)}, time.Now())
	st = progress.Reduce(st, progress.AwardCertificate{CourseID: "css"}, time.Now())

	var buf bytes.Buffer
	require.NoError(t, WriteState(&buf, st))
	assert.Contains(t, buf.String(), "\n  \"progress\": [")

	back, err := ReadState(&buf)
	require.NoError(t, err)
	assert.Equal(t, st, back)
}

func TestReadState_Invalid(t *testing.T) {
	_, err := ReadState(strings.NewReader("nope"))
	require.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	path, err := WriteFile(dir, "notes.md", func(w io.Writer) error {
		_, err := io.WriteString(w, "# Notes\n")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "notes.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Notes\n", string(data))
}

func TestWriteFile_StaysInDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "a", "out")

	for _, title := range []string{"HTML/CSS Basics", "../../Escaped Course"} {
		path, err := WriteFile(dir, CertificateFilename(title), func(w io.Writer) error {
			_, err := io.WriteString(w, "<html></html>")
			return err
		})
		require.NoError(t, err, title)
		assert.Equal(t, dir, filepath.Dir(path), title)
	}

	_, err := os.Stat(filepath.Join(root, "escaped-course-certificate.html"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFile_RejectsPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"", ".", "..", "../x.md", "sub/x.md", `sub\x.md`} {
		_, err := WriteFile(dir, name, func(io.Writer) error { return nil })
		assert.Error(t, err, "name %q", name)
	}
}

func TestWriteFile_WriterError(t *testing.T) {
	_, err := WriteFile(t.TempDir(), "broken.md", func(io.Writer) error {
		return errors.New("render failed")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render failed")
}
