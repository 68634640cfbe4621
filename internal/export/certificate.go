package export

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learncode/internal/catalog"
)

// DateFormat is how completion dates appear on certificates.
const DateFormat = "January 2, 2006"

// Certificate is a course completion certificate.
type Certificate struct {
	CourseID          string
	CourseTitle       string
	CourseIcon        string
	CourseDescription string
	Recipient         string
	CompletedOn       time.Time
	CredentialID      string
}

// NewCertificate builds a certificate for course with a fresh credential ID.
func NewCertificate(course catalog.Course, recipient string, on time.Time) Certificate {
	if strings.TrimSpace(recipient) == "" {
		recipient = "Student Developer"
	}
	return Certificate{
		CourseID:          course.ID,
		CourseTitle:       course.Title,
		CourseIcon:        course.Icon,
		CourseDescription: course.Description,
		Recipient:         recipient,
		CompletedOn:       on,
		CredentialID:      uuid.NewString(),
	}
}

// Filename is the download name of the rendered certificate.
func (c Certificate) Filename() string {
	return CertificateFilename(c.CourseTitle)
}

// Date returns the formatted completion date.
func (c Certificate) Date() string {
	return c.CompletedOn.Format(DateFormat)
}

// Render writes the certificate as a standalone HTML document.
func (c Certificate) Render(w io.Writer) error {
	if err := certificateTmpl.Execute(w, c); err != nil {
		return fmt.Errorf("render certificate: %w", err)
	}
	return nil
}

var certificateTmpl = template.Must(template.New("certificate").
	Funcs(template.FuncMap{"lower": strings.ToLower}).
	Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Certificate - {{.CourseTitle}}</title>
<style>
  body {
    font-family: Georgia, serif;
    margin: 0;
    padding: 40px;
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    min-height: 100vh;
    display: flex;
    align-items: center;
    justify-content: center;
  }
  .certificate {
    background: #fff;
    padding: 60px;
    border-radius: 20px;
    box-shadow: 0 20px 40px rgba(0, 0, 0, 0.1);
    text-align: center;
    max-width: 800px;
    width: 100%;
    border: 8px solid #f8f9fa;
  }
  .header { border-bottom: 3px solid #3b82f6; padding-bottom: 30px; margin-bottom: 40px; }
  .logo {
    width: 80px; height: 80px; margin: 0 auto 20px;
    border-radius: 50%; background: #3b82f6; color: #fff;
    display: flex; align-items: center; justify-content: center; font-size: 40px;
  }
  .title { font-size: 48px; color: #1e40af; font-weight: bold; margin-bottom: 10px; }
  .subtitle { font-size: 18px; color: #6b7280; font-style: italic; }
  .lead { font-size: 20px; color: #6b7280; margin-bottom: 10px; }
  .recipient { font-size: 32px; color: #111827; font-weight: bold; margin: 30px 0; }
  .course { font-size: 28px; color: #3b82f6; font-weight: 600; margin: 20px 0; }
  .detail { font-size: 16px; color: #6b7280; margin-top: 20px; }
  .date { font-size: 16px; color: #6b7280; margin-top: 40px; }
  .signature { margin-top: 50px; padding-top: 30px; border-top: 2px solid #e5e7eb; }
  .credential { font-size: 12px; color: #9ca3af; margin-top: 20px; font-family: monospace; }
</style>
</head>
<body>
  <div class="certificate">
    <div class="header">
      <div class="logo">{{.CourseIcon}}</div>
      <div class="title">Certificate of Completion</div>
      <div class="subtitle">LearnCode Programming Academy</div>
    </div>
    <div>
      <div class="lead">This is to certify that</div>
      <div class="recipient">{{.Recipient}}</div>
      <div class="lead">has successfully completed</div>
      <div class="course">{{.CourseTitle}}</div>
      <div class="detail">Demonstrating proficiency in {{lower .CourseDescription}}</div>
    </div>
    <div class="date">Completed on {{.Date}}</div>
    <div class="signature">
      <div style="font-size: 18px; font-weight: 600; color: #111827;">LearnCode Academy</div>
      <div style="font-size: 14px; color: #6b7280; margin-top: 5px;">Online Programming Education</div>
      <div class="credential">Credential ID: {{.CredentialID}}</div>
    </div>
  </div>
</body>
</html>
`))
