package helpers

import (
	"bytes"
	"testing"

	"github.com/artihcus-web/website-backend/config"
	"github.com/artihcus-web/website-backend/errs"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func testMailer() *Mailer {
	return NewMailer(nil, config.EmailConfig{
		From: "noreply@artihcus.com",
		To:   "info@artihcus.com",
	}, "Artihcus Website Backend")
}

func TestCareerMessage_MissingFields(t *testing.T) {
	m := testMailer()

	_, err := m.careerMessage(CareerApplication{Name: "Jane Doe", Email: "jane@example.com"})

	var validation *errs.ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, []string{"phone", "resume"}, validation.Fields)
}

func TestCareerMessage_AttachesResumeAndSubject(t *testing.T) {
	m := testMailer()

	application := CareerApplication{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		JobTitle: "SAP Consultant",
		Resume:   newFileHeader(t, "resume", "resume.pdf", 512),
	}

	msg, err := m.careerMessage(application)
	require.NoError(t, err)

	subjects := msg.GetGenHeader(mail.HeaderSubject)
	require.Len(t, subjects, 1)
	require.Contains(t, subjects[0], "SAP Consultant")

	require.Len(t, msg.GetAttachments(), 1)

	buf := &bytes.Buffer{}
	_, err = msg.WriteTo(buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Name: Jane Doe")
	require.Contains(t, buf.String(), "Position applied for: SAP Consultant")
}

func TestCareerMessage_RejectsOversizedResume(t *testing.T) {
	m := testMailer()

	application := CareerApplication{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Phone:  "+1 555 0100",
		Resume: newFileHeader(t, "resume", "resume.pdf", int(MaxUploadBytes)+1),
	}

	_, err := m.careerMessage(application)

	var uploadErr *errs.UploadError
	require.ErrorAs(t, err, &uploadErr)
}

func TestContactMessage_MissingFields(t *testing.T) {
	m := testMailer()

	_, err := m.contactMessage(ContactInquiry{FirstName: "Jane"})

	var validation *errs.ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, []string{"lastName", "email", "number", "companyName"}, validation.Fields)
}

func TestContactMessage_OptionalFieldsFoldWithFallbacks(t *testing.T) {
	m := testMailer()

	msg, err := m.contactMessage(ContactInquiry{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		Number:      "+1 555 0100",
		CompanyName: "Acme",
		Industry:    "Retail",
	})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	_, err = msg.WriteTo(buf)
	require.NoError(t, err)

	body := buf.String()
	require.Contains(t, body, "Industry: Retail")
	require.Contains(t, body, "Country: N/A")
	require.Contains(t, body, "No message provided.")
}

func TestCareerMessage_BlankJobTitleFallsBackToGenericSubject(t *testing.T) {
	m := testMailer()

	application := CareerApplication{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		JobTitle: "   ",
		Resume:   newFileHeader(t, "resume", "resume.pdf", 512),
	}

	msg, err := m.careerMessage(application)
	require.NoError(t, err)

	subjects := msg.GetGenHeader(mail.HeaderSubject)
	require.Len(t, subjects, 1)
	require.Contains(t, subjects[0], "New Career Application")
}

func TestCareerApplicationClean(t *testing.T) {
	application := CareerApplication{
		Name:     "  Jane  Doe ",
		Email:    " jane@example.com ",
		Phone:    "+1 555 0100",
		JobTitle: "   ",
	}

	application.Clean()

	require.Equal(t, "Jane Doe", application.Name)
	require.Equal(t, "jane@example.com", application.Email)
	require.Empty(t, application.JobTitle)
}

func TestContactInquiryClean(t *testing.T) {
	inquiry := ContactInquiry{
		FirstName:   " Jane ",
		LastName:    "Doe",
		CompanyName: "Acme  Corp",
		Message:     "line one\n\nline two",
	}

	inquiry.Clean()

	require.Equal(t, "Jane", inquiry.FirstName)
	require.Equal(t, "Acme Corp", inquiry.CompanyName)
	require.Equal(t, "line one\n\nline two", inquiry.Message)
}

func TestCareerApplicationMissing(t *testing.T) {
	require.Equal(t,
		[]string{"name", "email", "phone", "resume"},
		CareerApplication{}.Missing(),
	)
}
