package helpers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"text/template"
	"time"

	"github.com/artihcus-web/website-backend/config"
	"github.com/artihcus-web/website-backend/errs"
	"github.com/artihcus-web/website-backend/utils"
	"github.com/wneessen/go-mail"
)

const sendTimeout = 10 * time.Second

// The two relay bodies are fixed forms; optional fields fold in with "N/A"
// fallbacks to match what the staff inbox already expects.
var (
	careerTpl = template.Must(template.New("career").Parse(`New Career Application Details:
{{if .JobTitle}}Position applied for: {{.JobTitle}}

{{end}}Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
`))

	contactTpl = template.Must(template.New("contact").Funcs(template.FuncMap{"na": orNA}).Parse(`New Contact Form Submission:

Personal Information:
Full Name: {{.FirstName}} {{.LastName}}
Email: {{.Email}}
Phone: {{.Number}}

Company Information:
Company Name: {{.CompanyName}}
Country: {{na .Country}}
Industry: {{na .Industry}}

Interest:
Services Interested In: {{na .Services}}

Referral Information:
Referred By: {{na .ReferredBy}}
Referred Name: {{na .ReferredName}}

Message:
{{if .Message}}{{.Message}}{{else}}No message provided.{{end}}
`))
)

func orNA(s string) string {
	if len(strings.TrimSpace(s)) < 1 {
		return "N/A"
	}

	return s
}

// CareerApplication is the career form payload. The resume stays an
// in-memory buffer attached to the outbound message and is never persisted.
type CareerApplication struct {
	Name     string
	Email    string
	Phone    string
	JobTitle string
	Resume   *multipart.FileHeader
}

// Clean scrubs the scalar fields the way they arrive from the form: trimmed,
// with internal whitespace runs collapsed.
func (a *CareerApplication) Clean() {
	a.Name = utils.CleanString(a.Name)
	a.Email = utils.CleanString(a.Email)
	a.Phone = utils.CleanString(a.Phone)
	a.JobTitle = utils.CleanString(a.JobTitle)
}

func (a CareerApplication) Missing() []string {
	missing := []string{}

	if len(a.Name) < 1 {
		missing = append(missing, "name")
	}

	if len(a.Email) < 1 {
		missing = append(missing, "email")
	}

	if len(a.Phone) < 1 {
		missing = append(missing, "phone")
	}

	if a.Resume == nil {
		missing = append(missing, "resume")
	}

	return missing
}

// ContactInquiry is the contact form payload; only the first five fields are
// mandatory.
type ContactInquiry struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Number       string `json:"number"`
	CompanyName  string `json:"companyName"`
	Country      string `json:"country"`
	Industry     string `json:"industry"`
	Services     string `json:"services"`
	ReferredBy   string `json:"referredBy"`
	ReferredName string `json:"referredName"`
	Message      string `json:"message"`
}

func (i *ContactInquiry) Clean() {
	i.FirstName = utils.CleanString(i.FirstName)
	i.LastName = utils.CleanString(i.LastName)
	i.Email = utils.CleanString(i.Email)
	i.Number = utils.CleanString(i.Number)
	i.CompanyName = utils.CleanString(i.CompanyName)
	i.Country = utils.CleanString(i.Country)
	i.Industry = utils.CleanString(i.Industry)
	i.Services = utils.CleanString(i.Services)
	i.ReferredBy = utils.CleanString(i.ReferredBy)
	i.ReferredName = utils.CleanString(i.ReferredName)
}

func (i ContactInquiry) Missing() []string {
	missing := []string{}

	if len(i.FirstName) < 1 {
		missing = append(missing, "firstName")
	}

	if len(i.LastName) < 1 {
		missing = append(missing, "lastName")
	}

	if len(i.Email) < 1 {
		missing = append(missing, "email")
	}

	if len(i.Number) < 1 {
		missing = append(missing, "number")
	}

	if len(i.CompanyName) < 1 {
		missing = append(missing, "companyName")
	}

	return missing
}

// MailSender is what the mail controllers depend on.
type MailSender interface {
	SendCareerApplication(ctx context.Context, application CareerApplication) error
	SendContactInquiry(ctx context.Context, inquiry ContactInquiry) error
}

// Mailer relays the two site forms to the internal inbox. Delivery is a
// single synchronous attempt per request: no queue, no retry.
type Mailer struct {
	client  *mail.Client
	cfg     config.EmailConfig
	appName string
}

func NewMailer(client *mail.Client, cfg config.EmailConfig, appName string) *Mailer {
	return &Mailer{client: client, cfg: cfg, appName: appName}
}

func (m *Mailer) SendCareerApplication(ctx context.Context, application CareerApplication) error {
	msg, err := m.careerMessage(application)
	if err != nil {
		return err
	}

	return m.send(ctx, msg)
}

func (m *Mailer) SendContactInquiry(ctx context.Context, inquiry ContactInquiry) error {
	msg, err := m.contactMessage(inquiry)
	if err != nil {
		return err
	}

	return m.send(ctx, msg)
}

func (m *Mailer) careerMessage(application CareerApplication) (*mail.Msg, error) {
	if missing := application.Missing(); len(missing) > 0 {
		return nil, &errs.ValidationError{Fields: missing}
	}

	if application.Resume.Size > MaxUploadBytes {
		return nil, &errs.UploadError{Reason: fmt.Sprintf("Resume exceeds the %d MiB limit.", MaxUploadBytes/(1024*1024))}
	}

	subject := "New Career Application"
	if jobTitle := utils.ToStringPtr(application.JobTitle); jobTitle != nil {
		subject = fmt.Sprintf("Career Application: %s", *jobTitle)
	}

	msg, err := m.newMessage(subject)
	if err != nil {
		return nil, err
	}

	body := &bytes.Buffer{}
	if err := careerTpl.Execute(body, application); err != nil {
		return nil, fmt.Errorf("could not render career email body: %w", err)
	}

	msg.SetBodyString(mail.TypeTextPlain, body.String())

	resume, err := application.Resume.Open()
	if err != nil {
		return nil, &errs.UploadError{Reason: "Could not read uploaded resume."}
	}
	defer resume.Close() //nolint:errcheck

	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, resume); err != nil {
		return nil, &errs.UploadError{Reason: "Could not read uploaded resume."}
	}

	if err := msg.AttachReader(application.Resume.Filename, buf); err != nil {
		return nil, fmt.Errorf("could not attach resume: %w", err)
	}

	return msg, nil
}

func (m *Mailer) contactMessage(inquiry ContactInquiry) (*mail.Msg, error) {
	if missing := inquiry.Missing(); len(missing) > 0 {
		return nil, &errs.ValidationError{Fields: missing}
	}

	msg, err := m.newMessage("New Contact Form Submission")
	if err != nil {
		return nil, err
	}

	body := &bytes.Buffer{}
	if err := contactTpl.Execute(body, inquiry); err != nil {
		return nil, fmt.Errorf("could not render contact email body: %w", err)
	}

	msg.SetBodyString(mail.TypeTextPlain, body.String())

	return msg, nil
}

func (m *Mailer) newMessage(subject string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	msg.SetMessageID()
	msg.SetDate()
	msg.Subject(fmt.Sprintf("%s - %s", subject, m.appName))

	if err := msg.FromFormat(m.appName, m.cfg.From); err != nil {
		return nil, fmt.Errorf("could not set the from email address: %w", err)
	}

	if err := msg.To(m.cfg.To); err != nil {
		return nil, fmt.Errorf("could not set the to email address: %w", err)
	}

	return msg, nil
}

func (m *Mailer) send(ctx context.Context, msg *mail.Msg) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return &errs.MailDeliveryError{Err: err}
	}

	return nil
}
