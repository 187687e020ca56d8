// Package notify gửi email thông báo khi có yêu cầu dịch vụ mới.
package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/zougmar/hassan-elec/config"
	"github.com/zougmar/hassan-elec/internal/logger"
	"github.com/zougmar/hassan-elec/internal/utility"
)

// RequestSummary là các field của yêu cầu dịch vụ được đưa vào email
type RequestSummary struct {
	ID          string
	Name        string
	Phone       string
	Email       string
	Address     string
	ServiceType string
	Message     string
	Image       string
}

var requestTemplate = template.Must(template.New("request").Parse(`<h2>New service request</h2>
<table cellpadding="4">
<tr><td><b>Name</b></td><td>{{.Name}}</td></tr>
<tr><td><b>Phone</b></td><td>{{.Phone}}</td></tr>
<tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
<tr><td><b>Address</b></td><td>{{.Address}}</td></tr>
<tr><td><b>Service</b></td><td>{{.ServiceType}}</td></tr>
{{if .Message}}<tr><td><b>Message</b></td><td>{{.Message}}</td></tr>{{end}}
{{if .Image}}<tr><td><b>Image</b></td><td><a href="{{.Image}}">{{.Image}}</a></td></tr>{{end}}
</table>
<p style="color:#888">Request id: {{.ID}}</p>`))

// Mailer gửi email qua SMTP. Mailer nil hoặc chưa cấu hình thì bỏ qua.
type Mailer struct {
	from string
	to   string
	send func(m ...*gomail.Message) error
}

// NewMailer tạo mailer từ cấu hình. Thiếu SMTP_HOST hoặc NOTIFY_EMAIL thì trả về nil.
func NewMailer(cfg *config.Configuration) *Mailer {
	if cfg.SMTPHost == "" || cfg.NotifyEmail == "" {
		return nil
	}
	from := cfg.MailFrom
	if from == "" {
		from = cfg.SMTPUsername
	}
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	return &Mailer{from: from, to: cfg.NotifyEmail, send: dialer.DialAndSend}
}

// buildRequestMessage dựng email cho yêu cầu dịch vụ
func (m *Mailer) buildRequestMessage(req RequestSummary) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := requestTemplate.Execute(&body, req); err != nil {
		return nil, fmt.Errorf("render request email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	if req.Email != "" {
		msg.SetHeader("Reply-To", req.Email)
	}
	msg.SetHeader("Subject", fmt.Sprintf("New service request: %s (%s)", req.ServiceType, req.Name))
	msg.SetBody("text/html", body.String())
	return msg, nil
}

// SendNewRequest gửi email đồng bộ
func (m *Mailer) SendNewRequest(req RequestSummary) error {
	msg, err := m.buildRequestMessage(req)
	if err != nil {
		return err
	}
	return m.send(msg)
}

// NotifyNewRequest gửi email trong goroutine có recover, lỗi chỉ được log
func (m *Mailer) NotifyNewRequest(req RequestSummary) {
	if m == nil {
		return
	}
	utility.GoProtect("notify.request", func() {
		log := logger.WithModule("notify").WithField("request_id", req.ID)
		if err := m.SendNewRequest(req); err != nil {
			log.WithError(err).Warn("Failed to send new request email")
			return
		}
		log.Info("New request email sent")
	})
}
