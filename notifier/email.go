package notifier

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/lager/v3"
)

type EmailConfig struct {
	Host     string   `yaml:"host" json:"host"`
	Port     int      `yaml:"port" json:"port"`
	Username string   `yaml:"username" json:"username"`
	Password string   `yaml:"password" json:"password"`
	From     string   `yaml:"from" json:"from"`
	To       []string `yaml:"to" json:"to"`
}

// EmailChannel sends one plain text message per batch over SMTP.
type EmailChannel struct {
	conf   EmailConfig
	clock  func() time.Time
	logger lager.Logger
}

func NewEmailChannel(conf EmailConfig, logger lager.Logger) *EmailChannel {
	if conf.Port == 0 {
		conf.Port = 587
	}
	return &EmailChannel{
		conf:   conf,
		clock:  time.Now,
		logger: logger.Session("email-channel"),
	}
}

func (e *EmailChannel) Name() string { return "email" }

func (e *EmailChannel) Notify(ctx context.Context, alerts []*models.Alert) error {
	addr := net.JoinHostPort(e.conf.Host, strconv.Itoa(e.conf.Port))
	conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, e.conf.Host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer func() { _ = client.Close() }()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err = client.StartTLS(&tls.Config{ServerName: e.conf.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return err
		}
	}
	if e.conf.Username != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			if err = client.Auth(smtp.PlainAuth("", e.conf.Username, e.conf.Password, e.conf.Host)); err != nil {
				return err
			}
		}
	}
	if err = client.Mail(e.conf.From); err != nil {
		return err
	}
	for _, rcpt := range e.conf.To {
		if err = client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("recipient %s: %w", rcpt, err)
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(e.message(alerts)); err != nil {
		_ = w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func (e *EmailChannel) message(alerts []*models.Alert) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", e.conf.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(e.conf.To, ", "))
	fmt.Fprintf(&b, "Subject: [perfmon] %s\r\n", summaryLine(alerts))
	fmt.Fprintf(&b, "Date: %s\r\n", e.clock().UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(strings.ReplaceAll(renderText(alerts, "- "), "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}
