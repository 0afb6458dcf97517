package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

var otpTemplate = template.Must(template.New("otp").Parse(`
<div style="font-family:sans-serif;max-width:480px;margin:auto">
  <h2>Password reset code</h2>
  <p>Use this one-time code to reset your password. It expires in {{.ExpiresMinutes}} minutes.</p>
  <p style="font-size:28px;letter-spacing:6px;font-weight:bold">{{.Code}}</p>
  <p>If you did not request this, ignore this email.</p>
</div>`))

type OtpEmailData struct {
	Code           string
	ExpiresMinutes int
}

// SendOtpEmail mails a reset code (async so the response is not delayed).
func SendOtpEmail(to string, data OtpEmailData) {
	go func() {
		var body bytes.Buffer
		if err := otpTemplate.Execute(&body, data); err != nil {
			log.Printf("Failed to render OTP email: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Your password reset code")
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Failed to send OTP email to %s: %v", to, err)
		}
	}()
}
