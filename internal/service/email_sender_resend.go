package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resendlabs/resend-go"
)

// ResendEmailSender delivers verification and reset links through the
// Resend API.
type ResendEmailSender struct {
	Client     *resend.Client
	From       string
	AppBaseURL string
	VerifyPath string
	ResetPath  string
}

// NewResendEmailSender returns nil when the API key or sender address is
// missing; callers wire a nil EmailSender and registration proceeds
// without outbound mail instead of failing after the user row exists.
func NewResendEmailSender(apiKey string, from string, appBaseURL string) *ResendEmailSender {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return nil
	}
	return &ResendEmailSender{
		Client:     resend.NewClient(apiKey),
		From:       from,
		AppBaseURL: strings.TrimRight(appBaseURL, "/"),
		VerifyPath: "/verify-email",
		ResetPath:  "/reset-password",
	}
}

func (s *ResendEmailSender) SendVerificationEmail(ctx context.Context, email string, token string) error {
	link := s.buildURL(s.VerifyPath, token)
	subject := "Verify your email"
	html := fmt.Sprintf("<p>Click to verify your email:</p><p><a href=\"%s\">Verify Email</a></p>", link)
	text := fmt.Sprintf("Verify your email: %s", link)
	return s.send(ctx, email, subject, html, text)
}

func (s *ResendEmailSender) SendPasswordResetEmail(ctx context.Context, email string, token string) error {
	link := s.buildURL(s.ResetPath, token)
	subject := "Reset your password"
	html := fmt.Sprintf("<p>Click to reset your password:</p><p><a href=\"%s\">Reset Password</a></p>", link)
	text := fmt.Sprintf("Reset your password: %s", link)
	return s.send(ctx, email, subject, html, text)
}

func (s *ResendEmailSender) buildURL(path string, token string) string {
	base := strings.TrimRight(s.AppBaseURL, "/")
	if base == "" {
		return token
	}
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s%s?token=%s", base, path, token)
}

func (s *ResendEmailSender) send(ctx context.Context, to string, subject string, html string, text string) error {
	if s.Client == nil {
		return errors.New("email sender not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.Client.Emails.Send(&resend.SendEmailRequest{
		From:    s.From,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	})
	return err
}
