package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResendEmailSender_UnconfiguredReturnsNil(t *testing.T) {
	assert.Nil(t, NewResendEmailSender("", "tours@example.com", "https://example.com"))
	assert.Nil(t, NewResendEmailSender("re_key", "   ", "https://example.com"))
	assert.NotNil(t, NewResendEmailSender("re_key", "tours@example.com", "https://example.com"))
}

func TestResendEmailSenderBuildURL(t *testing.T) {
	sender := NewResendEmailSender("re_key", "tours@example.com", "https://siwatours.example/")

	assert.Equal(t,
		"https://siwatours.example/verify-email?token=abc",
		sender.buildURL(sender.VerifyPath, "abc"))
	assert.Equal(t,
		"https://siwatours.example/reset-password?token=abc",
		sender.buildURL(sender.ResetPath, "abc"))
}
