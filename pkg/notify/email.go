package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mrz1836/postmark"
)

// Config holds email delivery configuration. Both Postmark tokens are
// required for runtime operation; development environments should use
// NewLogSender instead.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL"`
	SupportEmail         string `env:"SUPPORT_EMAIL"`
}

// RecipientResolver maps a tenant ID to a deliverable email address.
// Tenant records live in the storage collaborator, not in this engine.
type RecipientResolver func(ctx context.Context, tenantID uuid.UUID) (address, name string, err error)

type emailSender struct {
	client    *postmark.Client
	config    Config
	recipient RecipientResolver
}

// NewEmailSender creates a Postmark-backed Sender.
func NewEmailSender(cfg Config, recipient RecipientResolver) (Sender, error) {
	if cfg.PostmarkServerToken == "" || cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: postmark tokens are required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if recipient == nil {
		return nil, fmt.Errorf("%w: recipient resolver is required", ErrInvalidConfig)
	}

	return &emailSender{
		client:    postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config:    cfg,
		recipient: recipient,
	}, nil
}

func (s *emailSender) Send(ctx context.Context, tenantID uuid.UUID, tpl Template, params Params) error {
	address, name, err := s.recipient(ctx, tenantID)
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}

	subject, body := renderTemplate(tpl, name, params)

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       s.config.SenderEmail,
		ReplyTo:    s.config.SupportEmail,
		To:         address,
		Subject:    subject,
		Tag:        string(tpl),
		HTMLBody:   body,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrFailedToSend,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}
	return nil
}

// renderTemplate produces the subject/body pair for a template. Copy is kept
// deliberately plain; product-specific templating belongs to the caller that
// wraps this sender.
func renderTemplate(tpl Template, name string, params Params) (subject, body string) {
	greeting := "Hello"
	if name != "" {
		greeting = "Hello " + name
	}

	switch tpl {
	case TemplateTrialStarted:
		subject = "Your trial has started"
		body = fmt.Sprintf("<p>%s,</p><p>Your %s-day trial is now active. Enjoy full access to professional features.</p>",
			greeting, params["days"])
	case TemplateTrialExtended:
		subject = "Your trial has been extended"
		body = fmt.Sprintf("<p>%s,</p><p>We added %s more days to your trial.</p>", greeting, params["days"])
	case TemplateTrialExpiring:
		subject = fmt.Sprintf("Your trial ends in %s days", params["days"])
		body = fmt.Sprintf("<p>%s,</p><p>Your trial ends in %s days. Pick a plan to keep your listings live.</p>",
			greeting, params["days"])
	case TemplateTrialExpired:
		subject = "Your trial has ended"
		body = fmt.Sprintf("<p>%s,</p><p>Your trial has ended and your account is back on its regular plan.</p>", greeting)
	case TemplateQuotaApproach:
		subject = "You are approaching a plan limit"
		body = fmt.Sprintf("<p>%s,</p><p>You have used %s of your %s allowance.</p>",
			greeting, params["usage"], params["dimension"])
	case TemplatePromotionEnded:
		subject = "A promotion on your listing has ended"
		body = fmt.Sprintf("<p>%s,</p><p>The %s promotion has expired.</p>", greeting, params["kind"])
	default:
		subject = "Account update"
		body = fmt.Sprintf("<p>%s,</p><p>There is an update on your account.</p>", greeting)
	}
	return subject, body
}
