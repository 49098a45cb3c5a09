package utils

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// CertificateEvent is posted to the certificate webhook after issuance.
type CertificateEvent struct {
	Event    string    `json:"event"`
	Code     string    `json:"code"`
	UserID   uint      `json:"userId"`
	CourseID uint      `json:"courseId"`
	IssuedAt time.Time `json:"issuedAt"`
}

// WebhookClient posts certificate events to an external endpoint.
type WebhookClient struct {
	client *resty.Client
	url    string
}

func NewWebhookClient(url string) *WebhookClient {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Content-Type", "application/json")
	return &WebhookClient{client: client, url: url}
}

func (w *WebhookClient) Post(ctx context.Context, event CertificateEvent) error {
	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(event).
		Post(w.url)
	if err != nil {
		return errors.Wrap(err, "posting webhook")
	}
	if resp.IsError() {
		return errors.Errorf("webhook responded %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
