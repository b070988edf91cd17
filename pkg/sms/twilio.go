package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Twilio sends messages through the Twilio REST API: an authenticated
// form-encoded POST to the account's Messages endpoint.
type Twilio struct {
	AccountSID string
	AuthToken  string
	From       string
	BaseURL    string // overridable for tests
	HTTPClient *http.Client
}

func NewTwilio(accountSID, authToken, from string) *Twilio {
	return &Twilio{
		AccountSID: accountSID,
		AuthToken:  authToken,
		From:       from,
		BaseURL:    "https://api.twilio.com",
		HTTPClient: http.DefaultClient,
	}
}

func (t *Twilio) Send(ctx context.Context, to, body string) (Result, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.BaseURL, t.AccountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.From)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, err
	}
	req.SetBasicAuth(t.AccountSID, t.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}
	res := Result{StatusCode: resp.StatusCode, Body: string(b)}
	if resp.StatusCode >= 400 {
		return res, fmt.Errorf("provider rejected message: status %d", resp.StatusCode)
	}
	return res, nil
}

var _ Gateway = (*Twilio)(nil)
