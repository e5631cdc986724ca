package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// 必要な資格情報が無い（設定不備のまま送信は試みない）。
var ErrConfigurationMissing = errors.New("missing twilio configuration")

// TwilioConfig はWhatsApp通知に必要な資格情報。
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string // whatsapp:+233...
	ToNumber   string // 店側オペレーターの番号
}

// TwilioNotifier はTwilioのMessagesエンドポイントへWhatsAppメッセージを送る。
type TwilioNotifier struct {
	cfg     TwilioConfig
	client  *http.Client
	baseURL string
}

func NewTwilioNotifier(cfg TwilioConfig) *TwilioNotifier {
	return &TwilioNotifier{
		cfg:     cfg,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://api.twilio.com",
	}
}

// テストからエンドポイントを差し替える。
func (n *TwilioNotifier) WithBaseURL(u string) *TwilioNotifier {
	n.baseURL = strings.TrimRight(u, "/")
	return n
}

func (n *TwilioNotifier) Send(ctx context.Context, p Payload) error {
	if n.cfg.AccountSID == "" || n.cfg.AuthToken == "" || n.cfg.FromNumber == "" || n.cfg.ToNumber == "" {
		return ErrConfigurationMissing
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", n.baseURL, n.cfg.AccountSID)

	form := url.Values{}
	form.Set("From", n.cfg.FromNumber)
	form.Set("To", n.cfg.ToNumber)
	form.Set("Body", fmt.Sprintf("New order placed by %s. Total amount: ₵%.2f", p.CustomerName, p.TotalAmount))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(n.cfg.AccountSID, n.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("twilio rejected message: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
