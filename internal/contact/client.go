package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultEndpoint = "https://api.web3forms.com/submit"

type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Client relays contact-form submissions to the third-party form-mail API.
type Client struct {
	accessKey string
	endpoint  string
}

func NewClient() *Client {
	endpoint := os.Getenv("CONTACT_API_URL")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &Client{
		accessKey: os.Getenv("CONTACT_API_KEY"),
		endpoint:  endpoint,
	}
}

func (c *Client) Send(ctx context.Context, msg Message) error {
	if c.accessKey == "" {
		return errors.New("missing CONTACT_API_KEY")
	}

	payload := map[string]string{
		"access_key": c.accessKey,
		"name":       msg.Name,
		"email":      msg.Email,
		"subject":    msg.Subject,
		"message":    msg.Message,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("mail api error: %s", string(raw))
	}

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	if !result.Success {
		return errors.New("mail api rejected the message")
	}

	return nil
}
