package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevSender is the fallback transport when no SMTP relay or Postmark account
// is configured. Each message becomes an .html body plus a .json envelope in
// dir, and the Delivery response points at the .html file as a preview.
type DevSender struct {
	dir string
	now func() time.Time
}

func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type devEnvelope struct {
	MessageID string    `json:"message_id"`
	SentAt    time.Time `json:"sent_at"`
	SendTo    string    `json:"send_to"`
	Subject   string    `json:"subject"`
	Tag       string    `json:"tag,omitempty"`
	Preview   string    `json:"preview"`
}

func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) (Delivery, error) {
	if err := params.Validate(); err != nil {
		return Delivery{}, err
	}
	if err := ctx.Err(); err != nil {
		return Delivery{}, errors.Join(ErrFailedToSendEmail, err)
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return Delivery{}, fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()
	id := uuid.NewString()
	label := params.Tag
	if label == "" {
		label = params.Subject
	}
	base := filepath.Join(d.dir, fmt.Sprintf("%s_%s_%s", now.Format("2006_01_02_150405"), fileLabel(label), id[:8]))

	env := devEnvelope{
		MessageID: id,
		SentAt:    now.UTC(),
		SendTo:    params.SendTo,
		Subject:   params.Subject,
		Tag:       params.Tag,
		Preview:   base + ".html",
	}
	meta, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return Delivery{}, fmt.Errorf("%w: failed to marshal envelope: %v", ErrFailedToSendEmail, err)
	}

	for path, data := range map[string][]byte{
		base + ".html": []byte(params.BodyHTML),
		base + ".json": meta,
	} {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return Delivery{}, fmt.Errorf("%w: failed to write %s: %v", ErrFailedToSendEmail, filepath.Base(path), err)
		}
	}

	return Delivery{
		MessageID: id,
		Accepted:  []string{params.SendTo},
		Rejected:  []string{},
		Response:  "preview: " + env.Preview,
	}, nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9\-_.]`)

// fileLabel lowercases s, turns spaces into underscores and drops anything
// else that is not filename-safe.
func fileLabel(s string) string {
	s = strings.ReplaceAll(strings.ToLower(s), " ", "_")
	s = unsafeFileChars.ReplaceAllString(s, "")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		return "email"
	}
	return s
}
