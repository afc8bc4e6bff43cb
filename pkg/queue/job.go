package queue

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JobType is the discriminant tag carried by every job record on the wire.
type JobType string

const (
	JobTypeWelcomeEmail JobType = "welcome_email"
)

// Job is a single variant of the job record union.
// Every variant serializes its own tag into the "type" field.
type Job interface {
	JobType() JobType
	JobID() string
}

// record is implemented by variants that can be decoded from the wire.
type record interface {
	Job
	validate() error
}

// WelcomeEmail asks the worker to greet a newly created employee.
type WelcomeEmail struct {
	ID           string            `json:"id,omitempty"`
	To           string            `json:"to"`
	Subject      string            `json:"subject,omitempty"`
	TemplateData map[string]string `json:"templateData,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// NewWelcomeEmail builds a welcome email job stamped with a fresh ID and creation time.
func NewWelcomeEmail(to, subject string, data map[string]string) WelcomeEmail {
	return WelcomeEmail{
		ID:           uuid.NewString(),
		To:           to,
		Subject:      subject,
		TemplateData: data,
		CreatedAt:    time.Now().UTC(),
	}
}

func (WelcomeEmail) JobType() JobType { return JobTypeWelcomeEmail }

func (j WelcomeEmail) JobID() string { return j.ID }

// MarshalJSON writes the record together with its type tag.
func (j WelcomeEmail) MarshalJSON() ([]byte, error) {
	type alias WelcomeEmail
	return json.Marshal(struct {
		Type JobType `json:"type"`
		alias
	}{
		Type:  JobTypeWelcomeEmail,
		alias: alias(j),
	})
}

func (j WelcomeEmail) validate() error {
	if strings.TrimSpace(j.To) == "" {
		return fmt.Errorf("%w: welcome_email requires a recipient", ErrMalformedRecord)
	}
	return nil
}

// decoders maps each known tag to its variant decoder.
var decoders = map[JobType]func([]byte) (Job, error){
	JobTypeWelcomeEmail: decodeRecord[WelcomeEmail],
}

func decodeRecord[J record](data []byte) (Job, error) {
	var j J
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if err := j.validate(); err != nil {
		return nil, err
	}
	return j, nil
}

// Encode serializes a job record into its wire form.
func Encode(job Job) ([]byte, error) {
	if job == nil {
		return nil, ErrJobNil
	}
	if _, ok := decoders[job.JobType()]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownJobType, job.JobType())
	}
	data, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return data, nil
}

// Decode parses a wire payload into the variant named by its type tag.
// It fails closed: payloads without a tag are malformed and unknown tags are rejected.
func Decode(data []byte) (Job, error) {
	var head struct {
		Type JobType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if head.Type == "" {
		return nil, fmt.Errorf("%w: missing type tag", ErrMalformedRecord)
	}

	decode, ok := decoders[head.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownJobType, head.Type)
	}
	return decode(data)
}
