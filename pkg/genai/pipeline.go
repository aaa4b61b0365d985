package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"automart-be/internal/constant"
)

// ErrMalformedResponse marks a model reply that could not be decoded into the
// expected JSON shape. Stage one fails closed on it.
var ErrMalformedResponse = errors.New("malformed upstream response")

// ConsistencyChecks is the per-category verdict of the audit stage.
type ConsistencyChecks struct {
	SameVehicle bool `json:"sameVehicle"`
	RealPhotos  bool `json:"realPhotos"`
	NoEditing   bool `json:"noEditing"`
}

// ValidationResult is the stage-one verdict.
type ValidationResult struct {
	IsValid           bool              `json:"isValid"`
	ConfidenceScore   float64           `json:"confidenceScore"`
	ConsistencyChecks ConsistencyChecks `json:"consistencyChecks"`
	Inconsistencies   []string          `json:"inconsistencies"`
	FraudIndicators   []string          `json:"fraudIndicators"`
}

// FlexInt64 decodes a JSON number or numeric string. The model occasionally
// quotes numbers; the declared type wins.
type FlexInt64 int64

func (f *FlexInt64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexInt64(n)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt64(n)
	return nil
}

// ExtractedAttributes is the stage-two structured record.
type ExtractedAttributes struct {
	Make         string    `json:"make"`
	CarModel     string    `json:"model"`
	Year         FlexInt64 `json:"year"`
	Price        FlexInt64 `json:"price"`
	Mileage      FlexInt64 `json:"mileage"`
	FuelType     string    `json:"fuelType"`
	Transmission string    `json:"transmission"`
	BodyType     string    `json:"bodyType"`
	Color        string    `json:"color"`
	Condition    string    `json:"condition"`
	Description  string    `json:"description"`
}

// PipelineResult carries the audit verdict and, only when the audit passed,
// the extracted attributes.
type PipelineResult struct {
	Validation *ValidationResult
	Attributes *ExtractedAttributes
}

// Pipeline runs the two-stage listing extraction: forensic audit, then
// attribute extraction. Strictly sequential, no retries.
type Pipeline struct {
	client *Client
}

func NewPipeline(client *Client) *Pipeline {
	return &Pipeline{client: client}
}

// Run audits the images and, if they pass, extracts vehicle attributes.
// A malformed stage-one reply fails closed: the error wraps
// ErrMalformedResponse and stage two is never invoked.
func (p *Pipeline) Run(ctx context.Context, images []Image) (*PipelineResult, error) {
	// Stage 1: forensic audit
	raw, err := p.client.GenerateContent(ctx, constant.ImageAuditPromptV1, images)
	if err != nil {
		return nil, fmt.Errorf("validation stage: %w", err)
	}

	var validation ValidationResult
	if err := decodeStrict(raw, &validation); err != nil {
		return nil, fmt.Errorf("validation stage: %w", err)
	}

	if !validation.IsValid {
		return &PipelineResult{Validation: &validation}, nil
	}

	// Stage 2: attribute extraction, only after a passing audit
	raw, err = p.client.GenerateContent(ctx, constant.AttributeExtractionPromptV1, images)
	if err != nil {
		return nil, fmt.Errorf("extraction stage: %w", err)
	}

	var attributes ExtractedAttributes
	if err := decodeStrict(raw, &attributes); err != nil {
		return nil, fmt.Errorf("extraction stage: %w", err)
	}

	return &PipelineResult{
		Validation: &validation,
		Attributes: &attributes,
	}, nil
}

// decodeStrict strips markdown code fences and unmarshals into the expected
// shape, mapping any parse failure to ErrMalformedResponse.
func decodeStrict(raw string, out interface{}) error {
	cleaned := stripCodeFences(raw)
	if err := json.Unmarshal(cleaned, out); err != nil {
		return fmt.Errorf("%w: %v | raw: %s", ErrMalformedResponse, err, string(cleaned))
	}
	return nil
}

func stripCodeFences(raw string) []byte {
	b := []byte(raw)
	b = bytes.TrimSpace(b)
	b = bytes.TrimPrefix(b, []byte("```json"))
	b = bytes.TrimPrefix(b, []byte("```"))
	b = bytes.TrimSuffix(b, []byte("```"))
	return bytes.TrimSpace(b)
}
