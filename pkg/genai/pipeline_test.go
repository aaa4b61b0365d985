package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGemini replays canned candidate texts, one per generateContent call.
type fakeGemini struct {
	replies []string
	calls   int
}

func (f *fakeGemini) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if f.calls >= len(f.replies) {
			http.Error(w, "unexpected call", http.StatusInternalServerError)
			return
		}
		reply := f.replies[f.calls]
		f.calls++

		res := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]interface{}{{"text": reply}},
					},
				},
			},
		}
		json.NewEncoder(w).Encode(res)
	}
}

func newTestPipeline(t *testing.T, replies ...string) (*Pipeline, *fakeGemini) {
	t.Helper()
	fake := &fakeGemini{replies: replies}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	client := NewClient("test-key").WithBaseURL(srv.URL)
	return NewPipeline(client), fake
}

const passingAudit = `{
	"isValid": true,
	"confidenceScore": 0.93,
	"consistencyChecks": {"sameVehicle": true, "realPhotos": true, "noEditing": true},
	"inconsistencies": [],
	"fraudIndicators": []
}`

func TestRunHappyPath(t *testing.T) {
	extraction := `{
		"make": "Toyota", "model": "Supra", "year": 1998,
		"price": 450000000, "mileage": 89000,
		"fuelType": "gasoline", "transmission": "manual",
		"bodyType": "coupe", "color": "red", "condition": "used",
		"description": "Clean example."
	}`
	pipeline, fake := newTestPipeline(t, passingAudit, extraction)

	res, err := pipeline.Run(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, res.Validation)
	require.NotNil(t, res.Attributes)

	assert.True(t, res.Validation.IsValid)
	assert.InDelta(t, 0.93, res.Validation.ConfidenceScore, 0.001)
	assert.Equal(t, "Toyota", res.Attributes.Make)
	assert.Equal(t, "Supra", res.Attributes.CarModel)
	assert.Equal(t, FlexInt64(1998), res.Attributes.Year)
	assert.Equal(t, FlexInt64(450000000), res.Attributes.Price)
	assert.Equal(t, 2, fake.calls)
}

func TestRunStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + passingAudit + "\n```"
	extraction := "```json\n{\"make\": \"Honda\", \"model\": \"Jazz\", \"year\": 2019}\n```"
	pipeline, _ := newTestPipeline(t, fenced, extraction)

	res, err := pipeline.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Honda", res.Attributes.Make)
	assert.Equal(t, FlexInt64(2019), res.Attributes.Year)
}

func TestRunFailedAuditSkipsExtraction(t *testing.T) {
	failing := `{
		"isValid": false,
		"confidenceScore": 0.31,
		"consistencyChecks": {"sameVehicle": false, "realPhotos": true, "noEditing": true},
		"inconsistencies": ["different wheels between photos"],
		"fraudIndicators": ["stock photo detected"]
	}`
	pipeline, fake := newTestPipeline(t, failing)

	res, err := pipeline.Run(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, res.Validation)

	assert.False(t, res.Validation.IsValid)
	assert.Nil(t, res.Attributes)
	assert.Equal(t, []string{"different wheels between photos"}, res.Validation.Inconsistencies)
	// Stage two must not run after a failed audit.
	assert.Equal(t, 1, fake.calls)
}

func TestRunMalformedAuditFailsClosed(t *testing.T) {
	pipeline, fake := newTestPipeline(t, "The photos look fine to me!")

	res, err := pipeline.Run(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "validation stage")
	assert.Equal(t, 1, fake.calls)
}

func TestRunMalformedExtraction(t *testing.T) {
	pipeline, _ := newTestPipeline(t, passingAudit, "not json")

	_, err := pipeline.Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "extraction stage")
}

func TestRunMissingAPIKey(t *testing.T) {
	pipeline := NewPipeline(NewClient(""))

	_, err := pipeline.Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestFlexInt64Coercion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want FlexInt64
	}{
		{name: "plain number", raw: `123`, want: 123},
		{name: "quoted number", raw: `"2015"`, want: 2015},
		{name: "quoted float", raw: `"45000.7"`, want: 45000},
		{name: "float", raw: `1999.0`, want: 1999},
		{name: "null", raw: `null`, want: 0},
		{name: "non-numeric string", raw: `"unknown"`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt64
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &f))
			assert.Equal(t, tt.want, f)
		})
	}
}
