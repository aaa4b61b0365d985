package blobstore

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// BlobStore is the asset-cleanup surface the message service depends on.
// Upload happens client-side; the backend only ever destroys orphaned assets.
type BlobStore interface {
	Destroy(ctx context.Context, publicID string) error
}

// CloudinaryStore talks to the Cloudinary admin destroy endpoint using a
// signed request.
type CloudinaryStore struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) *CloudinaryStore {
	return &CloudinaryStore{
		cloudName:  cloudName,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *CloudinaryStore) sign(publicID string, timestamp int64) string {
	payload := fmt.Sprintf("public_id=%s&timestamp=%d%s", publicID, timestamp, s.apiSecret)
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}

func (s *CloudinaryStore) Destroy(ctx context.Context, publicID string) error {
	if s.cloudName == "" || s.apiKey == "" || s.apiSecret == "" {
		return errors.New("cloudinary credentials are not configured")
	}

	timestamp := time.Now().Unix()

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", strconv.FormatInt(timestamp, 10))
	form.Set("api_key", s.apiKey)
	form.Set("signature", s.sign(publicID, timestamp))

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/destroy", s.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("cloudinary destroy failed, code %d, body %s", res.StatusCode, string(body))
	}

	var parsed struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return err
	}
	if parsed.Result != "ok" && parsed.Result != "not found" {
		return fmt.Errorf("cloudinary destroy result: %s", parsed.Result)
	}
	return nil
}
