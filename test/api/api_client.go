/*
Copyright 2026 the QAP-PetFriends Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/Skifchik666/QAP-PetFriends/pkg/constants"
)

type APIClient struct {
	baseURL   string
	client    *http.Client
	config    *TestConfig
	endpoints *Endpoints
	logger    logr.Logger
	contract  *ContractValidator
}

// Ensure the client satisfies the interface fixtures are written against.
var _ PetFriendsAPI = &APIClient{}

// Option customises a client.
type Option func(*APIClient)

// WithLogger sets where request traces and errors are logged.
func WithLogger(logger logr.Logger) Option {
	return func(c *APIClient) {
		c.logger = logger
	}
}

// WithHTTPClient overrides the client built from the configuration.
func WithHTTPClient(client *http.Client) Option {
	return func(c *APIClient) {
		c.client = client
	}
}

// WithContractValidator checks every response against the API description.
func WithContractValidator(validator *ContractValidator) Option {
	return func(c *APIClient) {
		c.contract = validator
	}
}

// NewAPIClientWithConfig creates a client for config.BaseURL.  When the
// configuration asks for contract validation and no validator is given one is
// loaded from the embedded API description.
func NewAPIClientWithConfig(config *TestConfig, options ...Option) (*APIClient, error) {
	c := &APIClient{
		baseURL:   strings.TrimSuffix(config.BaseURL, "/"),
		client:    NewHTTPClient(config),
		config:    config,
		endpoints: NewEndpoints(),
		logger:    logr.Discard(),
	}

	for _, o := range options {
		o(c)
	}

	if config.ValidateContract && c.contract == nil {
		validator, err := NewContractValidator(context.Background())
		if err != nil {
			return nil, err
		}

		c.contract = validator
	}

	return c, nil
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	c.logger.Error(err, context, "method", method, "path", path, "duration", duration, "traceID", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// A fresh trace ID per request lets a failing call be found in service logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value, or ""
// if the value is not a traceparent.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) < 4 {
		return ""
	}

	return parts[1]
}

// request describes a single call.
type request struct {
	method      string
	path        string
	header      http.Header
	body        []byte
	contentType string
}

// doRequest performs the call and normalises the response.  Only failures to
// complete the exchange are returned as errors, any status is a valid result.
//
//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, r request) (*Response, error) {
	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for k, values := range r.header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.VersionString())

	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(r.method, r.path, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(r.method, r.path, duration, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		c.logger.Info("request", "method", r.method, "path", r.path, "status", resp.StatusCode, "duration", duration, "traceID", extractTraceID(traceParent))
	}

	if c.config.LogResponses && len(respBody) > 0 {
		c.logger.Info("response body", "method", r.method, "path", r.path, "body", string(respBody))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       map[string]any{},
		Raw:        respBody,
		TraceID:    extractTraceID(traceParent),
	}

	if err := decodeBody(resp.Header.Get("Content-Type"), respBody, result); err != nil {
		c.logError(r.method, r.path, duration, traceParent, err, "decoding response body")
		return nil, err
	}

	if c.contract != nil {
		if err := c.contract.ValidateResponse(ctx, req, result); err != nil {
			c.logError(r.method, r.path, duration, traceParent, err, "contract violation")
			return nil, err
		}
	}

	return result, nil
}

// decodeBody fills in the body map when the response is a JSON object.
// Anything else, e.g. an HTML error page, leaves the map empty.
func decodeBody(contentType string, data []byte, result *Response) error {
	mediaType, _, _ := mime.ParseMediaType(contentType)

	trimmed := bytes.TrimSpace(data)

	if mediaType != "application/json" {
		// Some deployments serve JSON as text/html, be lenient when it parses.
		if len(trimmed) > 0 && trimmed[0] == '{' {
			_ = json.Unmarshal(trimmed, &result.Body)
		}

		return nil
	}

	if len(trimmed) == 0 || trimmed[0] != '{' {
		if len(trimmed) == 0 || json.Valid(trimmed) {
			return nil
		}

		return fmt.Errorf("%w: status %d (trace ID: %s)", ErrMalformedBody, result.StatusCode, result.TraceID)
	}

	if err := json.Unmarshal(trimmed, &result.Body); err != nil {
		return fmt.Errorf("%w: status %d (trace ID: %s): %w", ErrMalformedBody, result.StatusCode, result.TraceID, err)
	}

	return nil
}

func authHeader(authKey string) http.Header {
	h := http.Header{}
	h.Set(constants.AuthKeyHeader, authKey)

	return h
}

func petForm(pet PetInput) url.Values {
	return url.Values{
		"name":        []string{pet.Name},
		"animal_type": []string{pet.AnimalType},
		"age":         []string{pet.Age},
	}
}

// photoContentType guesses from the extension, then from the content.
func photoContentType(path string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}

	return http.DetectContentType(data)
}

// multipartBody encodes the form fields in a stable order followed by the photo.
func multipartBody(fields url.Values, order []string, photoPath string) ([]byte, string, error) {
	data, err := os.ReadFile(photoPath)
	if err != nil {
		return nil, "", fmt.Errorf("reading photo: %w", err)
	}

	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	for _, name := range order {
		if err := w.WriteField(name, fields.Get(name)); err != nil {
			return nil, "", fmt.Errorf("writing field %s: %w", name, err)
		}
	}

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pet_photo"; filename=%q`, filepath.Base(photoPath)))
	h.Set("Content-Type", photoContentType(photoPath, data))

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("creating photo part: %w", err)
	}

	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("writing photo part: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

// GetAPIKey requests an auth key.  Bad credentials yield a 403, not an error.
func (c *APIClient) GetAPIKey(ctx context.Context, email, password string) (*Response, error) {
	h := http.Header{}
	h.Set(constants.EmailHeader, email)
	h.Set(constants.PasswordHeader, password)

	resp, err := c.doRequest(ctx, request{
		method: http.MethodGet,
		path:   c.endpoints.GetAPIKey(),
		header: h,
	})
	if err != nil {
		return nil, fmt.Errorf("getting api key: %w", err)
	}

	return resp, nil
}

// GetListOfPets lists pets in the given scope.
func (c *APIClient) GetListOfPets(ctx context.Context, authKey string, filter Filter) (*Response, error) {
	path, err := c.endpoints.ListPets(filter)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, request{
		method: http.MethodGet,
		path:   path,
		header: authHeader(authKey),
	})
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}

	return resp, nil
}

// AddNewPet creates a pet with a photo read from photoPath.  The file is sent
// whatever it contains, it is up to the service to reject or degrade it.
func (c *APIClient) AddNewPet(ctx context.Context, authKey string, pet PetInput, photoPath string) (*Response, error) {
	body, contentType, err := multipartBody(petForm(pet), []string{"name", "animal_type", "age"}, photoPath)
	if err != nil {
		return nil, fmt.Errorf("adding pet: %w", err)
	}

	resp, err := c.doRequest(ctx, request{
		method:      http.MethodPost,
		path:        c.endpoints.CreatePet(),
		header:      authHeader(authKey),
		body:        body,
		contentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("adding pet: %w", err)
	}

	return resp, nil
}

// AddNewPetWithoutPhoto creates a pet with no photo.
func (c *APIClient) AddNewPetWithoutPhoto(ctx context.Context, authKey string, pet PetInput) (*Response, error) {
	resp, err := c.doRequest(ctx, request{
		method:      http.MethodPost,
		path:        c.endpoints.CreatePetSimple(),
		header:      authHeader(authKey),
		body:        []byte(petForm(pet).Encode()),
		contentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		return nil, fmt.Errorf("adding pet without photo: %w", err)
	}

	return resp, nil
}

// AddPhotoOfPet attaches a photo to an existing pet.
func (c *APIClient) AddPhotoOfPet(ctx context.Context, authKey, petID, photoPath string) (*Response, error) {
	path, err := c.endpoints.SetPetPhoto(petID)
	if err != nil {
		return nil, err
	}

	body, contentType, err := multipartBody(nil, nil, photoPath)
	if err != nil {
		return nil, fmt.Errorf("adding photo to pet %s: %w", petID, err)
	}

	resp, err := c.doRequest(ctx, request{
		method:      http.MethodPost,
		path:        path,
		header:      authHeader(authKey),
		body:        body,
		contentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("adding photo to pet %s: %w", petID, err)
	}

	return resp, nil
}

// UpdatePetInfo overwrites the mutable fields of a pet.
func (c *APIClient) UpdatePetInfo(ctx context.Context, authKey, petID string, pet PetInput) (*Response, error) {
	path, err := c.endpoints.UpdatePet(petID)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, request{
		method:      http.MethodPut,
		path:        path,
		header:      authHeader(authKey),
		body:        []byte(petForm(pet).Encode()),
		contentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		return nil, fmt.Errorf("updating pet %s: %w", petID, err)
	}

	return resp, nil
}

// DeletePet removes a pet.  What a repeated delete returns is up to the service.
func (c *APIClient) DeletePet(ctx context.Context, authKey, petID string) (*Response, error) {
	path, err := c.endpoints.DeletePet(petID)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, request{
		method: http.MethodDelete,
		path:   path,
		header: authHeader(authKey),
	})
	if err != nil {
		return nil, fmt.Errorf("deleting pet %s: %w", petID, err)
	}

	return resp, nil
}
