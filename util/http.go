package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const APPLICATION_JSON = "application/json"

type HttpResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// SendHttpRequest sends a request through client and reads the whole
// response body. A non-nil body is encoded as JSON.
func SendHttpRequest(client *http.Client, uri, method string, headers map[string]string, body interface{}) (*HttpResponse, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	request, err := http.NewRequest(method, uri, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		request.Header.Set("Content-Type", APPLICATION_JSON)
	}
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	response, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = response.Body.Close()
	}()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &HttpResponse{
		StatusCode: response.StatusCode,
		Headers:    response.Header,
		Body:       responseBody,
	}, nil
}
