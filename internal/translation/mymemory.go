package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const myMemoryBaseURL = "https://api.mymemory.translated.net"

// MyMemoryTranslator translates text through the free MyMemory API. It needs
// no credentials, which makes it the default backend for local development.
type MyMemoryTranslator struct {
	email   string
	baseURL string
	client  *http.Client
}

// NewMyMemory creates a MyMemoryTranslator. The email is optional and only
// raises the API's daily free quota.
func NewMyMemory(email string) *MyMemoryTranslator {
	return &MyMemoryTranslator{
		email:   email,
		baseURL: myMemoryBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (t *MyMemoryTranslator) Name() string { return "mymemory" }

func (t *MyMemoryTranslator) Translate(ctx context.Context, req Request) (string, error) {
	source := req.SourceLang
	if source == "" || source == "auto" {
		source = "en"
	}
	langPair := fmt.Sprintf("%s|%s", source, req.TargetLang)

	apiURL := fmt.Sprintf("%s/get?q=%s&langpair=%s",
		t.baseURL,
		url.QueryEscape(req.Text),
		url.QueryEscape(langPair))
	if t.email != "" {
		apiURL += "&de=" + url.QueryEscape(t.email)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("translation request: %w", err)
	}
	defer resp.Body.Close()

	var apiResp struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
		ResponseStatus  int    `json:"responseStatus"`
		ResponseDetails string `json:"responseDetails"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	if apiResp.ResponseStatus != http.StatusOK {
		return "", fmt.Errorf("translation failed (status %d): %s", apiResp.ResponseStatus, apiResp.ResponseDetails)
	}

	return apiResp.ResponseData.TranslatedText, nil
}
