// Package udpipe is a Tagger backed by a UDPipe-compatible REST
// service. The service tokenizes, tags and parses the text and answers
// with CoNLL-U inside a JSON envelope.
package udpipe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gveselov/morfa"
)

type Tagger struct {
	name    string
	baseURL string
	model   string
	client  *http.Client
}

// New builds a tagger for one model on the given service. The name is
// what shows up as the tagger identity in disambiguation.
func New(name, baseURL, model string) *Tagger {
	return &Tagger{
		name:    name,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (t *Tagger) Name() string {
	return t.name
}

func (t *Tagger) Tag(ctx context.Context, text string) ([]morfa.Token, error) {
	form := url.Values{}
	form.Set("data", text)
	form.Set("tokenizer", "")
	form.Set("tagger", "")
	form.Set("parser", "")
	if t.model != "" {
		form.Set("model", t.model)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/process", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", morfa.ErrTaggerUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: service answered %s", morfa.ErrTaggerUnavailable, resp.Status)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%w: service answered %s", morfa.ErrTaggerInput, resp.Status)
	}

	var payload struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %s", morfa.ErrTaggerInput, err)
	}

	return Parse(payload.Result, text)
}
