package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// GoogleProvider talks to the Gemini generateContent endpoint directly over
// HTTP. No streaming: the tutor appends whole turns, so a single response
// body is all we need.
type GoogleProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGoogle(apiKey, model string) *GoogleProvider {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GoogleProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		client:  &http.Client{},
	}
}

// WithBaseURL overrides the API endpoint. Used by tests and proxies.
func (g *GoogleProvider) WithBaseURL(u string) *GoogleProvider {
	g.baseURL = u
	return g
}

func (g *GoogleProvider) Name() string  { return "google" }
func (g *GoogleProvider) Model() string { return g.model }

type geminiRequest struct {
	Contents          []geminiContent  `json:"contents"`
	SystemInstruction *geminiContent   `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenConfig `json:"generationConfig,omitempty"`
}

type geminiGenConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Lower temperature keeps the model closer to the supplied evidence.
const groundedTemperature = 0.5

func (g *GoogleProvider) Generate(ctx context.Context, req Request) (string, error) {
	var contents []geminiContent
	for _, m := range req.History {
		contents = append(contents, geminiContent{
			Role:  string(m.Role),
			Parts: []geminiPart{{Text: m.Content}},
		})
	}

	var final []geminiPart
	for _, p := range req.Parts {
		if p.Data != nil {
			final = append(final, geminiPart{InlineData: &geminiInlineData{
				MIMEType: p.MIMEType,
				Data:     base64.StdEncoding.EncodeToString(p.Data),
			}})
			continue
		}
		final = append(final, geminiPart{Text: p.Text})
	}
	contents = append(contents, geminiContent{Role: "user", Parts: final})

	body := geminiRequest{
		Contents:         contents,
		GenerationConfig: &geminiGenConfig{Temperature: groundedTemperature},
	}
	if req.System != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", &ServiceError{Provider: g.Name(), Err: err}
	}

	apiURL := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", &ServiceError{Provider: g.Name(), Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", &ServiceError{Provider: g.Name(), Err: fmt.Errorf("%s", friendlyTransportError(err))}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ServiceError{Provider: g.Name(), Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &ServiceError{
			Provider: g.Name(),
			Err:      fmt.Errorf("%s", parseAPIError(resp.StatusCode, raw)),
		}
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &ServiceError{Provider: g.Name(), Err: fmt.Errorf("malformed response: %w", err)}
	}
	if len(parsed.Candidates) == 0 {
		// Empty is not an error: the caller decides on a fallback string.
		return "", nil
	}

	var text bytes.Buffer
	for _, p := range parsed.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return text.String(), nil
}
