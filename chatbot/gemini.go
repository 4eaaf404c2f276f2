package chatbot

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "net/http"
    "time"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// Completer produces a free-text answer for messages the intent router does
// not handle itself.
type Completer interface {
    Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient calls the Gemini text-completion REST API.
type GeminiClient struct {
    httpClient *http.Client
    endpoint   string
    apiKey     string
}

func NewGeminiClient(apiKey string) *GeminiClient {
    return &GeminiClient{
        httpClient: &http.Client{Timeout: 10 * time.Second},
        endpoint:   geminiEndpoint,
        apiKey:     apiKey,
    }
}

type geminiRequest struct {
    Contents         []geminiContent `json:"contents"`
    GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
    Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
    Text string `json:"text"`
}

type geminiGenConfig struct {
    Temperature     float64 `json:"temperature"`
    TopP            float64 `json:"topP"`
    TopK            int     `json:"topK"`
    MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
    Candidates []struct {
        Content struct {
            Parts []geminiPart `json:"parts"`
        } `json:"content"`
    } `json:"candidates"`
}

// Generate sends the prompt to Gemini and returns the first candidate text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
    body := geminiRequest{
        Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
        GenerationConfig: geminiGenConfig{
            Temperature:     0.7,
            TopP:            0.8,
            TopK:            40,
            MaxOutputTokens: 2048,
        },
    }
    payload, err := json.Marshal(body)
    if err != nil {
        return "", fmt.Errorf("encoding request: %w", err)
    }

    req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"?key="+c.apiKey, bytes.NewReader(payload))
    if err != nil {
        return "", fmt.Errorf("creating request: %w", err)
    }
    req.Header.Set("Content-Type", "application/json")

    resp, err := c.httpClient.Do(req)
    if err != nil {
        return "", fmt.Errorf("executing request: %w", err)
    }
    defer resp.Body.Close()

    if resp.StatusCode != http.StatusOK {
        return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
    }

    var result geminiResponse
    if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
        return "", fmt.Errorf("decoding response: %w", err)
    }

    if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
        return "", fmt.Errorf("empty completion")
    }
    return result.Candidates[0].Content.Parts[0].Text, nil
}
