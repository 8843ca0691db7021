// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) GenerateCropNotes(r NotesRequest) (string, error) {
	type chatReq struct {
		Model       string              `json:"model"`
		Messages    []map[string]string `json:"messages"`
		Temperature float64             `json:"temperature"`
		MaxTokens   int                 `json:"max_tokens"`
	}
	reqBody := chatReq{
		Model: c.model,
		Messages: []map[string]string{
			{"role": "system", "content": "You are an agricultural expert assistant helping farmers track and manage their crops. Provide practical, concise guidance."},
			{"role": "user", "content": renderNotesPrompt(r)},
		},
		Temperature: 0.7,
		MaxTokens:   300,
	}

	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

func renderNotesPrompt(r NotesRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate concise, practical farming notes for a crop with the following details:\n- Crop Name: %s\n", r.CropName)
	if r.Variety != "" {
		fmt.Fprintf(&b, "- Variety: %s\n", r.Variety)
	}
	if r.Stage != "" {
		fmt.Fprintf(&b, "- Growth Stage: %s\n", r.Stage)
	}
	fmt.Fprintf(&b, "- Current Status: %s\n", r.Status)
	b.WriteString(`
Provide 2-3 actionable recommendations or observations specific to this crop's current status. Focus on:
- What to monitor or watch for
- Recommended actions or care tips
- Timeline expectations or next steps

Keep the response concise (100-150 words) and practical for farmers.`)
	return b.String()
}
