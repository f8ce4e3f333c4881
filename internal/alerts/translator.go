package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	openAIAPIURL = "https://api.openai.com/v1/chat/completions"
	openAIModel  = "gpt-4o"
)

// sqlPrompt pins the table vocabulary the model translates against, with
// worked examples. The model must answer with a single SELECT statement.
const sqlPrompt = `You translate surveillance alert rules written in natural language into a single SQL SELECT statement.

Tables:
  objects_new(object_name, video_name, x1, y1, x2, y2, color, proximity, sec)
    - one row per bounding-box detection; proximity is one of: near, middle, far
  features_new(video_name, sec, object_name, description, color1, color2, size, orientation, type)
    - one row per described entity at a timestamp
  scenarios_new(video_name, environment_type, description, weather, time_of_day, terrain, crowd_level, lighting)
    - one row per video scene description

Examples:
  Alert: a person appears close to the camera
  SQL: SELECT * FROM objects_new WHERE object_name = 'person' AND proximity = 'near';

  Alert: red cars in the video
  SQL: SELECT * FROM objects_new WHERE object_name = 'car' AND color = 'red';

  Alert: someone wearing blue clothing at night
  SQL: SELECT f.* FROM features_new f JOIN scenarios_new s ON f.video_name = s.video_name WHERE f.color1 = 'blue' AND s.time_of_day = 'night';

Answer with the SQL statement only, no explanation and no code fences.`

// Translator turns free-text alert rules into SQL through the OpenAI chat
// completions API.
type Translator struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

func NewTranslator(apiKey string) *Translator {
	return &Translator{
		apiKey: apiKey,
		apiURL: openAIAPIURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type openAIRequest struct {
	Model    string          `json:"model"`
	Messages []openAIMessage `json:"messages"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Translate maps one alert text to one SQL statement.
func (t *Translator) Translate(ctx context.Context, alertText string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not configured")
	}

	reqBody := openAIRequest{
		Model: openAIModel,
		Messages: []openAIMessage{
			{Role: "system", Content: sqlPrompt},
			{Role: "user", Content: fmt.Sprintf("Alert: %s\nSQL:", alertText)},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", t.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var openAIResp openAIResponse
	if err := json.Unmarshal(body, &openAIResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if openAIResp.Error != nil {
		return "", fmt.Errorf("OpenAI API error: %s", openAIResp.Error.Message)
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return cleanSQL(openAIResp.Choices[0].Message.Content), nil
}

// cleanSQL strips the code fences models sometimes wrap answers in.
func cleanSQL(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```sql")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
