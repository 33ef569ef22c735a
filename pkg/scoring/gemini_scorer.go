package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ai-training-be/internal/constant"
	"ai-training-be/internal/entity"
)

type GeminiParts struct {
	Text string `json:"text"`
}

type GeminiContent struct {
	Parts []*GeminiParts `json:"parts"`
	Role  string         `json:"role"`
}

type GeminiRequest struct {
	Contents []*GeminiContent `json:"contents"`
}

type GeminiCandidate struct {
	Content *GeminiContent `json:"content"`
}

type GeminiResponse struct {
	Candidates []*GeminiCandidate `json:"candidates"`
}

const (
	RoleUser  = "user"
	RoleModel = "model"

	geminiEndpoint = "https://generativelanguage.googleapis.com/v1/models/gemini-1.5-flash:generateContent"
)

// GeneratedQuestion is one quiz item produced from a document.
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Difficulty    string   `json:"difficulty"`
}

// Scorer wraps the Gemini generateContent endpoint for transcript
// assessment and question generation.
type Scorer struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewScorer(apiKey string) *Scorer {
	return &Scorer{
		apiKey:     apiKey,
		endpoint:   geminiEndpoint,
		httpClient: &http.Client{},
	}
}

func (s *Scorer) generate(ctx context.Context, contents []*GeminiContent) (string, error) {
	payload := GeminiRequest{Contents: contents}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.endpoint, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes GeminiResponse
	err = json.Unmarshal(resBody, &geminiRes)
	if err != nil {
		return "", err
	}

	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

// EvaluateTranscript scores a session transcript and returns the raw
// JSON verdict. The caller owns the timeout via ctx.
func (s *Scorer) EvaluateTranscript(ctx context.Context, transcript []entity.TranscriptTurn) (json.RawMessage, error) {
	transcriptJson, err := json.Marshal(transcript)
	if err != nil {
		return nil, err
	}

	contents := []*GeminiContent{
		{Parts: []*GeminiParts{{Text: constant.AssessmentSystemPromptV1}}, Role: RoleUser},
		{Parts: []*GeminiParts{{Text: "Understood. Send the transcript."}}, Role: RoleModel},
		{Parts: []*GeminiParts{{Text: string(transcriptJson)}}, Role: RoleUser},
	}

	responseText, err := s.generate(ctx, contents)
	if err != nil {
		return nil, err
	}

	cleaned := StripJSONFences([]byte(responseText))

	// Validate it is parseable before caching verbatim.
	var parsed map[string]interface{}
	if err := json.Unmarshal(cleaned, &parsed); err != nil {
		return nil, fmt.Errorf("parse error: %w | raw: %s", err, string(cleaned))
	}

	return json.RawMessage(cleaned), nil
}

// GenerateQuestions produces quiz questions from document content.
func (s *Scorer) GenerateQuestions(ctx context.Context, documentContent string, count int) ([]GeneratedQuestion, error) {
	if count <= 0 {
		count = 5
	}

	prompt := fmt.Sprintf(constant.GenerateQuestionsPromptV1, count, documentContent)
	contents := []*GeminiContent{
		{Parts: []*GeminiParts{{Text: prompt}}, Role: RoleUser},
	}

	responseText, err := s.generate(ctx, contents)
	if err != nil {
		return nil, err
	}

	cleaned := StripJSONFences([]byte(responseText))

	var questions []GeneratedQuestion
	if err := json.Unmarshal(cleaned, &questions); err != nil {
		return nil, fmt.Errorf("parse error: %w | raw: %s", err, string(cleaned))
	}

	return questions, nil
}
