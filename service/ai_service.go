package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"tvm-service/domain"
)

// AIService turns an amortization result into a short plain-language
// explanation. Without an OPENAI_API_KEY it stays disabled and falls back to
// a template, so the calculation path never depends on the network.
type AIService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewAIService() *AIService {
	apiKey := os.Getenv("OPENAI_API_KEY")
	enabled := apiKey != ""

	return &AIService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateScheduleExplanation describes an amortization table for a
// non-expert reader.
func (s *AIService) GenerateScheduleExplanation(
	input domain.ScheduleInput,
	result domain.ScheduleResult,
) string {
	if !s.enabled {
		return s.fallbackScheduleExplanation(input, result)
	}

	prompt := fmt.Sprintf(`Explain this loan amortization schedule in plain language.

LOAN:
- Principal: %.2f
- Periodic interest rate: %.4f%%
- Number of payments: %d
- Total interest over the life of the loan: %.2f
- Total amount paid: %.2f

INSTRUCTIONS:
1. Explain how each payment splits between interest and principal, and why the split shifts over time.
2. Mention the total interest cost relative to the principal.
3. Keep it to 3-4 sentences a non-expert can follow.`,
		input.PresentValue, input.Rate*100, input.Periods,
		result.TotalInterest, result.TotalPaid)

	explanation, err := s.callLLM(prompt)
	if err != nil {
		log.Printf("Error calling AI service for schedule explanation: %v", err)
		return s.fallbackScheduleExplanation(input, result)
	}

	return explanation
}

func (s *AIService) callLLM(prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: "gpt-4o-mini",
		Messages: []Message{
			{
				Role:    "system",
				Content: "You are a financial advisor who explains loan amortization clearly and accurately. Keep explanations short, concrete, and free of jargon.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var openAIResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return openAIResp.Choices[0].Message.Content, nil
}

func (s *AIService) fallbackScheduleExplanation(
	input domain.ScheduleInput,
	result domain.ScheduleResult,
) string {
	return fmt.Sprintf(
		"Over %d payments, each installment covers the interest accrued on the remaining balance first and the rest repays principal, so early payments are interest-heavy and later ones mostly reduce the debt. In total you pay %.2f, of which %.2f is interest on the original %.2f.",
		input.Periods, -result.TotalPaid, -result.TotalInterest, input.PresentValue)
}
