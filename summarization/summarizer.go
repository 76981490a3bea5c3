// Package summarization turns a cross-product summary into a short natural
// language digest via OpenAI. The digest is optional, analysis results never
// depend on it.
package summarization

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"go-reviewlens/types"
)

const maxPromptLength = 12000

type Summarizer struct {
	client *openai.Client
	log    *logrus.Logger
}

// New returns nil when no API key is configured, callers treat a nil
// Summarizer as disabled.
func New(apiKey string, log *logrus.Logger) *Summarizer {
	if apiKey == "" {
		return nil
	}
	return &Summarizer{client: openai.NewClient(apiKey), log: log}
}

// GenerateDigest asks the model for a 2-3 sentence digest of the cross
// summary from a seller's perspective.
func (s *Summarizer) GenerateDigest(ctx context.Context, summary types.CrossSummary) (string, error) {
	prompt := buildPrompt(summary)
	if len(prompt) > maxPromptLength {
		s.log.WithField("length", len(prompt)).Warn("digest prompt truncated")
		prompt = prompt[:maxPromptLength]
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "あなたはECコンサルタントです。商品レビューの分析結果を簡潔な日本語で要約します。",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   200,
			N:           1,
			Temperature: 0.5,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(summary types.CrossSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "カテゴリ「%s」の%d商品（レビュー計%d件）を分析しました。\n\n", summary.Category, summary.ProductCount, summary.TotalReviews)

	b.WriteString("評価が上がる要因:\n")
	for _, f := range summary.PositiveFactors {
		fmt.Fprintf(&b, "- %s（%d件）\n", f.Sentence, f.TotalCount)
	}
	b.WriteString("\n評価が下がる要因:\n")
	for _, f := range summary.NegativeFactors {
		fmt.Fprintf(&b, "- %s（%d件）\n", f.Sentence, f.TotalCount)
	}
	b.WriteString("\n差別化のヒント:\n")
	for _, h := range summary.DifferentiationHints {
		fmt.Fprintf(&b, "- %s: %s\n", h.Hint, h.Reason)
	}

	b.WriteString("\nこのカテゴリに新規参入する出品者向けに、注力すべきポイントを2〜3文で要約してください。")
	return b.String()
}
