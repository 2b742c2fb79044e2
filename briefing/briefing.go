package briefing

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

const maxBriefingTokens = 300

// BuildVisitBriefing drafts a short field-visit note for an officer from a
// lead, the slot recommendation and the deterministic explanation. The model
// only rephrases material we computed; all numbers come from the inputs.
func BuildVisitBriefing(
	ctx context.Context,
	client *openai.Client,
	lead types.Lead,
	rec types.RecommendationResult,
	reasons []string,
) (string, error) {
	if client == nil {
		return "", fmt.Errorf("openai client not configured")
	}

	var prompt strings.Builder
	prompt.WriteString("Draft a short visit briefing for a microfinance field officer.\n\n")
	fmt.Fprintf(&prompt, "Lead: %s (status %s", lead.Name, lead.Status)
	if lead.Locality != "" {
		fmt.Fprintf(&prompt, ", %s", lead.Locality)
	}
	prompt.WriteString(")\n")
	if lead.PrequalBand != "" {
		fmt.Fprintf(&prompt, "Prequalification band: %s\n", lead.PrequalBand)
	}
	if rec.BestSlot != "" {
		fmt.Fprintf(&prompt, "Recommended meeting slot: %s (%d mins)\n", rec.BestSlot, rec.Duration)
	}
	if len(reasons) > 0 {
		prompt.WriteString("Scheduling rationale:\n")
		for _, reason := range reasons {
			fmt.Fprintf(&prompt, "- %s\n", reason)
		}
	}
	prompt.WriteString("\nKeep it under 120 words, plain language, no headings.")

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT3Dot5Turbo,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that writes concise visit briefings for microfinance field officers.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt.String(),
				},
			},
			MaxTokens: maxBriefingTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("briefing completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("briefing completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
