package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campushq/resourcehub/internal/core/ports/driven"
	"github.com/campushq/resourcehub/internal/logger"
)

const (
	summaryFallback = "Summary could not be generated."
	answerFallback  = "I apologize, but I could not generate a response."

	assistantSystemPrompt = `You are a helpful campus assistant for a university platform.
Use the provided context to answer questions about university resources, policies, and information.
Always cite your sources when possible and be concise but informative.
If you cannot find relevant information in the context, say so clearly.`
)

// Composer turns retrieved context into user-facing text: resource
// summaries at ingest time and grounded answers at question time.
type Composer struct {
	llm driven.LLMService
}

// NewComposer creates a composer over the given LLM service.
func NewComposer(llm driven.LLMService) *Composer {
	return &Composer{llm: llm}
}

// Summarize produces a three-bullet summary of an ingested resource.
// An empty model response yields a fixed fallback string rather than an error.
func (c *Composer) Summarize(ctx context.Context, title, text string) (string, error) {
	prompt := fmt.Sprintf(`Please create a concise 3-bullet point summary of the following educational resource titled %q:

%s

Format your response as exactly 3 bullet points, each starting with "• " and being one clear, informative sentence.`, title, text)

	result, err := c.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   200,
		Temperature: 0.5,
	})
	if err != nil {
		return "", fmt.Errorf("generating summary: %w", err)
	}

	result = strings.TrimSpace(result)
	if result == "" {
		logger.Warn("Empty summary from model, using fallback")
		return summaryFallback, nil
	}
	return result, nil
}

// Answer composes a grounded response to a question from retrieved chunk
// texts and their source titles.
func (c *Composer) Answer(ctx context.Context, question string, contexts, sources []string) (string, error) {
	userPrompt := fmt.Sprintf(`Context from university resources:
%s

Sources: %s

Question: %s

Please provide a helpful answer based on the context above.`,
		strings.Join(contexts, "\n\n"), strings.Join(sources, ", "), question)

	result, err := c.llm.Chat(ctx, []driven.ChatMessage{
		{Role: "system", Content: assistantSystemPrompt},
		{Role: "user", Content: userPrompt},
	}, driven.ChatOptions{
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("generating answer: %w", err)
	}

	result = strings.TrimSpace(result)
	if result == "" {
		logger.Warn("Empty answer from model, using fallback")
		return answerFallback, nil
	}
	return result, nil
}
