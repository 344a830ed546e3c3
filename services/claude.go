package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// extractionModel is the vision-capable model used for quotation documents.
const extractionModel = "claude-sonnet-4-20250514"

// ExtractDocument sends a quotation document (PDF or image) to the Anthropic
// API with the fixed extraction prompt and returns the raw response text.
// The call is a single blocking round trip; there is no retry.
func ExtractDocument(ctx context.Context, apiKey, mimeType string, data []byte) (string, error) {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	encoded := base64.StdEncoding.EncodeToString(data)

	var docBlock anthropic.ContentBlockParamUnion
	if strings.HasPrefix(mimeType, "image/") {
		docBlock = anthropic.NewImageBlockBase64(mimeType, encoded)
	} else {
		docBlock = anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{Data: encoded})
	}

	message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(extractionModel),
		MaxTokens: 4096,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(docBlock, anthropic.NewTextBlock(ExtractionPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("document extraction request: %w", err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}

// ClassifyExtractionError maps an upstream AI failure to a user-facing
// message. Classification is a best-effort match on the error text; nothing
// here is retried automatically.
func ClassifyExtractionError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "etimedout") ||
		strings.Contains(msg, "deadline exceeded"):
		return "The document analysis timed out. Try a smaller or clearer document."
	case strings.Contains(msg, "401") ||
		strings.Contains(msg, "authentication") ||
		strings.Contains(msg, "invalid x-api-key"):
		return "The Anthropic API key was rejected. Check the key in Settings."
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit"):
		return "The AI service is rate limited right now. Wait a moment and try again."
	default:
		return fmt.Sprintf("Extraction failed: %v", err)
	}
}
