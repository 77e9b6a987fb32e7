// Package client builds chat models from the user's provider settings. The
// settings service owns which provider is active; this package only turns a
// ModelConfig into a usable model.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"sceneloom/internal/models"
)

const defaultMaxTokens = 4096

// NewChatModel constructs a chat model for the given binding. Providers
// without a dedicated component (deepseek, moonshot, qwen, doubao, custom)
// speak the OpenAI wire protocol and go through the openai component with
// their own base URL.
func NewChatModel(ctx context.Context, cfg models.ModelConfig) (model.ToolCallingChatModel, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: api key is not configured", cfg.Provider)
	}

	switch cfg.Provider {
	case "claude":
		conf := &claude.Config{
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			MaxTokens: defaultMaxTokens,
		}
		if cfg.BaseURL != "" {
			conf.BaseURL = &cfg.BaseURL
		}
		return claude.NewChatModel(ctx, conf)

	case "gemini":
		genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("creating gemini client: %w", err)
		}
		return gemini.NewChatModel(ctx, &gemini.Config{
			Client: genaiClient,
			Model:  cfg.Model,
		})

	default:
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
	}
}

// SplitScenes asks the model to break source text into storyboard scenes
// using the given prompt template. The template's {{text}} placeholder is
// replaced with the source text; the model must answer with a JSON array of
// scene objects.
func SplitScenes(ctx context.Context, chatModel model.ToolCallingChatModel, template, sourceText string) ([]models.Scene, error) {
	prompt := strings.ReplaceAll(template, "{{text}}", sourceText)

	out, err := chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage("You split narrative text into storyboard scenes. Respond with a JSON array only; each element has \"description\" and \"prompt\" string fields."),
		schema.UserMessage(prompt),
	})
	if err != nil {
		return nil, fmt.Errorf("splitting scenes: %w", err)
	}

	var scenes []models.Scene
	if err := json.Unmarshal([]byte(extractJSON(out.Content)), &scenes); err != nil {
		return nil, fmt.Errorf("decoding scene list: %w", err)
	}
	return scenes, nil
}

// extractJSON strips markdown code fences some models wrap around JSON.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
