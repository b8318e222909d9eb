package provider

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// Paramètres d'échantillonnage fixes pour la génération de captions.
const (
	maxTokens   = 150
	temperature = 0.7
)

// CaptionProvider est le collaborateur de génération de texte.
type CaptionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// AzureOpenAI appelle un déploiement Azure OpenAI en chat completion.
type AzureOpenAI struct {
	client     *openai.Client
	deployment string
}

// NewAzureOpenAI construit le client depuis l'environnement:
// AZURE_OPENAI_ENDPOINT, AZURE_OPENAI_API_KEY, AZURE_OPENAI_API_VERSION,
// AZURE_OPENAI_API_DEPLOYMENT_NAME.
func NewAzureOpenAI() (*AzureOpenAI, error) {
	endpoint := os.Getenv("AZURE_OPENAI_ENDPOINT")
	apiKey := os.Getenv("AZURE_OPENAI_API_KEY")
	apiVersion := os.Getenv("AZURE_OPENAI_API_VERSION")
	deployment := os.Getenv("AZURE_OPENAI_API_DEPLOYMENT_NAME")

	if endpoint == "" || apiKey == "" || deployment == "" {
		return nil, fmt.Errorf("AZURE_OPENAI_ENDPOINT, AZURE_OPENAI_API_KEY and AZURE_OPENAI_API_DEPLOYMENT_NAME are required in environment variables")
	}

	config := openai.DefaultAzureConfig(apiKey, endpoint)
	if apiVersion != "" {
		config.APIVersion = apiVersion
	}

	return &AzureOpenAI{
		client:     openai.NewClientWithConfig(config),
		deployment: deployment,
	}, nil
}

// Complete envoie le prompt tel quel et renvoie le texte du premier choix.
// Pas de retry: toute erreur du provider est terminale pour la requête.
func (p *AzureOpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.deployment,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("provider returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
