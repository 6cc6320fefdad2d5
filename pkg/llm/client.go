package llm

import "context"

// TextClient generates text from a prompt. CompleteJSON asks the model
// for a JSON object response and returns the cleaned-up body.
type TextClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteJSON(ctx context.Context, prompt string) (string, error)
}

// ImageClient generates an image from a prompt and returns the remote
// URL of the result. The URL is transient; callers are expected to
// download and persist the image themselves.
type ImageClient interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}
