package editorial

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/zotoio/halt.sh/internal/random"
	"github.com/zotoio/halt.sh/pkg/news"
)

// imageStyles are mixed into the derived image prompt for visual
// diversity between buckets.
var imageStyles = []string{
	"vaporwave digital art",
	"1950s pulp magazine cover",
	"dramatic chiaroscuro oil painting",
	"isometric pixel art",
	"grainy cyberpunk film still",
	"watercolor editorial illustration",
}

const derivePromptTemplate = `Write a single-sentence image generation prompt, in the style of %s, depicting %s in a scene about: %s. Respond with the prompt only.`

// imageTier is one attempt level in the generation fallback chain.
type imageTier struct {
	purpose string
	prompt  string
}

// generateImage derives an image prompt from the generated content and
// attempts the tier chain in order, stopping at the first success. The
// winning image is downloaded and stored under the sha256 of its
// source URL; with caching disabled the transient remote URL is
// returned as-is.
func (s *Service) generateImage(ctx context.Context, article news.Article, author Author) (string, error) {
	tiers := s.imageTiers(ctx, article, author)

	var lastErr error
	for _, tier := range tiers {
		url, err := s.image.GenerateImage(ctx, tier.prompt)
		if err != nil {
			slog.Warn("image generation tier failed", "tier", tier.purpose, "error", err)
			lastErr = err
			continue
		}
		if !s.cacheEnabled {
			return url, nil
		}
		return s.downloadImage(ctx, url)
	}
	return "", fmt.Errorf("all image generation tiers failed: %w", lastErr)
}

func (s *Service) imageTiers(ctx context.Context, article news.Article, author Author) []imageTier {
	var tiers []imageTier

	style := random.Pick(imageStyles)
	derived, err := s.text.Complete(ctx, fmt.Sprintf(derivePromptTemplate, style, author.Name, article.Title))
	if err != nil {
		// The derivation call is best-effort; a composed prompt keeps
		// tier one alive.
		slog.Warn("image prompt derivation failed", "error", err)
		derived = fmt.Sprintf("%s in a scene about %s, %s", author.Name, article.Title, style)
	}

	tiers = append(tiers,
		imageTier{purpose: "derived", prompt: strings.TrimSpace(derived)},
		imageTier{purpose: "anonymous fallback", prompt: fmt.Sprintf("Anonymous hackers in a scene related to %s", article.Title)},
		imageTier{purpose: "supa-safe", prompt: "A dimly lit room full of computer screens displaying colorful text"},
	)
	return tiers
}

func (s *Service) downloadImage(ctx context.Context, imageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("image download request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image download: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("image download read: %w", err)
	}

	sum := sha256.Sum256([]byte(imageURL))
	return s.store.WriteImage(hex.EncodeToString(sum[:]), data)
}
