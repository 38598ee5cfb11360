// Package news pulls recent headlines from market news APIs so they can be
// queued for checking.
package news

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"
)

type Article struct {
	ExternalID  string
	Headline    string
	Body        string
	URL         string
	Source      string
	Publisher   string
	PublishedAt time.Time
}

type NewsClient interface {
	Fetch(ctx context.Context, limit int) ([]Article, error)
	Name() string
}

// finalize drops items that cannot be analyzed or deduplicated and applies
// the limit, which not every upstream API honours.
func finalize(articles []Article, limit int) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		a.Headline = strings.TrimSpace(a.Headline)
		a.Body = strings.TrimSpace(a.Body)
		if a.Headline == "" || a.URL == "" {
			continue
		}
		out = append(out, a)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func generateExternalID(url string) string {
	sum := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", sum)[:16]
}
