package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"newscheck/internal/samples"
)

// EmptyArticleMessage is shown to the user when there is nothing to analyze.
const EmptyArticleMessage = "Please select a sample headline or paste an article to analyze."

var ErrEmptyArticle = errors.New("empty article")

// Normalize combines headline and body the way the classifier saw them in
// training: "<title> <body>". The selector placeholder is not a title.
func Normalize(title, body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", ErrEmptyArticle
	}

	title = strings.TrimSpace(title)
	if title == "" || title == samples.Placeholder {
		return body, nil
	}
	return title + " " + body, nil
}

func TextHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// CacheKey is TextHash of the text, namespaced by scope when one is set.
func CacheKey(scope, text string) string {
	if scope == "" {
		return TextHash(text)
	}
	return TextHash(scope + "\x00" + text)
}
