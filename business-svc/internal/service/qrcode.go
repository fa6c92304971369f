package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	SearchURL string
	Size      int
}

// Generate encodes a review-search link for the business as a PNG.
func (g DefaultQRGenerator) Generate(name, location string) ([]byte, error) {
	link, err := g.ReviewLink(name, location)
	if err != nil {
		return nil, err
	}
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(link, qrcode.Medium, size)
}

func (g DefaultQRGenerator) ReviewLink(name, location string) (string, error) {
	base, err := url.Parse(g.SearchURL)
	if err != nil {
		return "", fmt.Errorf("invalid review search url: %w", err)
	}
	q := base.Query()
	q.Set("q", strings.Join([]string{name, location, "reviews"}, " "))
	base.RawQuery = q.Encode()
	return base.String(), nil
}
