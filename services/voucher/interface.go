package voucher

import (
	"context"
	"net/http"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

// Renderer turns a completed session into the downloadable voucher PDF.
type Renderer interface {
	Render(ctx context.Context, doc Document) ([]byte, error)
	Save(pdf []byte, dir string) (string, error)
}

// DefaultRenderer implements Renderer with a real HTTP client and QR
// encoder. Both collaborators are fields so tests can substitute them.
type DefaultRenderer struct {
	Client *http.Client

	// EncodeQR produces a square PNG encoding the given payload.
	EncodeQR func(payload string, size int) ([]byte, error)
}

var _ Renderer = (*DefaultRenderer)(nil)

// NewRenderer creates a renderer whose image fetch is bounded by the given
// timeout.
func NewRenderer(fetchTimeout time.Duration) *DefaultRenderer {
	return &DefaultRenderer{
		Client: &http.Client{Timeout: fetchTimeout},
		EncodeQR: func(payload string, size int) ([]byte, error) {
			return qrcode.Encode(payload, qrcode.Medium, size)
		},
	}
}
