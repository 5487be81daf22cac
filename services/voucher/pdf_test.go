package voucher

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testRenderer(t *testing.T, imageServer *httptest.Server) *DefaultRenderer {
	t.Helper()
	r := NewRenderer(5 * time.Second)
	if imageServer != nil {
		r.Client = imageServer.Client()
	}
	return r
}

func TestRenderProducesPDF(t *testing.T) {
	payload := testPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	doc, err := BuildDocument(aromatherapySession())
	require.NoError(t, err)
	doc.DesignImageURL = srv.URL

	pdf, err := testRenderer(t, srv).Render(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")), "output should be a PDF")
	assert.NotEmpty(t, pdf)
}

func TestRenderSurvivesImageFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	doc, err := BuildDocument(aromatherapySession())
	require.NoError(t, err)
	doc.DesignImageURL = srv.URL

	pdf, err := testRenderer(t, srv).Render(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestRenderSurvivesQRFailure(t *testing.T) {
	payload := testPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	doc, err := BuildDocument(aromatherapySession())
	require.NoError(t, err)
	doc.DesignImageURL = srv.URL

	r := testRenderer(t, srv)
	r.EncodeQR = func(string, int) ([]byte, error) {
		return nil, errors.New("qr backend down")
	}

	pdf, err := r.Render(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))

	// The id caption still prints without the code image, so the degraded
	// voucher shrinks but remains a complete document.
	withQR, err := testRenderer(t, srv).Render(context.Background(), doc)
	require.NoError(t, err)
	assert.Less(t, len(pdf), len(withQR))
}

func TestRenderSurvivesNonImagePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not an image</html>"))
	}))
	defer srv.Close()

	doc, err := BuildDocument(aromatherapySession())
	require.NoError(t, err)
	doc.DesignImageURL = srv.URL

	pdf, err := testRenderer(t, srv).Render(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestSaveWritesNamedFile(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(time.Second)

	path, err := r.Save([]byte("%PDF-1.4 test"), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "massage-gutschein.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 test"), data)
}

func TestEmbeddableImageType(t *testing.T) {
	kind, ok := embeddableImageType(testPNG(t))
	assert.True(t, ok)
	assert.Equal(t, "PNG", kind)

	_, ok = embeddableImageType(nil)
	assert.False(t, ok)

	_, ok = embeddableImageType([]byte("garbage"))
	assert.False(t, ok)
}
