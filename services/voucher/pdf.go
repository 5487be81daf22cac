package voucher

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"spavoucher/utils"
)

// A4 portrait, millimetres. All region coordinates are fixed.
const (
	pageWidth  = 210.0
	pageHeight = 297.0

	bannerX, bannerY = 20.0, 20.0
	bannerW, bannerH = 170.0, 60.0

	qrX, qrY, qrSize = 80.0, 155.0, 50.0
	qrSizePixels     = 256
)

// Render fetches the design image, generates the QR code, and draws the
// voucher. The two external calls are attempted exactly once each; either
// failure is logged and degrades only its own region, so a render started
// always completes.
func (r *DefaultRenderer) Render(ctx context.Context, doc Document) ([]byte, error) {
	logger := utils.GetLogger()

	var imageData []byte
	if data, err := r.fetchDesignImage(ctx, doc.DesignImageURL); err != nil {
		logger.Warn("failed to load design image, rendering without banner image",
			zap.String("design", doc.DesignName), zap.Error(err))
	} else {
		imageData = data
	}

	var qrData []byte
	if data, err := r.EncodeQR(doc.CodePayload, qrSizePixels); err != nil {
		logger.Warn("failed to generate QR code, omitting code region",
			zap.Error(err))
	} else {
		qrData = data
	}

	return drawPDF(doc, imageData, qrData)
}

// Save writes the rendered PDF into dir under the fixed voucher file name
// and returns the full path.
func (r *DefaultRenderer) Save(pdf []byte, dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("failed to save voucher: %w", err)
	}
	return path, nil
}

func (r *DefaultRenderer) fetchDesignImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch design image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("design image fetch returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read design image body: %w", err)
	}
	return data, nil
}

// drawPDF places the document's regions at their fixed coordinates. A nil
// imageData or qrData leaves that region out; everything else is still
// drawn, including the overlay and title on a blank banner.
func drawPDF(doc Document, imageData, qrData []byte) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Page background.
	pdf.SetFillColor(249, 250, 251)
	pdf.Rect(0, 0, pageWidth, pageHeight, "F")

	// Banner image.
	if kind, ok := embeddableImageType(imageData); ok {
		opts := gofpdf.ImageOptions{ImageType: kind}
		pdf.RegisterImageOptionsReader("design", opts, bytes.NewReader(imageData))
		pdf.ImageOptions("design", bannerX, bannerY, bannerW, bannerH, false, opts, 0, "")
	}

	// Semi-transparent dark overlay over the banner region, drawn whether or
	// not the image itself made it in.
	pdf.SetAlpha(0.3, "Normal")
	pdf.SetFillColor(0, 0, 0)
	pdf.Rect(bannerX, bannerY, bannerW, bannerH, "F")
	pdf.SetAlpha(1, "Normal")

	// Title, centered on the banner.
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(255, 255, 255)
	textCentered(pdf, tr, doc.Title, 55)

	// Massage details.
	pdf.SetTextColor(31, 41, 55)
	pdf.SetFontSize(16)
	pdf.Text(30, 100, tr(doc.ServiceName))
	pdf.SetFontSize(14)
	pdf.SetTextColor(107, 114, 128)
	pdf.Text(30, 110, tr(doc.DurationLine))
	pdf.Text(30, 120, tr(doc.PriceLine))

	// Appointment.
	pdf.Text(30, 140, tr(doc.AppointmentLine))

	// Scannable code region.
	if qrData != nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrData))
		pdf.ImageOptions("qr", qrX, qrY, qrSize, qrSize, false, opts, 0, "")
	}

	// The textual id prints regardless of whether the code image exists.
	pdf.SetFontSize(10)
	textCentered(pdf, tr, doc.CodeCaption, 210)

	// Personal message.
	if doc.Message != "" {
		pdf.SetFont("Helvetica", "I", 12)
		pdf.SetXY(30, 226)
		pdf.MultiCell(150, 6, tr("\""+doc.Message+"\""), "", "L", false)
	}

	// Recipient information.
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(30, 250, tr(doc.RecipientLine))
	pdf.Text(30, 260, tr(doc.ContactLine))

	// Validity footer.
	pdf.SetFontSize(10)
	pdf.SetTextColor(156, 163, 175)
	textCentered(pdf, tr, doc.Footer, 280)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write voucher PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func textCentered(pdf *gofpdf.Fpdf, tr func(string) string, s string, y float64) {
	text := tr(s)
	pdf.Text((pageWidth-pdf.GetStringWidth(text))/2, y, text)
}

// embeddableImageType sniffs the payload and maps it onto a gofpdf image
// type. Anything that is not a decodable JPEG or PNG is dropped rather than
// poisoning the document with a registration error.
func embeddableImageType(data []byte) (string, bool) {
	if len(data) == 0 {
		return "", false
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		utils.GetLogger().Warn("design image payload is not embeddable", zap.Error(err))
		return "", false
	}
	switch format {
	case "jpeg":
		return "JPG", true
	case "png":
		return "PNG", true
	default:
		utils.GetLogger().Warn("unsupported design image format", zap.String("format", format))
		return "", false
	}
}
