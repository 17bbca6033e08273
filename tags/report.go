package tags

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"tagnest/rdx"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

var shareSecret = []byte(shareSecretFromEnv())

func shareSecretFromEnv() string {
	if v := os.Getenv("TAGNEST_SHARE_SECRET"); v != "" {
		return v
	}
	return "your-very-secret-key"
}

// shareBaseURL is where QR codes point; override for deployments.
func shareBaseURL() string {
	if v := os.Getenv("TAGNEST_SHARE_BASE_URL"); v != "" {
		return v
	}
	return "https://tagnest.local"
}

// signSharePayload returns tag|timestamp|signature so scanned codes can be
// verified server side.
func signSharePayload(tag string) string {
	data := fmt.Sprintf("%s|%d", tag, time.Now().Unix())
	h := hmac.New(sha256.New, shareSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// GET /api/v1/tag/:tag/qr
// Renders a share QR code pointing at the tag page.
func TagQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tag := ps.ByName("tag")
	if tag == "" {
		http.Error(w, "Missing tag parameter", http.StatusBadRequest)
		return
	}

	payload := fmt.Sprintf("%s/tags/%s?s=%s", shareBaseURL(), tag, signSharePayload(tag))

	qrPNG, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(qrPNG)
}

// GET /api/v1/tags/trending/report
// Exports the current trending table as a PDF for analytics consumers.
func TrendingReport(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit := trendingLimit(r)

	entries, err := rdx.TopTrending(trendingKey(r), int64(limit))
	if err != nil {
		http.Error(w, "Failed to fetch trending tags", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Trending Tags Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC1123)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(120, 8, "Tag")
	pdf.Cell(40, 8, "Occurrences")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	for _, z := range entries {
		name, _ := z.Member.(string)
		pdf.Cell(120, 8, name)
		pdf.Cell(40, 8, fmt.Sprintf("%.0f", z.Score))
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=trending-tags.pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
