package stub

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"khatapro-client/models"
)

func (s *Server) generateInvoice(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var req models.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if len(req.Items) == 0 {
		respondWithError(c, http.StatusBadRequest, "Invoice needs at least one item")
		return
	}

	var customer Customer
	if err := s.DB.Where("business_id = ? AND id = ?", bid, req.CustomerID).First(&customer).Error; err != nil {
		notFoundOrDBError(c, err, "Customer")
		return
	}

	var total float64
	lines := make([]string, 0, len(req.Items)+4)
	lines = append(lines,
		"INVOICE",
		"Customer: "+customer.Name,
		"Date: "+time.Now().Format("02 Jan 2006"),
	)
	for _, item := range req.Items {
		lines = append(lines, fmt.Sprintf("%s x%d @ %.2f = %.2f", item.Name, item.Quantity, item.UnitPrice, item.Total))
		total += item.Total
	}
	total -= req.Discount
	lines = append(lines, fmt.Sprintf("TOTAL: %.2f", total))

	pdf := renderPDF(lines)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// renderPDF emits a minimal single-page PDF with one text line per
// input string. It is enough for the client to save and a viewer to
// open; real rendering belongs to the production backend.
func renderPDF(lines []string) []byte {
	var content bytes.Buffer
	content.WriteString("BT /F1 12 Tf 50 780 Td 16 TL\n")
	for _, line := range lines {
		content.WriteString(fmt.Sprintf("(%s) Tj T*\n", pdfEscape(line)))
	}
	content.WriteString("ET\n")

	var buf bytes.Buffer
	offsets := make([]int, 0, 6)
	write := func(s string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(s)
	}

	buf.WriteString("%PDF-1.4\n")
	write("1 0 obj << /Type /Catalog /Pages 2 0 R >> endobj\n")
	write("2 0 obj << /Type /Pages /Kids [3 0 R] /Count 1 >> endobj\n")
	write("3 0 obj << /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >> endobj\n")
	write(fmt.Sprintf("4 0 obj << /Length %d >> stream\n%sendstream endobj\n", content.Len(), content.String()))
	write("5 0 obj << /Type /Font /Subtype /Type1 /BaseFont /Helvetica >> endobj\n")

	xrefStart := buf.Len()
	buf.WriteString(fmt.Sprintf("xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1))
	for _, off := range offsets {
		buf.WriteString(fmt.Sprintf("%010d 00000 n \n", off))
	}
	buf.WriteString(fmt.Sprintf("trailer << /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefStart))
	return buf.Bytes()
}

func pdfEscape(s string) string {
	var out bytes.Buffer
	for _, r := range s {
		switch r {
		case '(', ')', '\\':
			out.WriteByte('\\')
			out.WriteRune(r)
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
