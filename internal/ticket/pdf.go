package ticket

import (
    "bytes"
    "fmt"
    "strings"

    "github.com/jung-kurt/gofpdf"
    "github.com/shopspring/decimal"

    "github.com/NHDanDz/movieapp-sub001/internal/model"
)

// PDFInput is everything the printable ticket shows.  QRPNG is optional;
// when present it is embedded in the top-right corner.
type PDFInput struct {
    MovieTitle string
    CinemaName string
    Date       string
    StartAt    string
    Seats      []model.Seat
    Total      decimal.Decimal
    Username   string
    QRPNG      []byte
}

// RenderPDF produces a single-page A6 landscape ticket.  Layout mirrors a
// classic stub: movie and venue up top, the slot in the middle, seats and
// total at the bottom.
func RenderPDF(in PDFInput) ([]byte, error) {
    pdf := gofpdf.New("L", "mm", "A6", "")
    pdf.SetMargins(8, 8, 8)
    pdf.AddPage()

    pdf.SetFont("Helvetica", "B", 16)
    pdf.CellFormat(0, 9, in.MovieTitle, "", 1, "L", false, 0, "")

    pdf.SetFont("Helvetica", "", 11)
    pdf.CellFormat(0, 6, in.CinemaName, "", 1, "L", false, 0, "")
    pdf.CellFormat(0, 6, fmt.Sprintf("%s at %s", in.Date, in.StartAt), "", 1, "L", false, 0, "")

    if len(in.QRPNG) > 0 {
        opts := gofpdf.ImageOptions{ImageType: "PNG"}
        pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(in.QRPNG))
        pageW, _ := pdf.GetPageSize()
        pdf.ImageOptions("qr", pageW-34, 8, 26, 26, false, opts, 0, "")
    }

    labels := make([]string, 0, len(in.Seats))
    for _, seat := range in.Seats {
        labels = append(labels, model.SeatKey(seat.Row, seat.Number))
    }
    pdf.Ln(4)
    pdf.SetFont("Helvetica", "B", 11)
    pdf.CellFormat(0, 6, "Seats: "+strings.Join(labels, ", "), "", 1, "L", false, 0, "")
    pdf.CellFormat(0, 6, "Total: "+in.Total.StringFixed(2), "", 1, "L", false, 0, "")

    if in.Username != "" {
        pdf.SetFont("Helvetica", "I", 9)
        pdf.CellFormat(0, 6, "Booked by "+in.Username, "", 1, "L", false, 0, "")
    }

    var buf bytes.Buffer
    if err := pdf.Output(&buf); err != nil {
        return nil, err
    }
    return buf.Bytes(), nil
}
