package ticket

import (
    "testing"

    "github.com/shopspring/decimal"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/NHDanDz/movieapp-sub001/internal/model"
)

func TestQRCodePNG(t *testing.T) {
    png, err := QRCodePNG("https://movies.example.com/reservations/42")
    require.NoError(t, err)
    // PNG magic bytes.
    require.Greater(t, len(png), 8)
    assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRenderPDF(t *testing.T) {
    qr, err := QRCodePNG("https://movies.example.com/reservations/42")
    require.NoError(t, err)

    pdf, err := RenderPDF(PDFInput{
        MovieTitle: "Arrival",
        CinemaName: "Grand",
        Date:       "2024-05-01",
        StartAt:    "18:00",
        Seats:      []model.Seat{{Row: "A", Number: 1}, {Row: "A", Number: 2}},
        Total:      decimal.RequireFromString("25.00"),
        Username:   "dan",
        QRPNG:      qr,
    })
    require.NoError(t, err)
    require.NotEmpty(t, pdf)
    assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderPDFWithoutQR(t *testing.T) {
    pdf, err := RenderPDF(PDFInput{MovieTitle: "Arrival", Total: decimal.Zero})
    require.NoError(t, err)
    assert.NotEmpty(t, pdf)
}
