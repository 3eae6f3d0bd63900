package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/liberta-studio/liberta-api/internal/report"
)

// =========================================================
// DOCUMENTO PDF (A4 RETRATO)
// =========================================================

const (
	pageWidth  = 210.0
	footerY    = 287.0
	logoX      = 182.0
	logoY      = 4.0
	logoSize   = 14.0
	footerSize = 9.0
)

// Options parametriza marca e data do rodapé e o logo opcional
// do cabeçalho.
type Options struct {
	// Brand abre a linha de rodapé ("Libertá - Relatório gerado em ...").
	Brand string
	// GeneratedOn já vem formatada como DD/MM/AAAA.
	GeneratedOn string
	// Logo em PNG, desenhado no canto superior de cada página.
	Logo []byte
}

// Document implementa report.Document sobre gofpdf. O rodapé usa o
// alias de total de páginas, resolvido na serialização, então o
// "Página X de N" sai correto mesmo com quebras tardias.
type Document struct {
	fpdf *gofpdf.Fpdf
	tr   func(string) string
}

var _ report.Document = (*Document)(nil)

func New(opts Options) *Document {
	f := gofpdf.New("P", "mm", "A4", "")
	f.SetAutoPageBreak(false, 0)
	f.AliasNbPages("")

	d := &Document{
		fpdf: f,
		tr:   f.UnicodeTranslatorFromDescriptor(""),
	}

	if len(opts.Logo) > 0 {
		f.RegisterImageOptionsReader("header-logo",
			gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(opts.Logo))
		f.SetHeaderFunc(func() {
			f.ImageOptions("header-logo", logoX, logoY, logoSize, logoSize,
				false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		})
	}

	f.SetFooterFunc(func() {
		f.SetFont("Helvetica", "", footerSize)
		f.SetTextColor(150, 150, 150)
		linha := fmt.Sprintf("%s - Relatório gerado em %s - Página %d de {nb}",
			opts.Brand, opts.GeneratedOn, f.PageNo())
		f.SetXY(0, footerY)
		f.CellFormat(pageWidth, 6, d.tr(linha), "", 0, "C", false, 0, "")
	})

	f.AddPage()
	f.SetFont("Helvetica", "", 11)
	return d
}

func (d *Document) SetFont(style string, size float64) {
	d.fpdf.SetFont("Helvetica", style, size)
}

func (d *Document) SetTextColor(r, g, b int) {
	d.fpdf.SetTextColor(r, g, b)
}

func (d *Document) Text(x, y float64, s string) {
	d.fpdf.Text(x, y, d.tr(s))
}

func (d *Document) CenteredText(y float64, s string) {
	w := d.fpdf.GetStringWidth(d.tr(s))
	d.fpdf.Text((pageWidth-w)/2, y, d.tr(s))
}

// SplitText quebra na largura útil. A tradução para cp1252 só
// acontece na escrita, nunca aqui, para não traduzir duas vezes.
func (d *Document) SplitText(s string, width float64) []string {
	return d.fpdf.SplitText(s, width)
}

func (d *Document) AddPage() {
	d.fpdf.AddPage()
}

func (d *Document) PageCount() int {
	return d.fpdf.PageCount()
}

// Output fecha o documento e escreve os bytes finais, já com o total
// de páginas resolvido nos rodapés.
func (d *Document) Output(w io.Writer) error {
	if err := d.fpdf.Error(); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return d.fpdf.Output(w)
}
