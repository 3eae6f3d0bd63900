package report

import "io"

// Canvas é a capacidade de desenho consumida pelo motor de layout.
// A implementação real fica em internal/pdf; os testes usam um canvas
// em memória que só grava as instruções emitidas.
type Canvas interface {
	// SetFont ajusta estilo ("B" para negrito, "" para normal) e tamanho.
	SetFont(style string, size float64)
	SetTextColor(r, g, b int)

	// Text escreve uma linha na posição (x, y) em unidades da página.
	Text(x, y float64, s string)

	// CenteredText escreve a linha centralizada na largura da página.
	CenteredText(y float64, s string)

	// SplitText quebra o texto na largura útil e devolve as linhas.
	SplitText(s string, width float64) []string

	AddPage()
	PageCount() int
}

// Document acrescenta ao Canvas a serialização final do arquivo.
type Document interface {
	Canvas
	Output(w io.Writer) error
}
