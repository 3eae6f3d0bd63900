package branding

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// LoadLogo lê o logo configurado (webp, png ou jpeg), redimensiona
// para o quadrado pedido e devolve os bytes em PNG, o formato que o
// cabeçalho dos relatórios consome. Caminho vazio desliga o logo.
func LoadLogo(path string, size int) ([]byte, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("branding: ler logo: %w", err)
	}

	var img image.Image
	if strings.HasSuffix(strings.ToLower(path), ".webp") {
		img, err = webp.Decode(bytes.NewReader(raw))
	} else {
		img, _, err = image.Decode(bytes.NewReader(raw))
	}
	if err != nil {
		return nil, fmt.Errorf("branding: decodificar %s: %w", path, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("branding: reencodar logo: %w", err)
	}
	return buf.Bytes(), nil
}
