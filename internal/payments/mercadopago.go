package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// =========================================================
// LINK DE PAGAMENTO (MERCADO PAGO)
// =========================================================

// Link é o resultado de uma cobrança criada para um atendimento
// pendente ou parcelado.
type Link struct {
	PreferenceID string `json:"preference_id"`
	URL          string `json:"url"`
}

// Gateway cria links de pagamento via Mercado Pago. Sem token
// configurado o recurso fica desligado e a criação retorna erro.
type Gateway struct {
	prefs preference.Client
}

func NewGateway(accessToken string) (*Gateway, error) {
	if accessToken == "" {
		return &Gateway{}, nil
	}
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("payments: configurar mercado pago: %w", err)
	}
	return &Gateway{prefs: preference.NewClient(cfg)}, nil
}

func (g *Gateway) Enabled() bool {
	return g.prefs != nil
}

// CreateLink monta uma preferência de item único em BRL para o
// atendimento e devolve a URL de checkout.
func (g *Gateway) CreateLink(ctx context.Context, atendimentoID, titulo string, valor float64) (Link, error) {
	if g.prefs == nil {
		return Link{}, fmt.Errorf("payments: gateway não configurado")
	}
	resp, err := g.prefs.Create(ctx, preference.Request{
		ExternalReference: atendimentoID,
		Items: []preference.ItemRequest{
			{
				Title:      titulo,
				Quantity:   1,
				UnitPrice:  valor,
				CurrencyID: "BRL",
			},
		},
	})
	if err != nil {
		return Link{}, fmt.Errorf("payments: criar preferência: %w", err)
	}
	return Link{PreferenceID: resp.ID, URL: resp.InitPoint}, nil
}
