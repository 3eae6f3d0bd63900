package report

import "github.com/liberta-studio/liberta-api/internal/httperr"

// ======================================================
// VARIANTES E TEMPLATES
// ======================================================

type Variant int

const (
	// VariantHome é o atendimento genérico (tarot avulso, terapia...).
	VariantHome Variant = iota
	// VariantTarot é a análise frequencial.
	VariantTarot
)

type Template int

const (
	TemplateIndividual Template = iota
	TemplateConsolidado
)

type RGB struct {
	R, G, B int
}

// Style concentra o que muda entre variantes: cor do título, fallback
// de preço e os rótulos de unidade usados nas estatísticas.
type Style struct {
	TitleColor    RGB
	DefaultAmount float64
	UnitSingular  string
	UnitPlural    string
}

func (v Variant) Style() Style {
	if v == VariantTarot {
		return Style{
			TitleColor:    RGB{124, 100, 244},
			DefaultAmount: 150,
			UnitSingular:  "Análise",
			UnitPlural:    "Análises",
		}
	}
	return Style{
		TitleColor:    RGB{14, 165, 233},
		DefaultAmount: 0,
		UnitSingular:  "Atendimento",
		UnitPlural:    "Atendimentos",
	}
}

var (
	attentionColor = RGB{220, 38, 38}
	bodyColor      = RGB{0, 0, 0}
)

// SelectTemplate aplica a tabela de decisão dos relatórios por cliente:
// conjunto vazio aborta sem gerar arquivo; tarot com um único registro
// usa o template individual; todo o resto sai no consolidado, inclusive
// a variante genérica com um só atendimento.
func SelectTemplate(v Variant, count int) (Template, error) {
	if count == 0 {
		return 0, httperr.ErrBusiness("no_records")
	}
	if v == VariantTarot && count == 1 {
		return TemplateIndividual, nil
	}
	return TemplateConsolidado, nil
}

// FilePrefix devolve o prefixo do nome de arquivo por variante/template.
func FilePrefix(v Variant, tpl Template) string {
	if v == VariantTarot {
		if tpl == TemplateIndividual {
			return "Relatorio_Individual_Tarot"
		}
		return "Relatorio_Geral_Tarot"
	}
	return "Relatorio_Detalhado"
}
