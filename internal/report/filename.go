package report

import (
	"strings"
	"time"
)

// Filename monta o nome do arquivo baixado:
// <Prefixo>_<Nome_Com_Underscores>_<DD-MM-AAAA>.pdf
// Espaços no nome viram underscore e a data usa hífen no lugar da barra.
func Filename(prefix, cliente string, today time.Time) string {
	date := today.Format("02-01-2006")
	if cliente == "" {
		return prefix + "_" + date + ".pdf"
	}
	name := strings.ReplaceAll(cliente, " ", "_")
	return prefix + "_" + name + "_" + date + ".pdf"
}
