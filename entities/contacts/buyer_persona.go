package contacts

import "strings"

type personaRule struct {
	Code     int
	Keywords []string
}

// El orden importa: la primera regla cuyo título coincida gana.
var personaRules = []personaRule{
	{Code: 1, Keywords: []string{"director medico", "director médico", "medical director", "cmo"}},
	{Code: 2, Keywords: []string{"director", "gerente general", "ceo", "general manager", "presidente"}},
	{Code: 3, Keywords: []string{"marketing", "mercadotecnia", "brand", "producto", "product manager"}},
	{Code: 4, Keywords: []string{"ventas", "comercial", "sales", "business development"}},
	{Code: 5, Keywords: []string{"medico", "médico", "doctor", "dr.", "investigador", "farmacovigilancia"}},
}

// ClassifyBuyerPersona asigna el código de buyer persona a partir del puesto.
// Devuelve 0 cuando ninguna regla coincide.
func ClassifyBuyerPersona(jobTitle string) int {
	title := strings.ToLower(strings.TrimSpace(jobTitle))
	if title == "" {
		return 0
	}

	for _, rule := range personaRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(title, keyword) {
				return rule.Code
			}
		}
	}

	return 0
}
