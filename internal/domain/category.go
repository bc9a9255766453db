package domain

import "strings"

// Categories is the closed taxonomy of business categories. Order is
// part of the API contract: GET /api/categorias returns exactly this
// slice.
var Categories = []string{
	"Comidas y Restaurantes",
	"Tecnología y Desarrollo",
	"Gimnasios",
	"Papelería y Librerías",
	"Mascotas",
	"Odontología",
	"Ópticas",
	"Pastelerías",
	"Pizzerías",
	"Ropa de Niños",
	"Ropa de Mujeres",
	"Ropa Deportiva",
	"Salones de Belleza",
	"SPA",
	"Talleres de Mecánica",
	"Tiendas Deportivas",
	"Veterinarias",
	"Vidrierías",
}

var categorySet = makeStringSet(Categories)

func makeStringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		set[item] = struct{}{}
	}
	return set
}

// IsValidCategory reports whether the label belongs to the taxonomy.
// Matching is exact: no trimming, no case folding.
func IsValidCategory(label string) bool {
	_, ok := categorySet[label]
	return ok
}
