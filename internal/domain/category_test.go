package domain

import "testing"

func TestCategoriesFixedOrder(t *testing.T) {
	want := []string{
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

	if len(Categories) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(Categories))
	}
	for i, label := range want {
		if Categories[i] != label {
			t.Fatalf("category %d: expected %q, got %q", i, label, Categories[i])
		}
	}
}

func TestIsValidCategory(t *testing.T) {
	if !IsValidCategory("Pizzerías") {
		t.Fatal("expected Pizzerías to be valid")
	}
	if !IsValidCategory("SPA") {
		t.Fatal("expected SPA to be valid")
	}
	if IsValidCategory("pizzerías") {
		t.Fatal("matching must be case sensitive")
	}
	if IsValidCategory("Ferreterías") {
		t.Fatal("expected unknown label to be invalid")
	}
	if IsValidCategory("") {
		t.Fatal("expected empty label to be invalid")
	}
}
