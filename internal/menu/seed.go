package menu

import "carta-backend/internal/models"

const PlaceholderImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?q=80&w=1000&auto=format&fit=crop"

var defaultItems = []models.MenuItem{
	{
		ID:          1,
		Name:        "Ceviche Clásico",
		Description: "Pesca del día marinada en leche de tigre, con camote glaseado, choclo y canchita serrana.",
		Price:       38.00,
		Category:    models.CategoryEntradas,
		Image:       "https://images.unsplash.com/photo-1535399831218-d5bd36d1a6b3?auto=format&fit=crop&w=800&q=80",
		Available:   true,
	},
	{
		ID:          2,
		Name:        "Lomo Saltado",
		Description: "Trozos de lomo fino salteados al wok con cebolla, tomate y ají amarillo, servido con papas fritas y arroz.",
		Price:       45.00,
		Category:    models.CategoryFondos,
		Image:       "images/lomosaltado.png",
		Available:   true,
	},
	{
		ID:          3,
		Name:        "Ají de Gallina",
		Description: "Pechuga de gallina deshilachada en crema de ají amarillo, nueces y parmesano, con papa amarilla y arroz.",
		Price:       32.00,
		Category:    models.CategoryFondos,
		Image:       "images/ajigallina.png",
		Available:   true,
	},
	{
		ID:          4,
		Name:        "Causa Limeña",
		Description: "Suave masa de papa amarilla prensada con limón y ají amarillo, rellena de pollo, palta y mayonesa.",
		Price:       24.00,
		Category:    models.CategoryEntradas,
		Image:       "images/causa.png",
		Available:   true,
	},
	{
		ID:          5,
		Name:        "Chicha Morada",
		Description: "Refrescante bebida de maíz morado, piña, manzana, canela y clavo de olor.",
		Price:       12.00,
		Category:    models.CategoryBebidas,
		Image:       "images/chichamorada.png",
		Available:   true,
	},
	{
		ID:          6,
		Name:        "Suspiro a la Limeña",
		Description: "Dulce de leche suave cubierto con merengue al oporto y canela.",
		Price:       18.00,
		Category:    models.CategoryPostres,
		Image:       "images/suspirolima.png",
		Available:   true,
	},
}

// Defaults returns a fresh copy of the canonical carta, independent of any
// prior mutation history.
func Defaults() []models.MenuItem {
	return cloneItems(defaultItems)
}
