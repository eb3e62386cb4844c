package catalog

import "github.com/bmbestetica/BMB-BookingService/internal/domain"

// defaultServices стартовый каталог услуг автодетейлинга
var defaultServices = []domain.Service{
	{
		ID:              "lavagem-simples",
		Name:            "Lavagem Simples",
		Description:     "Lavagem externa completa do veículo com produtos de qualidade",
		Price:           50.00,
		DurationMinutes: 30,
		ImageURL:        "https://images.pexels.com/photos/6872158/pexels-photo-6872158.jpeg",
	},
	{
		ID:              "lavagem-detalhada",
		Name:            "Lavagem Detalhada",
		Description:     "Lavagem completa interna e externa com aspiração e limpeza profunda",
		Price:           120.00,
		DurationMinutes: 90,
		ImageURL:        "https://images.pexels.com/photos/16376825/pexels-photo-16376825.jpeg",
	},
	{
		ID:              "revitalizacao-plasticos",
		Name:            "Revitalização dos Plásticos",
		Description:     "Restauração e proteção dos plásticos internos e externos",
		Price:           80.00,
		DurationMinutes: 60,
		ImageURL:        "https://images.pexels.com/photos/5158181/pexels-photo-5158181.jpeg",
	},
	{
		ID:              "higienizacao-estofados",
		Name:            "Higienização Interna nos Estofados",
		Description:     "Limpeza profunda e higienização completa dos estofados com produtos especializados",
		Price:           150.00,
		DurationMinutes: 90,
		ImageURL:        "https://images.pexels.com/photos/16376825/pexels-photo-16376825.jpeg",
	},
}
