package usecase

// Actor identidad resuelta del solicitante (estado actual en DB, no claims
// del token). CountryID vacío si no tiene país asignado.
type Actor struct {
	ID        string
	Role      string
	CountryID string
}
