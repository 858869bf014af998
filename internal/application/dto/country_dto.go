package dto

// CountryResponse salida de un país.
type CountryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Region      string  `json:"region"`
	FlagURL     *string `json:"flag_url"`
	ContactInfo *string `json:"contact_info"`
}
