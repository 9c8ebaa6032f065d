// Package entity contains the core business objects of the project.
package entity

import "time"

// Provider is a tourism business listed in the directory (hotel, transport, guide, ...).
type Provider struct {
	ID               int64     // System-assigned identifier, immutable once set.
	Name             string    // Display name.
	ProviderType     string    // Free tag: hotel, transporte, guia, atraccion, ...
	ShortDescription string    // One-paragraph pitch shown on cards and the map.
	Phone            string    // Contact phone, unique across providers.
	Address          string    // Street address.
	City             string    // Municipality.
	Latitude         *float64  // Optional; expected together with Longitude.
	Longitude        *float64  // Optional; expected together with Latitude.
	Available        bool      // Availability toggle, true on creation.
	Reviews          []Review  // Loaded only for the detail view.
	CreatedAt        time.Time // Bookkeeping only.
	UpdatedAt        time.Time // Bookkeeping only.
}

// ProviderSummary is the reduced projection used by list endpoints.
type ProviderSummary struct {
	ID           int64    `json:"id"`
	Name         string   `json:"nombre"`
	ProviderType string   `json:"tipo_proveedor"`
	City         string   `json:"ciudad"`
	Available    bool     `json:"disponible"`
	Latitude     *float64 `json:"latitud"`
	Longitude    *float64 `json:"longitud"`
}

// ProviderDetail is the full projection including nested reviews.
type ProviderDetail struct {
	ProviderSummary

	ShortDescription string   `json:"descripcion_corta"`
	Phone            string   `json:"telefono"`
	Address          string   `json:"direccion"`
	Reviews          []Review `json:"reseñas"`
}

// MapProvider is the projection consumed by geospatial clients.
type MapProvider struct {
	ID               int64    `json:"id"`
	Name             string   `json:"nombre"`
	ProviderType     string   `json:"tipo_proveedor"`
	Latitude         *float64 `json:"latitud"`
	Longitude        *float64 `json:"longitud"`
	ShortDescription string   `json:"descripcion_corta"`
}

// Summary projects the provider to its list view.
func (p *Provider) Summary() *ProviderSummary {
	return &ProviderSummary{
		ID:           p.ID,
		Name:         p.Name,
		ProviderType: p.ProviderType,
		City:         p.City,
		Available:    p.Available,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
	}
}

// Detail projects the provider to its detail view. Reviews is never nil.
func (p *Provider) Detail() *ProviderDetail {
	reviews := p.Reviews
	if reviews == nil {
		reviews = []Review{}
	}

	return &ProviderDetail{
		ProviderSummary:  *p.Summary(),
		ShortDescription: p.ShortDescription,
		Phone:            p.Phone,
		Address:          p.Address,
		Reviews:          reviews,
	}
}

// MapView projects the provider to its map view.
func (p *Provider) MapView() *MapProvider {
	return &MapProvider{
		ID:               p.ID,
		Name:             p.Name,
		ProviderType:     p.ProviderType,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		ShortDescription: p.ShortDescription,
	}
}

// HasCoordinates reports whether both coordinates are set.
func (m *MapProvider) HasCoordinates() bool {
	return m.Latitude != nil && m.Longitude != nil
}
