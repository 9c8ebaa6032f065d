package model

import "time"

// ProviderModel is the GORM-specific struct for the 'proveedores' table.
type ProviderModel struct {
	ID               int64    `gorm:"primaryKey;autoIncrement"`
	Name             string   `gorm:"column:nombre;type:varchar(255);not null;index"`
	ProviderType     string   `gorm:"column:tipo_proveedor;type:varchar(50);not null;index"`
	ShortDescription string   `gorm:"column:descripcion_corta;type:text"`
	Phone            string   `gorm:"column:telefono;type:varchar(30);not null;uniqueIndex"`
	Address          string   `gorm:"column:direccion;type:varchar(255)"`
	City             string   `gorm:"column:ciudad;type:varchar(100)"`
	Latitude         *float64 `gorm:"column:latitud"`
	Longitude        *float64 `gorm:"column:longitud"`
	Available        bool     `gorm:"column:disponible;not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Reviews []ReviewModel `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProviderModel) TableName() string {
	return "proveedores"
}
