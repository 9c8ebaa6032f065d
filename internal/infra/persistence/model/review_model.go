package model

import "time"

// ReviewModel is the GORM-specific struct for the 'resenas' table.
type ReviewModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Rating     int       `gorm:"column:calificacion;not null;check:chk_resenas_calificacion,calificacion BETWEEN 1 AND 5"`
	Comment    *string   `gorm:"column:comentario;type:text"`
	CreatedAt  time.Time `gorm:"column:fecha_creacion;not null;autoCreateTime"`
	ProviderID int64     `gorm:"column:proveedor_id;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "resenas"
}
