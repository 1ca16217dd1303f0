package dto

type ColumnSettingsDTO struct {
	Visible []string           `json:"visible" validate:"dive,required"`
	Order   []string           `json:"order" validate:"dive,required"`
	Widths  map[string]float64 `json:"widths" validate:"dive,gte=0"`
}
