package entities

type Ingredient struct {
	Name        string `gorm:"primaryKey" json:"name"`
	Description string `gorm:"not null;default:''" json:"description"`
	Type        string `gorm:"not null;default:''" json:"type"`
}
