package entities

type Recipe struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Instructions string `gorm:"type:text;not null" json:"instructions"`
	Category     string `gorm:"not null;default:''" json:"category"`
	Area         string `gorm:"not null;default:''" json:"area"`
}

// RecipeIngredient links a recipe to an ingredient with a free-text amount.
// The composite primary key is the duplicate guard for concurrent adds.
type RecipeIngredient struct {
	RecipeID         int    `gorm:"primaryKey" json:"recipeId"`
	IngredientName   string `gorm:"primaryKey" json:"ingredientName"`
	IngredientAmount string `gorm:"not null" json:"ingredientAmount"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientName;references:Name;constraint:OnDelete:CASCADE" json:"-"`
}
