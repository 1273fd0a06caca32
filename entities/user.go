package entities

type User struct {
	Username  string `gorm:"primaryKey" json:"username"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
	Email     string `gorm:"not null" json:"email"`
	IsAdmin   bool   `gorm:"not null;default:false" json:"isAdmin"`
}

// UserIngredient marks an ingredient as present in a user's pantry.
type UserIngredient struct {
	Username       string `gorm:"primaryKey" json:"username"`
	IngredientName string `gorm:"primaryKey" json:"ingredientName"`

	User       *User       `gorm:"foreignKey:Username;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientName;references:Name;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserIngredient) TableName() string {
	return "users_ingredients"
}

// UserRecipe marks a recipe as favorited by a user.
type UserRecipe struct {
	Username string `gorm:"primaryKey" json:"username"`
	RecipeID int    `gorm:"primaryKey" json:"recipeId"`

	User   *User   `gorm:"foreignKey:Username;constraint:OnDelete:CASCADE" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserRecipe) TableName() string {
	return "users_recipes"
}
