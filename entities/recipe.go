package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// IngredientRef is one entry of a recipe's embedded ingredient list: the id
// of an Ingredient row plus the free-text measure ("2 tbsp", "100g").
type IngredientRef struct {
	ID      string `json:"id"`
	Measure string `json:"measure,omitempty"`
}

// IngredientRefs is stored as a single jsonb column so the ordered list
// stays local to the recipe row and can be queried with the @> containment
// operator.
type IngredientRefs []IngredientRef

func (r IngredientRefs) Value() (driver.Value, error) {
	if r == nil {
		r = IngredientRefs{}
	}
	return json.Marshal(r)
}

func (r *IngredientRefs) Scan(value interface{}) error {
	if value == nil {
		*r = IngredientRefs{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported source type for IngredientRefs")
	}
	return json.Unmarshal(data, r)
}

type Recipe struct {
	ID           string         `gorm:"type:varchar(24);primaryKey" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Instructions string         `gorm:"type:text" json:"instructions"`
	Thumb        string         `json:"thumb"`
	Time         *int           `json:"time"`
	Category     string         `json:"category"`
	Area         string         `json:"area"`
	OwnerID      string         `gorm:"type:varchar(24);not null;index" json:"owner_id"`
	Ingredients  IngredientRefs `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	Timestamp
}

// Favorite records that user_id favorited recipe_id. Uniqueness of the pair
// is enforced by the index rather than by application-level find-or-create.
type Favorite struct {
	ID        string    `gorm:"type:varchar(24);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(24);not null;uniqueIndex:idx_favorites_user_recipe" json:"user_id"`
	RecipeID  string    `gorm:"type:varchar(24);not null;uniqueIndex:idx_favorites_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
}
