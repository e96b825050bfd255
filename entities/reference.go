package entities

// Static reference data imported by the seed. Category and Area carry names
// only; Recipe.Category and Recipe.Area store the name string, not a foreign
// key.

type Ingredient struct {
	ID          string `gorm:"type:varchar(24);primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text;column:description" json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type Category struct {
	ID   string `gorm:"type:varchar(24);primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

type Area struct {
	ID   string `gorm:"type:varchar(24);primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}
