package entities

type Testimonial struct {
	ID          string `gorm:"type:varchar(24);primaryKey" json:"id"`
	OwnerID     string `gorm:"type:varchar(24);not null;index" json:"owner_id"`
	Testimonial string `gorm:"type:text;not null" json:"testimonial"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	Timestamp
}
