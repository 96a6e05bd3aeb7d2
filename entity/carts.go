package entity

// Cart belongs to an actor: a user id in decimal or a guest_ id.
type Cart struct {
	Model
	OwnerID string `gorm:"size:64;uniqueIndex;not null" json:"owner_id"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
