package entity

import "encoding/json"

// The admin console addresses menu items, restaurants, offers and users by
// "_id". These rows serialize it next to "id".

func (m MenuItem) MarshalJSON() ([]byte, error) {
	type row MenuItem
	return json.Marshal(struct {
		row
		DocID uint `json:"_id"`
	}{row(m), m.ID})
}

func (r Restaurant) MarshalJSON() ([]byte, error) {
	type row Restaurant
	return json.Marshal(struct {
		row
		DocID uint `json:"_id"`
	}{row(r), r.ID})
}

func (o Offer) MarshalJSON() ([]byte, error) {
	type row Offer
	return json.Marshal(struct {
		row
		DocID uint `json:"_id"`
	}{row(o), o.ID})
}

func (u User) MarshalJSON() ([]byte, error) {
	type row User
	return json.Marshal(struct {
		row
		DocID uint `json:"_id"`
	}{row(u), u.ID})
}
