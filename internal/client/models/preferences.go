package models

// DefaultShippingHour is the delivery hour offered when the user has none.
const DefaultShippingHour = 8

// Preferences are the user's chosen news categories and delivery hour.
// An empty CategoryIDs means nothing has been configured yet.
type Preferences struct {
	UserID       UserID `json:"userId"`
	CategoryIDs  []int  `json:"categoryIds"`
	ShippingHour *int   `json:"shippingHour,omitempty"`
}

// HasCategories reports whether at least one category is selected.
func (p Preferences) HasCategories() bool {
	return len(p.CategoryIDs) > 0
}

// Hour returns the delivery hour or DefaultShippingHour when unset.
func (p Preferences) Hour() int {
	if p.ShippingHour == nil {
		return DefaultShippingHour
	}
	return *p.ShippingHour
}

// UpsertPreferencesRequest is the body of the preferences upsert call.
type UpsertPreferencesRequest struct {
	UserID       UserID `json:"userId"`
	CategoryIDs  []int  `json:"categoryIds"`
	ShippingHour *int   `json:"shippingHour,omitempty"`
}
