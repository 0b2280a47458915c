package models

// CartSelection is one (service, quantity) pair the user intends to book.
type CartSelection struct {
	ServiceID string `bson:"service_id" json:"service_id"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// CartItem is a selection resolved against the catalog. The offering is a
// value copy, so a cart carries the prices it was built with.
type CartItem struct {
	Offering ServiceOffering `bson:"offering" json:"offering"`
	Quantity int             `bson:"quantity" json:"quantity"`
}

// Categories returns the distinct categories present in the cart, in first
// occurrence order.
func Categories(items []CartItem) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		if it.Offering.Category == "" || seen[it.Offering.Category] {
			continue
		}
		seen[it.Offering.Category] = true
		out = append(out, it.Offering.Category)
	}
	return out
}
