package catalog

import "encoding/json"

type Order struct {
	ID                string      `json:"id"`
	Status            string      `json:"status"`
	TrackingNumber    string      `json:"trackingNumber,omitempty"`
	Carrier           string      `json:"carrier,omitempty"`
	EstimatedDelivery string      `json:"estimatedDelivery,omitempty"`
	ShippedDate       string      `json:"shippedDate,omitempty"`
	DeliveredDate     string      `json:"deliveredDate,omitempty"`
	DeliveredTime     string      `json:"deliveredTime,omitempty"`
	Items             []OrderItem `json:"items"`
	Total             float64     `json:"total"`
	Customer          Customer    `json:"customer"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	SKU      string  `json:"sku"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	RestockDate string   `json:"restockDate,omitempty"`
}

// InStock is derived from the stock count so the flag and the count can
// never disagree.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// MarshalJSON keeps the legacy inStock field on the wire while deriving its
// value from the stock count.
func (p Product) MarshalJSON() ([]byte, error) {
	type product Product
	return json.Marshal(struct {
		product
		InStock bool `json:"inStock"`
	}{product(p), p.InStock()})
}

type Policies struct {
	Shipping ShippingPolicy `json:"shipping"`
	Returns  ReturnsPolicy  `json:"returns"`
	Contact  ContactPolicy  `json:"contact"`
}

type ShippingPolicy struct {
	Standard      string   `json:"standard"`
	Express       string   `json:"express"`
	International string   `json:"international"`
	FreeThreshold int      `json:"freeThreshold"`
	Carriers      []string `json:"carriers"`
}

type ReturnsPolicy struct {
	Period     int    `json:"period"`
	Condition  string `json:"condition"`
	Process    string `json:"process"`
	RefundTime string `json:"refundTime"`
}

type ContactPolicy struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Hours    string `json:"hours"`
	LiveChat string `json:"liveChat"`
}
