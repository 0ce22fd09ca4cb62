package models

// StoreAddress is one saved delivery address, managed through /api/stores.
type StoreAddress struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone,omitempty"`
}
