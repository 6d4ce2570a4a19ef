package wcdomain

// Order é o formato de pedido retornado pela API REST v3 do WooCommerce.
// Valores monetários chegam como strings decimais.
type Order struct {
	ID          int        `json:"id"`
	DateCreated string     `json:"date_created"`
	Status      string     `json:"status"`
	Total       string     `json:"total"`
	Billing     Billing    `json:"billing,omitempty"`
	LineItems   []LineItem `json:"line_items"`
}

type Billing struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

type LineItem struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Quantity int        `json:"quantity"`
	Total    string     `json:"total"`
	MetaData []MetaData `json:"meta_data,omitempty"`
}

type MetaData struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DateCreatedLayout é o formato de data usado pelo WooCommerce (sem timezone,
// na hora local da loja)
const DateCreatedLayout = "2006-01-02T15:04:05"
