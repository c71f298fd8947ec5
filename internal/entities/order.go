package entities

import (
	"strings"
	"time"
)

// Ключи метаданных заказа, которые пишет и читает сервис.
const (
	MetaBranchID       = "zasilkovna_id_pobocky"
	MetaShippingMethod = "zasilkovna_id_dopravy"
	MetaBarcode        = "zasilkovna_barcode"
	MetaCartWeight     = "_cart_weight"
)

type Item struct {
	ProductID int64
	Name      string
	Quantity  int
}

// Order is a snapshot of the host's order. The host stays the owner, we never
// change its identity.
type Order struct {
	OrderID         string
	BillingCountry  string
	ShippingCountry string
	DateCreated     time.Time

	Items []Item
}

// DeliveryCountry returns the shipping country, billing country when shipping is unset.
func (o Order) DeliveryCountry() string {
	if c := strings.TrimSpace(o.ShippingCountry); c != "" {
		return strings.ToUpper(c)
	}
	return strings.ToUpper(strings.TrimSpace(o.BillingCountry))
}

type OrderMeta map[string]string

// Checkout is what the host hands over when an order is finalized.
type Checkout struct {
	Order         Order
	ChosenMethod  string
	Branch        string
	CartWeight    float64
	HasCartWeight bool
}
