package handler

import (
	"strings"
	"time"

	"github.com/SergeyBogomolovv/checkout-addons/internal/entities"
	"github.com/shopspring/decimal"
)

// Order снимок заказа, который присылает магазин
type Order struct {
	OrderID         string    `json:"order_id" validate:"required"`
	BillingCountry  string    `json:"billing_country,omitempty" validate:"omitempty,len=2"`
	ShippingCountry string    `json:"shipping_country,omitempty" validate:"omitempty,len=2"`
	DateCreated     time.Time `json:"date_created,omitempty"`
	Items           []Item    `json:"items,omitempty" validate:"dive"`
}

// Item позиция заказа
type Item struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Name      string `json:"name,omitempty"`
	Quantity  int    `json:"quantity,omitempty" validate:"gte=0"`
}

// EmailAttachmentsRequest вызов фильтра вложений письма
type EmailAttachmentsRequest struct {
	Attachments []string `json:"attachments"`
	EmailID     string   `json:"email_id" validate:"required"`
	Order       Order    `json:"order" validate:"required"`
}

type EmailAttachmentsResponse struct {
	Attachments []string `json:"attachments"`
}

// Rate тариф доставки
type Rate struct {
	ID string `json:"id" validate:"required"`
	// если не задан, берётся часть id до ":"
	MethodID string                     `json:"method_id,omitempty"`
	Label    string                     `json:"label,omitempty"`
	Cost     decimal.Decimal            `json:"cost" swaggertype:"string" example:"89.00"`
	Tax      decimal.Decimal            `json:"tax" swaggertype:"string" example:"0"`
	Taxes    map[string]decimal.Decimal `json:"taxes,omitempty" swaggertype:"object"`
}

// Package контекст посылки, передаётся в фильтры тарифов
type Package struct {
	DestinationCountry  string          `json:"destination_country,omitempty"`
	DestinationPostcode string          `json:"destination_postcode,omitempty"`
	ContentsCost        decimal.Decimal `json:"contents_cost" swaggertype:"string"`
}

type PackageRatesRequest struct {
	Rates   []Rate  `json:"rates" validate:"dive"`
	Package Package `json:"package"`
}

type PackageRatesResponse struct {
	Rates []Rate `json:"rates"`
}

// Branch пункт выдачи
type Branch struct {
	Code   string `json:"code"`
	Name   string `json:"name,omitempty"`
	Place  string `json:"place,omitempty"`
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	Zip    string `json:"zip,omitempty"`
	URL    string `json:"url,omitempty"`
}

type BranchesResponse struct {
	Branches []Branch `json:"branches"`
}

type AddressService struct {
	ServiceID string `json:"service_id"`
	Label     string `json:"label,omitempty"`
	IconURL   string `json:"icon_url,omitempty"`
}

// PickupSelector содержимое строки выбора пункта выдачи в чекауте
type PickupSelector struct {
	Mode           string          `json:"mode" enums:"none,widget,list,service"`
	Method         string          `json:"method"`
	Placeholder    string          `json:"placeholder"`
	APIKey         string          `json:"api_key,omitempty"`
	WidgetCountry  string          `json:"widget_country,omitempty"`
	WidgetLanguage string          `json:"widget_language,omitempty"`
	IconURL        string          `json:"icon_url,omitempty"`
	Branches       []Branch        `json:"branches,omitempty"`
	ServiceID      string          `json:"service_id,omitempty"`
	AddressService *AddressService `json:"address_service,omitempty"`
}

type ValidateCheckoutRequest struct {
	ChosenMethod  string `json:"chosen_method"`
	Branch        string `json:"branch"`
	NeedsShipping bool   `json:"needs_shipping"`
}

// BranchSelection выбор пункта выдачи при оформлении заказа
type BranchSelection struct {
	Order        Order    `json:"order" validate:"required"`
	ChosenMethod string   `json:"chosen_method"`
	Branch       string   `json:"branch"`
	CartWeight   *float64 `json:"cart_weight,omitempty" validate:"omitempty,gte=0"`
}

type BranchInfo struct {
	OrderID        string  `json:"order_id"`
	ShippingMethod string  `json:"shipping_method,omitempty"`
	Branch         *Branch `json:"branch,omitempty"`
	DirectDelivery bool    `json:"direct_delivery"`
	Barcode        string  `json:"barcode,omitempty"`
	TrackingURL    string  `json:"tracking_url,omitempty"`
}

func OrderJSONToEntity(o Order) entities.Order {
	items := make([]entities.Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, entities.Item{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
		})
	}

	return entities.Order{
		OrderID:         o.OrderID,
		BillingCountry:  strings.ToUpper(o.BillingCountry),
		ShippingCountry: strings.ToUpper(o.ShippingCountry),
		DateCreated:     o.DateCreated,
		Items:           items,
	}
}

func RateJSONToEntity(r Rate) entities.Rate {
	methodID := r.MethodID
	if methodID == "" {
		methodID, _, _ = strings.Cut(r.ID, ":")
	}
	return entities.Rate{
		ID:       r.ID,
		MethodID: methodID,
		Label:    r.Label,
		Cost:     r.Cost,
		Tax:      r.Tax,
		Taxes:    r.Taxes,
	}
}

func RateEntityToJSON(r entities.Rate) Rate {
	return Rate{
		ID:       r.ID,
		MethodID: r.MethodID,
		Label:    r.Label,
		Cost:     r.Cost,
		Tax:      r.Tax,
		Taxes:    r.Taxes,
	}
}

func PackageJSONToEntity(p Package) entities.Package {
	return entities.Package{
		DestinationCountry:  strings.ToUpper(p.DestinationCountry),
		DestinationPostcode: p.DestinationPostcode,
		ContentsCost:        p.ContentsCost,
	}
}

func BranchEntityToJSON(b entities.Branch) Branch {
	return Branch{
		Code:   b.Code,
		Name:   b.Name,
		Place:  b.Place,
		Street: b.Street,
		City:   b.City,
		Zip:    b.Zip,
		URL:    b.URL,
	}
}

func DirectoryEntityToJSON(d entities.Directory) []Branch {
	branches := make([]Branch, 0, len(d))
	for _, b := range d {
		branches = append(branches, BranchEntityToJSON(b))
	}
	return branches
}

func PickupSelectorEntityToJSON(s entities.PickupSelector) PickupSelector {
	res := PickupSelector{
		Mode:           string(s.Mode),
		Method:         s.Method.String(),
		Placeholder:    s.Placeholder,
		APIKey:         s.APIKey,
		WidgetCountry:  s.WidgetCountry,
		WidgetLanguage: s.WidgetLanguage,
		IconURL:        s.IconURL,
		ServiceID:      s.ServiceID,
	}
	if len(s.Branches) > 0 {
		res.Branches = DirectoryEntityToJSON(s.Branches)
	}
	if s.AddressService != nil {
		res.AddressService = &AddressService{
			ServiceID: s.AddressService.ServiceID,
			Label:     s.AddressService.Label,
			IconURL:   s.AddressService.IconURL,
		}
	}
	return res
}

func CheckoutJSONToEntity(orderID string, s BranchSelection) entities.Checkout {
	order := OrderJSONToEntity(s.Order)
	if orderID != "" {
		order.OrderID = orderID
	}

	checkout := entities.Checkout{
		Order:        order,
		ChosenMethod: s.ChosenMethod,
		Branch:       s.Branch,
	}
	if s.CartWeight != nil {
		checkout.CartWeight = *s.CartWeight
		checkout.HasCartWeight = true
	}
	return checkout
}

func BranchInfoEntityToJSON(i entities.BranchInfo) BranchInfo {
	res := BranchInfo{
		OrderID:        i.OrderID,
		ShippingMethod: i.ShippingMethod,
		DirectDelivery: i.DirectDelivery,
		Barcode:        i.Barcode,
		TrackingURL:    i.TrackingURL,
	}
	if i.Branch != nil {
		b := BranchEntityToJSON(*i.Branch)
		res.Branch = &b
	}
	return res
}

const (
	EventCheckoutCompleted = "checkout_completed"
	EventParcelRegistered  = "parcel_registered"
)

// CheckoutEvent сообщение из топика событий магазина
type CheckoutEvent struct {
	EventID    string           `json:"event_id,omitempty" validate:"omitempty,uuid"`
	Type       string           `json:"type" validate:"required,oneof=checkout_completed parcel_registered"`
	OccurredAt time.Time        `json:"occurred_at"`
	Checkout   *BranchSelection `json:"checkout,omitempty" validate:"required_if=Type checkout_completed"`
	Parcel     *Parcel          `json:"parcel,omitempty" validate:"required_if=Type parcel_registered"`
}

// Parcel посылка, зарегистрированная у перевозчика
type Parcel struct {
	OrderID string `json:"order_id" validate:"required"`
	Barcode string `json:"barcode" validate:"required"`
}
