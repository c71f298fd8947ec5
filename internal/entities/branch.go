package entities

import (
	"net/url"
	"strings"
)

// PlaceholderBranch is the value the selector submits until a branch is picked.
const PlaceholderBranch = "default"

const trackingBaseURL = "https://www.zasilkovna.cz/vyhledavani"

type Branch struct {
	Code   string
	Name   string
	Place  string
	Street string
	City   string
	Zip    string
	URL    string
}

type Directory []Branch

func (d Directory) Find(code string) (Branch, bool) {
	for _, b := range d {
		if b.Code == code {
			return b, true
		}
	}
	return Branch{}, false
}

type Variant string

const (
	VariantPacketa    Variant = "packeta"
	VariantPaczkomaty Variant = SubmethodPaczkomaty
	VariantNovaPosta  Variant = SubmethodNovaPosta
)

// DirectoryKey identifies one branch directory.
type DirectoryKey struct {
	Country string
	Variant Variant
}

var DefaultDirectoryKey = DirectoryKey{Country: "CZ", Variant: VariantPacketa}

// Страны, для которых есть собственный список пунктов выдачи.
var packetaCountries = map[string]struct{}{
	"CZ": {}, "SK": {}, "PL": {}, "HU": {}, "RO": {}, "AT": {}, "UA": {}, "BL": {},
}

// DirectoryKeyFor maps a customer country and shipping method onto a directory.
func DirectoryKeyFor(country string, m ShippingMethod) DirectoryKey {
	switch m.Submethod {
	case SubmethodPaczkomaty:
		return DirectoryKey{Country: "PL", Variant: VariantPaczkomaty}
	case SubmethodNovaPosta:
		return DirectoryKey{Country: "UA", Variant: VariantNovaPosta}
	case SubmethodPickupPoints:
		country = strings.ToUpper(strings.TrimSpace(country))
		if _, ok := packetaCountries[country]; ok {
			return DirectoryKey{Country: country, Variant: VariantPacketa}
		}
	}
	return DefaultDirectoryKey
}

// Address delivery submethods and their service ids. Orders shipped this way
// store the service id in place of a branch code.
var addressServices = map[string]string{
	"ceska-posta-cz":        "13",
	"doruceni-na-adresu-cz": "106",
	"doruceni-na-adresu-sk": "131",
	"slovenska-posta-sk":    "16",
	"doruceni-na-adresu-pl": "272",
	"doruceni-na-adresu-hu": "4159",
	"doruceni-na-adresu-ro": "762",
}

func ServiceIDFor(submethod string) (string, bool) {
	id, ok := addressServices[submethod]
	return id, ok
}

// IsServiceID reports whether code stands for direct-to-address delivery.
func IsServiceID(code string) bool {
	for _, id := range addressServices {
		if id == code {
			return true
		}
	}
	return false
}

// WidgetLocale returns the country and language the pickup widget is opened with.
func WidgetLocale(country string) (string, string) {
	switch strings.ToUpper(strings.TrimSpace(country)) {
	case "SK":
		return "sk", "sk"
	case "PL":
		return "pl", "pl"
	case "HU":
		return "hu", "hu"
	case "RO":
		return "ro", "ro"
	case "BG":
		return "bg", "bg"
	default:
		return "cz", "cs"
	}
}

func TrackingURL(barcode string) string {
	if barcode == "" {
		return ""
	}
	return trackingBaseURL + "?det=" + url.QueryEscape(barcode)
}

type BranchInfo struct {
	OrderID        string
	ShippingMethod string
	// nil for direct-to-address delivery
	Branch         *Branch
	DirectDelivery bool
	Barcode        string
	TrackingURL    string
}

type SelectorMode string

const (
	SelectorNone    SelectorMode = "none"
	SelectorWidget  SelectorMode = "widget"
	SelectorList    SelectorMode = "list"
	SelectorService SelectorMode = "service"
)

type AddressService struct {
	ServiceID string
	Label     string
	IconURL   string
}

// PickupSelector is the content of the checkout row for the chosen method.
type PickupSelector struct {
	Mode        SelectorMode
	Method      ShippingMethod
	Placeholder string

	// widget
	APIKey         string
	WidgetCountry  string
	WidgetLanguage string
	IconURL        string

	// list
	Branches Directory

	// service
	ServiceID      string
	AddressService *AddressService
}
