package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PickupCarrier is the carrier prefix of every pickup-point shipping method.
const PickupCarrier = "zasilkovna"

const FreeShippingMethodID = "free_shipping"

// Submethods of the pickup carrier.
const (
	SubmethodPickupPoints = "z-points"
	SubmethodPaczkomaty   = "pl-paczkomaty"
	SubmethodNovaPosta    = "ua-nova-posta"
)

// ShippingMethod is a parsed "carrier>submethod" identifier.
type ShippingMethod struct {
	Carrier   string
	Submethod string
}

func ParseShippingMethod(s string) ShippingMethod {
	carrier, submethod, _ := strings.Cut(s, ">")
	return ShippingMethod{Carrier: carrier, Submethod: submethod}
}

func (m ShippingMethod) String() string {
	if m.Submethod == "" {
		return m.Carrier
	}
	return m.Carrier + ">" + m.Submethod
}

func (m ShippingMethod) IsPickupCarrier() bool {
	return m.Carrier != "" && m.Carrier == PickupCarrier
}

type FreeShippingPolicy string

const (
	FreeShippingUnset   FreeShippingPolicy = ""
	FreeShippingDefault FreeShippingPolicy = "default"
	FreeShippingAll     FreeShippingPolicy = "all"
	// FreeShippingCarrier zeroes only the pickup carrier's rates.
	FreeShippingCarrier FreeShippingPolicy = "zasilkovna"
)

type Rate struct {
	ID       string
	MethodID string
	Label    string
	Cost     decimal.Decimal
	Tax      decimal.Decimal
	// nil means the rate carries no tax breakdown
	Taxes map[string]decimal.Decimal
}

func (r Rate) Method() ShippingMethod {
	return ParseShippingMethod(r.ID)
}

func (r Rate) Zeroed() Rate {
	r.Cost = decimal.Zero
	r.Tax = decimal.Zero
	r.Taxes = nil
	return r
}

func (r Rate) Clone() Rate {
	if r.Taxes != nil {
		taxes := make(map[string]decimal.Decimal, len(r.Taxes))
		for k, v := range r.Taxes {
			taxes[k] = v
		}
		r.Taxes = taxes
	}
	return r
}

// Package is the host's shipping package context, passed through to rate filters.
type Package struct {
	DestinationCountry  string
	DestinationPostcode string
	ContentsCost        decimal.Decimal
}

type ShippingSettings struct {
	FreeShipping FreeShippingPolicy
	APIKey       string
	// icon URL by upper-case country code, "" key is the default icon
	Icons map[string]string
	// service label by service id
	ServiceLabels map[string]string
	// icon URL by address-delivery submethod
	ServiceIcons map[string]string
}

func (s ShippingSettings) Icon(country string) string {
	return s.Icons[strings.ToUpper(country)]
}
