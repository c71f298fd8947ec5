package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/checkout-addons/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestParseShippingMethod(t *testing.T) {
	testCases := []struct {
		in   string
		want entities.ShippingMethod
	}{
		{in: "zasilkovna>z-points", want: entities.ShippingMethod{Carrier: "zasilkovna", Submethod: "z-points"}},
		{in: "zasilkovna", want: entities.ShippingMethod{Carrier: "zasilkovna"}},
		{in: "flat_rate:3", want: entities.ShippingMethod{Carrier: "flat_rate:3"}},
		{in: "", want: entities.ShippingMethod{}},
		{in: "a>b>c", want: entities.ShippingMethod{Carrier: "a", Submethod: "b>c"}},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got := entities.ParseShippingMethod(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.in, got.String())
		})
	}

	assert.True(t, entities.ParseShippingMethod("zasilkovna>ceska-posta-cz").IsPickupCarrier())
	assert.False(t, entities.ParseShippingMethod("zasilkovnax>z-points").IsPickupCarrier())
	assert.False(t, entities.ParseShippingMethod("").IsPickupCarrier())
}

func TestDirectoryKeyFor(t *testing.T) {
	testCases := []struct {
		name    string
		country string
		method  string
		want    entities.DirectoryKey
	}{
		{name: "paczkomaty", country: "CZ", method: "zasilkovna>pl-paczkomaty", want: entities.DirectoryKey{Country: "PL", Variant: entities.VariantPaczkomaty}},
		{name: "nova posta", country: "", method: "zasilkovna>ua-nova-posta", want: entities.DirectoryKey{Country: "UA", Variant: entities.VariantNovaPosta}},
		{name: "points in slovakia", country: "SK", method: "zasilkovna>z-points", want: entities.DirectoryKey{Country: "SK", Variant: entities.VariantPacketa}},
		{name: "points in bulgaria", country: "bl", method: "zasilkovna>z-points", want: entities.DirectoryKey{Country: "BL", Variant: entities.VariantPacketa}},
		{name: "points in germany", country: "DE", method: "zasilkovna>z-points", want: entities.DefaultDirectoryKey},
		{name: "address delivery", country: "SK", method: "zasilkovna>doruceni-na-adresu-sk", want: entities.DefaultDirectoryKey},
		{name: "no method", country: "HU", method: "", want: entities.DefaultDirectoryKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := entities.DirectoryKeyFor(tc.country, entities.ParseShippingMethod(tc.method))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseAttachmentKey(t *testing.T) {
	testCases := []struct {
		in     string
		want   entities.AttachmentKey
		wantOK bool
	}{
		{in: "email-attachment-first-cs", want: entities.AttachmentKey{Slot: entities.SlotFirst, Locale: entities.LocaleCS}, wantOK: true},
		{in: "email-attachment-second-en", want: entities.AttachmentKey{Slot: entities.SlotSecond, Locale: entities.LocaleEN}, wantOK: true},
		{in: "email-attachment-third-cs"},
		{in: "email-attachment-first-de"},
		{in: "email-attachment-first"},
		{in: "product-email-attachment-cs"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := entities.ParseAttachmentKey(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
			if ok {
				assert.Equal(t, tc.in, got.String())
			}
		})
	}
}

func TestLocaleForCountry(t *testing.T) {
	assert.Equal(t, entities.LocaleCS, entities.LocaleForCountry("CZ"))
	assert.Equal(t, entities.LocaleSK, entities.LocaleForCountry("sk"))
	assert.Equal(t, entities.LocaleEN, entities.LocaleForCountry("PL"))
	assert.Equal(t, entities.LocaleEN, entities.LocaleForCountry(""))
}

func TestEmailExcluded(t *testing.T) {
	for _, id := range []string{"customer_reset_password", "customer_new_account", "new_order", "cancelled_order", "failed_order"} {
		assert.True(t, entities.EmailExcluded(id), id)
	}
	assert.False(t, entities.EmailExcluded("customer_processing_order"))
	assert.False(t, entities.EmailExcluded("customer_invoice"))
}

func TestServiceIDs(t *testing.T) {
	id, ok := entities.ServiceIDFor("ceska-posta-cz")
	assert.True(t, ok)
	assert.Equal(t, "13", id)

	_, ok = entities.ServiceIDFor("z-points")
	assert.False(t, ok)

	assert.True(t, entities.IsServiceID("4159"))
	assert.False(t, entities.IsServiceID("12345"))
}

func TestTrackingURL(t *testing.T) {
	assert.Equal(t, "", entities.TrackingURL(""))
	assert.Equal(t, "https://www.zasilkovna.cz/vyhledavani?det=Z123+4", entities.TrackingURL("Z123 4"))
}
