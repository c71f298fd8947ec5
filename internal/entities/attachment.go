package entities

import "strings"

type Locale string

const (
	LocaleCS Locale = "cs"
	LocaleSK Locale = "sk"
	LocaleEN Locale = "en"
)

func LocaleForCountry(country string) Locale {
	switch strings.ToUpper(strings.TrimSpace(country)) {
	case "CZ":
		return LocaleCS
	case "SK":
		return LocaleSK
	default:
		return LocaleEN
	}
}

func (l Locale) Valid() bool {
	return l == LocaleCS || l == LocaleSK || l == LocaleEN
}

type AttachmentSlot string

const (
	SlotFirst  AttachmentSlot = "first"
	SlotSecond AttachmentSlot = "second"
)

// AttachmentSlots in the order they are appended to an email.
var AttachmentSlots = []AttachmentSlot{SlotFirst, SlotSecond}

type AttachmentKey struct {
	Slot   AttachmentSlot
	Locale Locale
}

const attachmentKeyPrefix = "email-attachment-"

// ParseAttachmentKey parses stored keys like "email-attachment-first-cs".
func ParseAttachmentKey(s string) (AttachmentKey, bool) {
	rest, ok := strings.CutPrefix(s, attachmentKeyPrefix)
	if !ok {
		return AttachmentKey{}, false
	}
	slot, locale, ok := strings.Cut(rest, "-")
	if !ok {
		return AttachmentKey{}, false
	}

	key := AttachmentKey{Slot: AttachmentSlot(slot), Locale: Locale(locale)}
	if (key.Slot != SlotFirst && key.Slot != SlotSecond) || !key.Locale.Valid() {
		return AttachmentKey{}, false
	}
	return key, true
}

func (k AttachmentKey) String() string {
	return attachmentKeyPrefix + string(k.Slot) + "-" + string(k.Locale)
}

// AttachmentSettings maps a slot and locale to the configured file URL.
type AttachmentSettings map[AttachmentKey]string

func (s AttachmentSettings) File(slot AttachmentSlot, locale Locale) string {
	return strings.TrimSpace(s[AttachmentKey{Slot: slot, Locale: locale}])
}

// ProductAttachmentMetaKey is the product meta field holding a per-locale file URL.
func ProductAttachmentMetaKey(locale Locale) string {
	return "product-email-attachment-" + string(locale)
}

var excludedEmails = map[string]struct{}{
	"customer_reset_password": {},
	"customer_new_account":    {},
	"new_order":               {},
	"cancelled_order":         {},
	"failed_order":            {},
}

// EmailExcluded reports whether attachments must never be added to the email.
func EmailExcluded(emailID string) bool {
	_, ok := excludedEmails[emailID]
	return ok
}
