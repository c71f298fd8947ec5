package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/checkout-addons/internal/entities"
	"github.com/SergeyBogomolovv/checkout-addons/internal/service"
	mocks "github.com/SergeyBogomolovv/checkout-addons/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAttachmentService_SelectAttachments(t *testing.T) {
	type MockBehavior func(settings *mocks.MockSettings, media *mocks.MockMediaRepo)

	czOrder := entities.Order{
		OrderID:        "1001",
		BillingCountry: "CZ",
		Items: []entities.Item{
			{ProductID: 10, Name: "Mýdlo", Quantity: 1},
			{ProductID: 11, Name: "Šampon", Quantity: 2},
		},
	}
	globals := entities.AttachmentSettings{
		{Slot: entities.SlotFirst, Locale: entities.LocaleCS}:  "https://shop.cz/uploads/obchodni-podminky.pdf",
		{Slot: entities.SlotSecond, Locale: entities.LocaleCS}: "https://shop.cz/uploads/reklamace.pdf",
		{Slot: entities.SlotFirst, Locale: entities.LocaleEN}:  "https://shop.cz/uploads/terms.pdf",
	}
	dbError := errors.New("db error")

	testCases := []struct {
		name           string
		emailID        string
		order          entities.Order
		current        []string
		skipUnresolved bool
		mockBehavior   MockBehavior
		want           []string
		wantErr        error
	}{
		{
			name:    "excluded email keeps list",
			emailID: "customer_reset_password",
			order:   czOrder,
			current: []string{"/tmp/invoice.pdf"},
			mockBehavior: func(_ *mocks.MockSettings, _ *mocks.MockMediaRepo) {
			},
			want: []string{"/tmp/invoice.pdf"},
		},
		{
			name:    "czech order with globals and product file",
			emailID: "customer_processing_order",
			order:   czOrder,
			current: []string{"/tmp/invoice.pdf"},
			mockBehavior: func(settings *mocks.MockSettings, media *mocks.MockMediaRepo) {
				settings.EXPECT().EmailAttachments(mock.Anything).Return(globals, nil).Once()
				media.EXPECT().AttachmentPathByURL(mock.Anything, "https://shop.cz/uploads/obchodni-podminky.pdf").
					Return("/var/www/uploads/obchodni-podminky.pdf", nil).Once()
				media.EXPECT().AttachmentPathByURL(mock.Anything, "https://shop.cz/uploads/reklamace.pdf").
					Return("/var/www/uploads/reklamace.pdf", nil).Once()
				media.EXPECT().ProductMeta(mock.Anything, int64(10), "product-email-attachment-cs").
					Return("https://shop.cz/uploads/mydlo-navod.pdf", nil).Once()
				media.EXPECT().ProductMeta(mock.Anything, int64(11), "product-email-attachment-cs").
					Return("", nil).Once()
				media.EXPECT().AttachmentPathByURL(mock.Anything, "https://shop.cz/uploads/mydlo-navod.pdf").
					Return("/var/www/uploads/mydlo-navod.pdf", nil).Once()
			},
			want: []string{
				"/tmp/invoice.pdf",
				"/var/www/uploads/obchodni-podminky.pdf",
				"/var/www/uploads/reklamace.pdf",
				"/var/www/uploads/mydlo-navod.pdf",
			},
		},
		{
			name:    "other country uses english files",
			emailID: "customer_completed_order",
			order:   entities.Order{OrderID: "1002", BillingCountry: "DE"},
			mockBehavior: func(settings *mocks.MockSettings, media *mocks.MockMediaRepo) {
				settings.EXPECT().EmailAttachments(mock.Anything).Return(globals, nil).Once()
				media.EXPECT().AttachmentPathByURL(mock.Anything, "https://shop.cz/uploads/terms.pdf").
					Return("/var/www/uploads/terms.pdf", nil).Once()
			},
			want: []string{"/var/www/uploads/terms.pdf"},
		},
		{
			name:    "slovak order without configured files",
			emailID: "customer_completed_order",
			order:   entities.Order{OrderID: "1003", BillingCountry: "SK", Items: []entities.Item{{ProductID: 7}}},
			current: []string{},
			mockBehavior: func(settings *mocks.MockSettings, media *mocks.MockMediaRepo) {
				settings.EXPECT().EmailAttachments(mock.Anything).Return(globals, nil).Once()
				media.EXPECT().ProductMeta(mock.Anything, int64(7), "product-email-attachment-sk").
					Return("", nil).Once()
			},
			want: []string{},
		},
		{
			name:    "unresolved url appends empty path",
			emailID: "customer_processing_order",
			order:   entities.Order{OrderID: "1004", BillingCountry: "CZ"},
			mockBehavior: func(settings *mocks.MockSettings, media *mocks.MockMediaRepo) {
				settings.EXPECT().EmailAttachments(mock.Anything).Return(globals, nil).Once()
				media.EXPECT().AttachmentPathByURL(mock.Anything, "https://shop.cz/uploads/obchodni-podminky.pdf").
					Return("", entities.ErrAttachmentNotFound).Once()
				media.EXPECT().AttachmentPathByURL(mock.Anything, "https://shop.cz/uploads/reklamace.pdf").
					Return("/var/www/uploads/reklamace.pdf", nil).Once()
			},
			want: []string{"", "/var/www/uploads/reklamace.pdf"},
		},
		{
			name:           "unresolved url skipped",
			emailID:        "customer_processing_order",
			order:          entities.Order{OrderID: "1005", BillingCountry: "CZ"},
			skipUnresolved: true,
			mockBehavior: func(settings *mocks.MockSettings, media *mocks.MockMediaRepo) {
				settings.EXPECT().EmailAttachments(mock.Anything).Return(globals, nil).Once()
				media.EXPECT().AttachmentPathByURL(mock.Anything, "https://shop.cz/uploads/obchodni-podminky.pdf").
					Return("", entities.ErrAttachmentNotFound).Once()
				media.EXPECT().AttachmentPathByURL(mock.Anything, "https://shop.cz/uploads/reklamace.pdf").
					Return("/var/www/uploads/reklamace.pdf", nil).Once()
			},
			want: []string{"/var/www/uploads/reklamace.pdf"},
		},
		{
			name:    "settings error returns current",
			emailID: "customer_processing_order",
			order:   czOrder,
			current: []string{"/tmp/invoice.pdf"},
			mockBehavior: func(settings *mocks.MockSettings, _ *mocks.MockMediaRepo) {
				settings.EXPECT().EmailAttachments(mock.Anything).Return(nil, dbError).Once()
			},
			want:    []string{"/tmp/invoice.pdf"},
			wantErr: dbError,
		},
		{
			name:    "media error returns current",
			emailID: "customer_processing_order",
			order:   entities.Order{OrderID: "1006", BillingCountry: "CZ"},
			current: []string{"/tmp/invoice.pdf"},
			mockBehavior: func(settings *mocks.MockSettings, media *mocks.MockMediaRepo) {
				settings.EXPECT().EmailAttachments(mock.Anything).Return(globals, nil).Once()
				media.EXPECT().AttachmentPathByURL(mock.Anything, mock.Anything).
					Return("", dbError).Once()
			},
			want:    []string{"/tmp/invoice.pdf"},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings := mocks.NewMockSettings(t)
			media := mocks.NewMockMediaRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(settings, media)

			svc := service.NewAttachmentService(logger, settings, media, tc.skipUnresolved)

			got, err := svc.SelectAttachments(context.Background(), tc.current, tc.emailID, tc.order)

			assert.Equal(t, tc.want, got)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAttachmentService_SelectAttachments_DoesNotModifyCurrent(t *testing.T) {
	settings := mocks.NewMockSettings(t)
	media := mocks.NewMockMediaRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	settings.EXPECT().EmailAttachments(mock.Anything).Return(entities.AttachmentSettings{
		{Slot: entities.SlotFirst, Locale: entities.LocaleCS}: "https://shop.cz/a.pdf",
	}, nil).Once()
	media.EXPECT().AttachmentPathByURL(mock.Anything, "https://shop.cz/a.pdf").Return("/a.pdf", nil).Once()

	current := make([]string, 1, 10)
	current[0] = "/invoice.pdf"

	svc := service.NewAttachmentService(logger, settings, media, false)
	got, err := svc.SelectAttachments(context.Background(), current, "customer_invoice", entities.Order{BillingCountry: "CZ"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"/invoice.pdf", "/a.pdf"}, got)
	assert.Equal(t, []string{"/invoice.pdf"}, current)
	assert.Equal(t, "", current[:2][1])
}
