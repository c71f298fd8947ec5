package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/checkout-addons/internal/entities"
	mocks "github.com/SergeyBogomolovv/checkout-addons/internal/handler/mocks"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestKafkaHandler_handleMessage(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		value        string
		mockBehavior func(p *mocks.MockCheckoutProcessor)
		wantErr      bool
	}{
		{
			name: "checkout completed",
			value: `{"event_id":"2b0e7c9e-4a55-4d8f-9a35-0f4f7d3f0b0a","type":"checkout_completed",
				"checkout":{"order":{"order_id":"1001","billing_country":"CZ","items":[{"product_id":10,"quantity":1}]},
				"chosen_method":"zasilkovna>z-points","branch":"12345","cart_weight":2}}`,
			mockBehavior: func(p *mocks.MockCheckoutProcessor) {
				p.EXPECT().PersistBranchSelection(mock.Anything, entities.Checkout{
					Order: entities.Order{
						OrderID:        "1001",
						BillingCountry: "CZ",
						Items:          []entities.Item{{ProductID: 10, Quantity: 1}},
					},
					ChosenMethod:  "zasilkovna>z-points",
					Branch:        "12345",
					CartWeight:    2,
					HasCartWeight: true,
				}).Return(nil).Once()
			},
		},
		{
			name:  "parcel registered",
			value: `{"type":"parcel_registered","parcel":{"order_id":"1001","barcode":"Z1234567890"}}`,
			mockBehavior: func(p *mocks.MockCheckoutProcessor) {
				p.EXPECT().SetTrackingBarcode(mock.Anything, "1001", "Z1234567890").Return(nil).Once()
			},
		},
		{
			name:         "broken json",
			value:        `{"type":`,
			mockBehavior: func(_ *mocks.MockCheckoutProcessor) {},
			wantErr:      true,
		},
		{
			name:         "unknown type",
			value:        `{"type":"order_refunded"}`,
			mockBehavior: func(_ *mocks.MockCheckoutProcessor) {},
			wantErr:      true,
		},
		{
			name:         "checkout payload missing",
			value:        `{"type":"checkout_completed"}`,
			mockBehavior: func(_ *mocks.MockCheckoutProcessor) {},
			wantErr:      true,
		},
		{
			name:         "parcel without barcode",
			value:        `{"type":"parcel_registered","parcel":{"order_id":"1001"}}`,
			mockBehavior: func(_ *mocks.MockCheckoutProcessor) {},
			wantErr:      true,
		},
		{
			name:         "invalid event id",
			value:        `{"event_id":"not-a-uuid","type":"parcel_registered","parcel":{"order_id":"1","barcode":"Z1"}}`,
			mockBehavior: func(_ *mocks.MockCheckoutProcessor) {},
			wantErr:      true,
		},
		{
			name:  "processing error",
			value: `{"type":"parcel_registered","parcel":{"order_id":"1001","barcode":"Z1"}}`,
			mockBehavior: func(p *mocks.MockCheckoutProcessor) {
				p.EXPECT().SetTrackingBarcode(mock.Anything, "1001", "Z1").Return(dbError).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			processor := mocks.NewMockCheckoutProcessor(t)
			tc.mockBehavior(processor)

			h := &kafkaHandler{
				logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
				validate:  validator.New(),
				processor: processor,
			}

			err := h.handleMessage(context.Background(), []byte(tc.value))

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
