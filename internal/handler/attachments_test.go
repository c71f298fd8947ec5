package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/checkout-addons/internal/entities"
	"github.com/SergeyBogomolovv/checkout-addons/internal/handler"
	mocks "github.com/SergeyBogomolovv/checkout-addons/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAttachmentHandler_EmailAttachments(t *testing.T) {
	order := entities.Order{
		OrderID:        "1001",
		BillingCountry: "CZ",
		Items:          []entities.Item{{ProductID: 10, Name: "Mýdlo", Quantity: 1}},
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockAttachmentSelector)
		wantStatus   int
		wantBody     string
		want         []string
	}{
		{
			name: "success",
			body: `{"attachments":["/tmp/invoice.pdf"],"email_id":"customer_processing_order",
				"order":{"order_id":"1001","billing_country":"cz","items":[{"product_id":10,"name":"Mýdlo","quantity":1}]}}`,
			mockBehavior: func(svc *mocks.MockAttachmentSelector) {
				svc.EXPECT().
					SelectAttachments(mock.Anything, []string{"/tmp/invoice.pdf"}, "customer_processing_order", order).
					Return([]string{"/tmp/invoice.pdf", "/var/www/vop.pdf"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			want:       []string{"/tmp/invoice.pdf", "/var/www/vop.pdf"},
		},
		{
			name: "missing attachments become empty list",
			body: `{"email_id":"customer_note","order":{"order_id":"1001","billing_country":"CZ"}}`,
			mockBehavior: func(svc *mocks.MockAttachmentSelector) {
				svc.EXPECT().
					SelectAttachments(mock.Anything, []string{}, "customer_note", mock.Anything).
					Return([]string{}, nil).Once()
			},
			wantStatus: http.StatusOK,
			want:       []string{},
		},
		{
			name: "service error returns current list",
			body: `{"attachments":["/tmp/invoice.pdf"],"email_id":"customer_processing_order","order":{"order_id":"1001"}}`,
			mockBehavior: func(svc *mocks.MockAttachmentSelector) {
				svc.EXPECT().
					SelectAttachments(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusOK,
			want:       []string{"/tmp/invoice.pdf"},
		},
		{
			name:         "validation error",
			body:         `{"attachments":[],"order":{"order_id":"1001"}}`,
			mockBehavior: func(_ *mocks.MockAttachmentSelector) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"EmailAttachmentsRequest.EmailID":"required"`,
		},
		{
			name:         "unknown field",
			body:         `{"email_id":"x","order":{"order_id":"1"},"extra":true}`,
			mockBehavior: func(_ *mocks.MockAttachmentSelector) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAttachmentSelector(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewAttachmentHandler(logger, svc)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPost, "/hooks/email-attachments", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp handler.EmailAttachmentsResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, tc.want, resp.Attachments)
			}
		})
	}
}
