package handler_test

import (
	"context"
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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serveShipping(t *testing.T, svc *mocks.MockShippingService, method, target, body string) (int, string) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewShippingHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

func TestShippingHandler_PackageRates(t *testing.T) {
	body := `{"rates":[
		{"id":"flat_rate:1","label":"Kurýr","cost":"100","tax":"21","taxes":{"1":"21"}},
		{"id":"free_shipping:2","cost":0,"tax":0},
		{"id":"zasilkovna>z-points","method_id":"zasilkovna","cost":"89.00","tax":"0"}
	],"package":{"destination_country":"cz","contents_cost":"1500"}}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockShippingService)
		wantStatus   int
		wantIDs      []string
	}{
		{
			name: "success",
			body: body,
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().
					AdjustRates(mock.Anything, mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, rates []entities.Rate, pkg entities.Package) ([]entities.Rate, error) {
						assert.Equal(t, "flat_rate", rates[0].MethodID)
						assert.Equal(t, "free_shipping", rates[1].MethodID)
						assert.Equal(t, "zasilkovna", rates[2].MethodID)
						assert.True(t, rates[2].Cost.Equal(decimal.NewFromInt(89)))
						assert.Equal(t, "CZ", pkg.DestinationCountry)
						return []entities.Rate{rates[0], rates[2].Zeroed()}, nil
					}).Once()
			},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"flat_rate:1", "zasilkovna>z-points"},
		},
		{
			name: "service error keeps rates",
			body: body,
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().
					AdjustRates(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"flat_rate:1", "free_shipping:2", "zasilkovna>z-points"},
		},
		{
			name:         "rate without id",
			body:         `{"rates":[{"cost":"10"}]}`,
			mockBehavior: func(_ *mocks.MockShippingService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockShippingService(t)
			tc.mockBehavior(svc)

			status, resBody := serveShipping(t, svc, http.MethodPost, "/hooks/package-rates", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var resp handler.PackageRatesResponse
			require.NoError(t, json.Unmarshal([]byte(resBody), &resp))
			ids := make([]string, 0, len(resp.Rates))
			for _, r := range resp.Rates {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestShippingHandler_ValidateCheckout(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "valid", wantStatus: http.StatusNoContent},
		{
			name:       "missing branch",
			err:        entities.ErrMissingBranch,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"code":"missing_branch"`,
		},
		{
			name:       "placeholder",
			err:        entities.ErrPlaceholderBranch,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `Prosíme, zvolte pobočku pro vybranou dopravu.`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockShippingService(t)
			svc.EXPECT().ValidateBranchSelection("zasilkovna>z-points", "default", true).Return(tc.err).Once()

			status, body := serveShipping(t, svc, http.MethodPost, "/checkout/validate",
				`{"chosen_method":"zasilkovna>z-points","branch":"default","needs_shipping":true}`)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestShippingHandler_PickupSelector(t *testing.T) {
	svc := mocks.NewMockShippingService(t)
	svc.EXPECT().PickupSelector(mock.Anything, "PL", "zasilkovna>pl-paczkomaty").Return(entities.PickupSelector{
		Mode:        entities.SelectorList,
		Method:      entities.ShippingMethod{Carrier: "zasilkovna", Submethod: "pl-paczkomaty"},
		Placeholder: "default",
		Branches:    entities.Directory{{Code: "KRA01M", Name: "Kraków"}},
	}, nil).Once()

	status, body := serveShipping(t, svc, http.MethodGet,
		"/checkout/pickup-selector?country=PL&method=zasilkovna%3Epl-paczkomaty", "")

	assert.Equal(t, http.StatusOK, status)

	var resp handler.PickupSelector
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "list", resp.Mode)
	assert.Equal(t, "zasilkovna>pl-paczkomaty", resp.Method)
	assert.Equal(t, []handler.Branch{{Code: "KRA01M", Name: "Kraków"}}, resp.Branches)
}

func TestShippingHandler_Branches(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockShippingService(t)
		svc.EXPECT().
			ResolveBranches(mock.Anything, "SK", entities.ShippingMethod{Carrier: "zasilkovna", Submethod: "z-points"}).
			Return(entities.Directory{{Code: "1"}, {Code: "2"}}, nil).Once()

		status, body := serveShipping(t, svc, http.MethodGet, "/checkout/branches?country=SK&method=zasilkovna%3Ez-points", "")

		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"branches":[{"code":"1"},{"code":"2"}]}`, body)
	})

	t.Run("method required", func(t *testing.T) {
		svc := mocks.NewMockShippingService(t)

		status, _ := serveShipping(t, svc, http.MethodGet, "/checkout/branches?country=SK", "")

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestShippingHandler_SaveBranch(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockShippingService)
		wantStatus   int
	}{
		{
			name: "success",
			body: `{"order":{"billing_country":"CZ","shipping_country":"SK"},"chosen_method":"zasilkovna>z-points","branch":"12345","cart_weight":1.75}`,
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().PersistBranchSelection(mock.Anything, entities.Checkout{
					Order:         entities.Order{OrderID: "1001", BillingCountry: "CZ", ShippingCountry: "SK", Items: []entities.Item{}},
					ChosenMethod:  "zasilkovna>z-points",
					Branch:        "12345",
					CartWeight:    1.75,
					HasCartWeight: true,
				}).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:         "negative weight",
			body:         `{"order":{},"chosen_method":"flat_rate:1","cart_weight":-1}`,
			mockBehavior: func(_ *mocks.MockShippingService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "storage error",
			body: `{"order":{},"chosen_method":"zasilkovna>z-points","branch":"12345"}`,
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().PersistBranchSelection(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockShippingService(t)
			tc.mockBehavior(svc)

			status, _ := serveShipping(t, svc, http.MethodPost, "/orders/1001/branch", tc.body)

			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestShippingHandler_BranchInfo(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockShippingService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().BranchInfo(mock.Anything, "1001").Return(entities.BranchInfo{
					OrderID:        "1001",
					ShippingMethod: "zasilkovna>z-points",
					Branch:         &entities.Branch{Code: "12345", Name: "Praha 4, Budějovická"},
					Barcode:        "Z111",
					TrackingURL:    "https://www.zasilkovna.cz/vyhledavani?det=Z111",
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"tracking_url":"https://www.zasilkovna.cz/vyhledavani?det=Z111"`,
		},
		{
			name: "no info",
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().BranchInfo(mock.Anything, "1001").Return(entities.BranchInfo{}, entities.ErrNoBranchInfo).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"no branch info"`,
		},
		{
			name: "internal error",
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().BranchInfo(mock.Anything, "1001").Return(entities.BranchInfo{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockShippingService(t)
			tc.mockBehavior(svc)

			status, body := serveShipping(t, svc, http.MethodGet, "/orders/1001/branch-info", "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
