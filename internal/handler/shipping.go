package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/checkout-addons/internal/entities"
	"github.com/SergeyBogomolovv/checkout-addons/internal/trace"
	"github.com/SergeyBogomolovv/checkout-addons/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Сообщения для покупателя, как их показывал плагин.
const (
	msgMissingBranch     = "Chyba - Prosím, zvolte pobočku pro vybranou dopravu."
	msgPlaceholderBranch = "Prosíme, zvolte pobočku pro vybranou dopravu."
)

type ShippingService interface {
	AdjustRates(ctx context.Context, rates []entities.Rate, pkg entities.Package) ([]entities.Rate, error)
	ResolveBranches(ctx context.Context, country string, method entities.ShippingMethod) (entities.Directory, error)
	PickupSelector(ctx context.Context, country, chosen string) (entities.PickupSelector, error)
	ValidateBranchSelection(chosen, submitted string, needsShipping bool) error
	PersistBranchSelection(ctx context.Context, checkout entities.Checkout) error
	BranchInfo(ctx context.Context, orderID string) (entities.BranchInfo, error)
}

type ShippingHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ShippingService
}

func NewShippingHandler(logger *slog.Logger, svc ShippingService) *ShippingHandler {
	return &ShippingHandler{
		logger:   logger.With(slog.String("handler", "shipping")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *ShippingHandler) Init(r chi.Router) {
	r.Post("/hooks/package-rates", h.PackageRates)
	r.Get("/checkout/branches", h.Branches)
	r.Get("/checkout/pickup-selector", h.PickupSelector)
	r.Post("/checkout/validate", h.ValidateCheckout)
	r.Post("/orders/{order_id}/branch", h.SaveBranch)
	r.Get("/orders/{order_id}/branch-info", h.BranchInfo)
}

// PackageRates применяет политику бесплатной доставки к тарифам.
// @Summary      Тарифы доставки
// @Description  Обнуляет тарифы по политике бесплатной доставки и убирает тариф free_shipping. Порядок тарифов сохраняется.
// @Tags         shipping
// @Accept       json
// @Produce      json
// @Param        request  body      PackageRatesRequest  true  "Тарифы и посылка"
// @Success      200  {object}  PackageRatesResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /hooks/package-rates [post]
func (h *ShippingHandler) PackageRates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	timer := newRequestTimer("package_rates")
	defer timer.observe()

	var req PackageRatesRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		timer.status = "invalid"
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		timer.status = "invalid"
		utils.WriteValidationError(w, err)
		return
	}

	rates := make([]entities.Rate, 0, len(req.Rates))
	for _, rate := range req.Rates {
		rates = append(rates, RateJSONToEntity(rate))
	}

	adjusted, err := h.svc.AdjustRates(ctx, rates, PackageJSONToEntity(req.Package))
	if err != nil {
		// без настроек тарифы остаются как есть
		timer.status = "degraded"
		h.logger.ErrorContext(ctx, "failed to adjust rates", slog.Any("error", err), trace.LogAttr(ctx))
		adjusted = rates
	}

	res := PackageRatesResponse{Rates: make([]Rate, 0, len(adjusted))}
	for _, rate := range adjusted {
		res.Rates = append(res.Rates, RateEntityToJSON(rate))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// Branches возвращает список пунктов выдачи.
// @Summary      Пункты выдачи
// @Tags         shipping
// @Produce      json
// @Param        country  query     string  false  "Страна покупателя"
// @Param        method   query     string  true   "Способ доставки, carrier>submethod"
// @Success      200  {object}  BranchesResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /checkout/branches [get]
func (h *ShippingHandler) Branches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	country := r.URL.Query().Get("country")
	method := r.URL.Query().Get("method")

	if err := h.validate.Var(method, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	dir, err := h.svc.ResolveBranches(ctx, country, entities.ParseShippingMethod(method))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to resolve branches", slog.Any("error", err), slog.String("method", method))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, BranchesResponse{Branches: DirectoryEntityToJSON(dir)}, http.StatusOK)
}

// PickupSelector описывает строку выбора пункта выдачи.
// @Summary      Выбор пункта выдачи
// @Description  Виджет, список пунктов или скрытый id сервиса для выбранного способа доставки
// @Tags         checkout
// @Produce      json
// @Param        country  query     string  false  "Страна покупателя"
// @Param        method   query     string  false  "Выбранный способ доставки"
// @Success      200  {object}  PickupSelector
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /checkout/pickup-selector [get]
func (h *ShippingHandler) PickupSelector(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	country := r.URL.Query().Get("country")
	method := r.URL.Query().Get("method")

	sel, err := h.svc.PickupSelector(ctx, country, method)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build pickup selector", slog.Any("error", err), slog.String("method", method))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, PickupSelectorEntityToJSON(sel), http.StatusOK)
}

// ValidateCheckout проверяет, что пункт выдачи выбран.
// @Summary      Проверка чекаута
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body  ValidateCheckoutRequest  true  "Выбранная доставка и пункт"
// @Success      204
// @Failure      400  {object}  utils.ErrorResponse "Некорректный запрос"
// @Failure      422  {object}  utils.ErrorResponse "Пункт выдачи не выбран"
// @Router       /checkout/validate [post]
func (h *ShippingHandler) ValidateCheckout(w http.ResponseWriter, r *http.Request) {
	var req ValidateCheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.svc.ValidateBranchSelection(req.ChosenMethod, req.Branch, req.NeedsShipping)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, entities.ErrMissingBranch):
		utils.WriteCodedError(w, msgMissingBranch, "missing_branch", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrPlaceholderBranch):
		utils.WriteCodedError(w, msgPlaceholderBranch, "placeholder_branch", http.StatusUnprocessableEntity)
	default:
		h.logger.Error("unexpected validation error", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// SaveBranch сохраняет выбранный пункт выдачи и вес корзины.
// @Summary      Сохранить пункт выдачи
// @Tags         orders
// @Accept       json
// @Param        order_id  path  string           true  "Идентификатор заказа"
// @Param        request   body  BranchSelection  true  "Заказ, доставка, пункт и вес корзины"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/branch [post]
func (h *ShippingHandler) SaveBranch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")
	timer := newRequestTimer("save_branch")
	defer timer.observe()

	var req BranchSelection
	if err := utils.DecodeBody(r, &req); err != nil {
		timer.status = "invalid"
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.Order.OrderID = orderID
	if err := h.validate.Struct(req); err != nil {
		timer.status = "invalid"
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.PersistBranchSelection(ctx, CheckoutJSONToEntity(orderID, req)); err != nil {
		timer.status = "error"
		h.logger.ErrorContext(ctx, "failed to save branch selection",
			slog.Any("error", err),
			slog.String("order_id", orderID),
			trace.LogAttr(ctx),
		)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BranchInfo возвращает пункт выдачи и отслеживание заказа.
// @Summary      Пункт выдачи заказа
// @Description  Для страниц заказа, писем и админки
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      200  {object}  BranchInfo
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Нет данных о пункте выдачи"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/branch-info [get]
func (h *ShippingHandler) BranchInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	info, err := h.svc.BranchInfo(ctx, orderID)
	if errors.Is(err, entities.ErrNoBranchInfo) {
		utils.WriteError(w, "no branch info", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get branch info", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, BranchInfoEntityToJSON(info), http.StatusOK)
}
