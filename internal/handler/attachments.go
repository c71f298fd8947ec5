package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/checkout-addons/internal/entities"
	"github.com/SergeyBogomolovv/checkout-addons/internal/trace"
	"github.com/SergeyBogomolovv/checkout-addons/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AttachmentSelector interface {
	SelectAttachments(ctx context.Context, current []string, emailID string, order entities.Order) ([]string, error)
}

type AttachmentHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AttachmentSelector
}

func NewAttachmentHandler(logger *slog.Logger, svc AttachmentSelector) *AttachmentHandler {
	return &AttachmentHandler{
		logger:   logger.With(slog.String("handler", "attachments")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *AttachmentHandler) Init(r chi.Router) {
	r.Post("/hooks/email-attachments", h.EmailAttachments)
}

// EmailAttachments дополняет список вложений письма.
// @Summary      Вложения письма
// @Description  Добавляет к списку вложений файлы, настроенные для языка заказа и его товаров. При ошибке хранилища возвращает исходный список.
// @Tags         attachments
// @Accept       json
// @Produce      json
// @Param        request  body      EmailAttachmentsRequest  true  "Текущие вложения, тип письма и заказ"
// @Success      200  {object}  EmailAttachmentsResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /hooks/email-attachments [post]
func (h *AttachmentHandler) EmailAttachments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	timer := newRequestTimer("email_attachments")
	defer timer.observe()

	var req EmailAttachmentsRequest
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

	current := req.Attachments
	if current == nil {
		current = []string{}
	}

	// письмо должно уйти в любом случае, поэтому при ошибке отдаём исходный список
	attachments, err := h.svc.SelectAttachments(ctx, current, req.EmailID, OrderJSONToEntity(req.Order))
	if err != nil {
		timer.status = "degraded"
		h.logger.ErrorContext(ctx, "failed to select attachments",
			slog.Any("error", err),
			slog.String("order_id", req.Order.OrderID),
			slog.String("email_id", req.EmailID),
			trace.LogAttr(ctx),
		)
		attachments = current
	}

	utils.WriteJSON(w, EmailAttachmentsResponse{Attachments: attachments}, http.StatusOK)
}
