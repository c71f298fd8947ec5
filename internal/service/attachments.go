package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/checkout-addons/internal/entities"
	"github.com/SergeyBogomolovv/checkout-addons/internal/trace"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Settings interface {
	EmailAttachments(ctx context.Context) (entities.AttachmentSettings, error)
	Shipping(ctx context.Context) (entities.ShippingSettings, error)
}

type MediaRepo interface {
	AttachmentPathByURL(ctx context.Context, url string) (string, error)
	ProductMeta(ctx context.Context, productID int64, key string) (string, error)
}

type attachmentService struct {
	logger         *slog.Logger
	settings       Settings
	media          MediaRepo
	skipUnresolved bool
}

func NewAttachmentService(logger *slog.Logger, settings Settings, media MediaRepo, skipUnresolved bool) *attachmentService {
	return &attachmentService{
		logger:         logger.With(slog.String("service", "attachments")),
		settings:       settings,
		media:          media,
		skipUnresolved: skipUnresolved,
	}
}

// SelectAttachments appends the configured files for the order's locale to
// current: global slots first, then per product files in line item order.
func (s *attachmentService) SelectAttachments(ctx context.Context, current []string, emailID string, order entities.Order) ([]string, error) {
	if entities.EmailExcluded(emailID) {
		return current, nil
	}

	ctx, span := trace.Start(ctx, "AttachmentService.SelectAttachments",
		attribute.String("email_id", emailID),
		attribute.String("order_id", order.OrderID),
	)
	defer span.End()

	locale := entities.LocaleForCountry(order.BillingCountry)

	settings, err := s.settings.EmailAttachments(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return current, fmt.Errorf("failed to load attachment settings: %w", err)
	}

	result := make([]string, len(current), len(current)+len(entities.AttachmentSlots)+len(order.Items))
	copy(result, current)

	for _, slot := range entities.AttachmentSlots {
		url := settings.File(slot, locale)
		if url == "" {
			continue
		}
		if result, err = s.appendResolved(ctx, result, url, order.OrderID); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return current, err
		}
	}

	metaKey := entities.ProductAttachmentMetaKey(locale)
	for _, item := range order.Items {
		url, err := s.media.ProductMeta(ctx, item.ProductID, metaKey)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return current, fmt.Errorf("failed to get product %d attachment: %w", item.ProductID, err)
		}
		if url == "" {
			continue
		}
		if result, err = s.appendResolved(ctx, result, url, order.OrderID); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return current, err
		}
	}

	span.SetAttributes(attribute.Int("attachments_added", len(result)-len(current)))
	return result, nil
}

func (s *attachmentService) appendResolved(ctx context.Context, list []string, url, orderID string) ([]string, error) {
	path, err := s.media.AttachmentPathByURL(ctx, url)
	if errors.Is(err, entities.ErrAttachmentNotFound) {
		s.logger.WarnContext(ctx, "attachment url matches no media file",
			slog.String("url", url),
			slog.String("order_id", orderID),
			slog.Bool("skipped", s.skipUnresolved),
			slog.Any("error", entities.ErrUnresolvedAttachment),
			trace.LogAttr(ctx),
		)
		unresolvedAttachments.Inc()
		if s.skipUnresolved {
			return list, nil
		}
		return append(list, ""), nil
	}
	if err != nil {
		return list, fmt.Errorf("failed to resolve attachment %s: %w", url, err)
	}
	return append(list, path), nil
}
