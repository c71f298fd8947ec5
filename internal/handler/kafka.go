package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-addons/internal/config"
	"github.com/SergeyBogomolovv/checkout-addons/internal/entities"
	"github.com/google/uuid"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type CheckoutProcessor interface {
	PersistBranchSelection(ctx context.Context, checkout entities.Checkout) error
	SetTrackingBarcode(ctx context.Context, orderID, barcode string) error
}

type kafkaHandler struct {
	dlq       *kafka.Writer
	reader    *kafka.Reader
	logger    *slog.Logger
	validate  *validator.Validate
	processor CheckoutProcessor
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, processor CheckoutProcessor) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate:  validator.New(),
		processor: processor,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		// В сервисе уже есть retry
		if err := h.handleMessage(ctx, m.Value); err != nil {
			h.logger.Error("failed to handle message",
				slog.Any("error", err),
				slog.Int64("offset", m.Offset),
				slog.Int("partition", m.Partition),
			)

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleMessage(ctx context.Context, value []byte) error {
	eventsInProgress.Inc()
	defer eventsInProgress.Dec()
	start := time.Now()
	defer func() { eventProcessingDuration.Observe(time.Since(start).Seconds()) }()

	var event CheckoutEvent
	if err := json.Unmarshal(value, &event); err != nil {
		eventsFailed.WithLabelValues("unknown").Inc()
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if err := h.validate.Struct(event); err != nil {
		eventsFailed.WithLabelValues(event.Type).Inc()
		return fmt.Errorf("invalid event data: %w", err)
	}

	eventID := event.EventID
	if eventID == "" {
		eventID = uuid.NewString()
	}
	logger := h.logger.With(slog.String("event_id", eventID), slog.String("type", event.Type))

	var err error
	switch event.Type {
	case EventCheckoutCompleted:
		checkout := CheckoutJSONToEntity(event.Checkout.Order.OrderID, *event.Checkout)
		err = h.processor.PersistBranchSelection(ctx, checkout)
	case EventParcelRegistered:
		err = h.processor.SetTrackingBarcode(ctx, event.Parcel.OrderID, event.Parcel.Barcode)
	}
	if err != nil {
		eventsFailed.WithLabelValues(event.Type).Inc()
		return fmt.Errorf("failed to process %s event %s: %w", event.Type, eventID, err)
	}

	eventsProcessed.WithLabelValues(event.Type).Inc()
	logger.DebugContext(ctx, "event processed")
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
