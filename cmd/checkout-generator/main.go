package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/checkout-addons/internal/handler"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var (
	countries = []string{"CZ", "SK", "PL", "HU", "RO", "AT", "DE"}
	methods   = []string{
		"zasilkovna>z-points",
		"zasilkovna>pl-paczkomaty",
		"zasilkovna>ceska-posta-cz",
		"zasilkovna>doruceni-na-adresu-sk",
		"flat_rate:1",
		"local_pickup:3",
	}
)

func generateCheckout() handler.CheckoutEvent {
	country := gofakeit.RandomString(countries)
	method := gofakeit.RandomString(methods)

	items := make([]handler.Item, gofakeit.Number(1, 4))
	for i := range items {
		items[i] = handler.Item{
			ProductID: int64(gofakeit.Number(1, 500)),
			Name:      gofakeit.ProductName(),
			Quantity:  gofakeit.Number(1, 3),
		}
	}

	branch := ""
	if gofakeit.Number(0, 9) > 0 {
		branch = strconv.Itoa(gofakeit.Number(1000, 29999))
	}
	weight := gofakeit.Float64Range(0.1, 15)

	return handler.CheckoutEvent{
		EventID:    uuid.NewString(),
		Type:       handler.EventCheckoutCompleted,
		OccurredAt: time.Now(),
		Checkout: &handler.BranchSelection{
			Order: handler.Order{
				OrderID:         strconv.Itoa(gofakeit.Number(10000, 99999)),
				BillingCountry:  country,
				ShippingCountry: country,
				DateCreated:     time.Now(),
				Items:           items,
			},
			ChosenMethod: method,
			Branch:       branch,
			CartWeight:   &weight,
		},
	}
}

func generateParcel(orderID string) handler.CheckoutEvent {
	return handler.CheckoutEvent{
		EventID:    uuid.NewString(),
		Type:       handler.EventParcelRegistered,
		OccurredAt: time.Now(),
		Parcel: &handler.Parcel{
			OrderID: orderID,
			Barcode: "Z" + gofakeit.Numerify("##########"),
		},
	}
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka broker address")
	topic := flag.String("topic", "checkout-events", "topic to publish to")
	interval := flag.Duration("interval", 2*time.Second, "delay between checkouts")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:  kafka.TCP(*brokers),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			checkout := generateCheckout()
			orderID := checkout.Checkout.Order.OrderID
			events := []handler.CheckoutEvent{checkout}
			if checkout.Checkout.Branch != "" {
				events = append(events, generateParcel(orderID))
			}

			msgs := make([]kafka.Message, 0, len(events))
			for _, e := range events {
				data, err := json.Marshal(e)
				if err != nil {
					log.Println("failed to marshal event:", err)
					continue
				}
				msgs = append(msgs, kafka.Message{Key: []byte(orderID), Value: data})
			}
			if err := writer.WriteMessages(ctx, msgs...); err != nil {
				log.Println("failed to publish:", err)
				continue
			}
			log.Println("checkout generated", orderID, checkout.Checkout.ChosenMethod)
		case <-ctx.Done():
			return
		}
	}
}
