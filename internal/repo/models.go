package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/checkout-addons/internal/entities"
)

type Order struct {
	OrderID         string    `db:"order_id"`
	BillingCountry  string    `db:"billing_country"`
	ShippingCountry string    `db:"shipping_country"`
	DateCreated     time.Time `db:"date_created"`
}

type Item struct {
	OrderID   string         `db:"order_id"`
	Position  int            `db:"position"`
	ProductID int64          `db:"product_id"`
	Name      sql.NullString `db:"name"`
	Quantity  int            `db:"quantity"`
}

type Meta struct {
	Key   string `db:"meta_key"`
	Value string `db:"meta_value"`
}

type Branch struct {
	Code   string         `db:"code"`
	Name   string         `db:"name"`
	Place  sql.NullString `db:"place"`
	Street sql.NullString `db:"street"`
	City   sql.NullString `db:"city"`
	Zip    sql.NullString `db:"zip"`
	URL    sql.NullString `db:"url"`
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ProductID: i.ProductID,
		Name:      nullStringToString(i.Name),
		Quantity:  i.Quantity,
	}
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		OrderID:         o.OrderID,
		BillingCountry:  o.BillingCountry,
		ShippingCountry: o.ShippingCountry,
		DateCreated:     o.DateCreated,
	}

	if len(items) > 0 {
		order.Items = make([]entities.Item, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func BranchToEntity(b Branch) entities.Branch {
	return entities.Branch{
		Code:   b.Code,
		Name:   b.Name,
		Place:  nullStringToString(b.Place),
		Street: nullStringToString(b.Street),
		City:   nullStringToString(b.City),
		Zip:    nullStringToString(b.Zip),
		URL:    nullStringToString(b.URL),
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
