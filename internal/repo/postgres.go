package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/checkout-addons/internal/entities"
	"github.com/SergeyBogomolovv/checkout-addons/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetOption returns the raw JSON value of an option, nil when it is not set.
func (r *postgresRepo) GetOption(ctx context.Context, name string) ([]byte, error) {
	query, args := r.qb.Select("value").
		From("options").
		Where(sq.Eq{"name": name}).
		MustSql()

	var value []byte
	err := r.conn(ctx).GetContext(ctx, &value, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get option %s: %w", name, err)
	}
	return value, nil
}

func (r *postgresRepo) SetOption(ctx context.Context, name string, value []byte) error {
	query, args := r.qb.Insert("options").
		Columns("name", "value").
		Values(name, string(value)).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		MustSql()

	if _, err := r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set option %s: %w", name, err)
	}
	return nil
}

// AttachmentPathByURL looks a media file up by its public URL.
func (r *postgresRepo) AttachmentPathByURL(ctx context.Context, url string) (string, error) {
	query, args := r.qb.Select("file_path").
		From("media").
		Where(sq.Eq{"guid": url}).
		OrderBy("id").
		Limit(1).
		MustSql()

	var path string
	err := r.conn(ctx).GetContext(ctx, &path, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entities.ErrAttachmentNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get media: %w", err)
	}
	return path, nil
}

// ProductMeta returns "" when the product has no such field.
func (r *postgresRepo) ProductMeta(ctx context.Context, productID int64, key string) (string, error) {
	query, args := r.qb.Select("meta_value").
		From("product_meta").
		Where(sq.Eq{"product_id": productID, "meta_key": key}).
		MustSql()

	var value string
	err := r.conn(ctx).GetContext(ctx, &value, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get product meta: %w", err)
	}
	return value, nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select("order_id", "billing_country", "shipping_country", "date_created").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.conn(ctx).GetContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "position", "product_id", "name", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position").
		MustSql()

	var items []Item
	if err := r.conn(ctx).SelectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

// SaveOrder stores an order snapshot. The snapshot is written once, later calls
// for the same order are no-ops.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	insert := r.qb.Insert("orders").
		Columns("order_id", "billing_country", "shipping_country", "date_created")
	if o.DateCreated.IsZero() {
		insert = insert.Values(o.OrderID, o.BillingCountry, o.ShippingCountry, sq.Expr("now()"))
	} else {
		insert = insert.Values(o.OrderID, o.BillingCountry, o.ShippingCountry, o.DateCreated)
	}
	query, args := insert.Suffix("ON CONFLICT (order_id) DO NOTHING").MustSql()

	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "product_id", "name", "quantity").
		Suffix("ON CONFLICT (order_id, position) DO NOTHING")
	for i, it := range o.Items {
		q = q.Values(o.OrderID, i, it.ProductID, nullString(it.Name), max(it.Quantity, 1))
	}

	query, args = q.MustSql()
	if _, err := r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderMeta(ctx context.Context, orderID string) (entities.OrderMeta, error) {
	query, args := r.qb.Select("meta_key", "meta_value").
		From("order_meta").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var rows []Meta
	if err := r.conn(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get order meta: %w", err)
	}

	meta := make(entities.OrderMeta, len(rows))
	for _, m := range rows {
		meta[m.Key] = m.Value
	}
	return meta, nil
}

// SetOrderMeta upserts the given keys, other keys of the order stay untouched.
func (r *postgresRepo) SetOrderMeta(ctx context.Context, orderID string, meta entities.OrderMeta) error {
	if len(meta) == 0 {
		return nil
	}

	q := r.qb.Insert("order_meta").
		Columns("order_id", "meta_key", "meta_value").
		Suffix("ON CONFLICT (order_id, meta_key) DO UPDATE SET meta_value = EXCLUDED.meta_value, updated_at = now()")
	for key, value := range meta {
		q = q.Values(orderID, key, value)
	}

	query, args := q.MustSql()
	if _, err := r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set order meta: %w", err)
	}
	return nil
}

func (r *postgresRepo) Directory(ctx context.Context, key entities.DirectoryKey) (entities.Directory, error) {
	query, args := r.qb.Select("code", "name", "place", "street", "city", "zip", "url").
		From("branches").
		Where(sq.Eq{"country": strings.ToUpper(key.Country), "variant": string(key.Variant)}).
		OrderBy("code").
		MustSql()

	var rows []Branch
	if err := r.conn(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select branches: %w", err)
	}

	dir := make(entities.Directory, 0, len(rows))
	for _, b := range rows {
		dir = append(dir, BranchToEntity(b))
	}
	return dir, nil
}

func (r *postgresRepo) FindBranch(ctx context.Context, key entities.DirectoryKey, code string) (entities.Branch, error) {
	query, args := r.qb.Select("code", "name", "place", "street", "city", "zip", "url").
		From("branches").
		Where(sq.Eq{"country": strings.ToUpper(key.Country), "variant": string(key.Variant), "code": code}).
		MustSql()

	var b Branch
	err := r.conn(ctx).GetContext(ctx, &b, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Branch{}, entities.ErrBranchNotFound
	}
	if err != nil {
		return entities.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}
	return BranchToEntity(b), nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *postgresRepo) conn(ctx context.Context) trm.Executor {
	return trm.Conn(ctx, r.db)
}
