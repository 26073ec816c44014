package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, user_id, voucher_id, total_price, status, shipping_address,
                      payment_method, note, created_at, updated_at`

// Create runs the whole checkout write set in one transaction. Stock and
// voucher rows are locked before checking, so two concurrent orders cannot
// both pass the same stock check; any failure rolls back every decrement.
func (r *orderRepository) Create(ctx context.Context, params repository.CreateOrderParams) (*model.Order, error) {
	var order *model.Order

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var subtotal float64
		items := make([]model.OrderItem, 0, len(params.Items))

		for _, item := range params.Items {
			var price float64
			var onHand int64
			err := tx.QueryRow(ctx, `SELECT price, quantity FROM products WHERE id=$1 FOR UPDATE`, item.ProductID).
				Scan(&price, &onHand)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domainErrors.ErrNotFound
				}
				return err
			}
			if onHand < item.Quantity {
				return domainErrors.ErrInsufficientStock
			}

			tag, err := tx.Exec(ctx,
				`UPDATE products SET quantity = quantity - $2, updated_at=NOW() WHERE id=$1 AND quantity >= $2`,
				item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrInsufficientStock
			}

			subtotal += price * float64(item.Quantity)
			items = append(items, model.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     price,
			})
		}

		total := subtotal
		if params.VoucherID != nil {
			discounted, err := redeemVoucher(ctx, tx, *params.VoucherID, subtotal)
			if err != nil {
				return err
			}
			total = discounted
		}

		o := model.Order{
			UserID:          params.UserID,
			Items:           items,
			VoucherID:       params.VoucherID,
			TotalPrice:      total,
			Status:          model.OrderStatusPending,
			ShippingAddress: params.ShippingAddress,
			PaymentMethod:   params.PaymentMethod,
			Note:            params.Note,
		}

		const insertOrder = `INSERT INTO orders (user_id, voucher_id, total_price, status, shipping_address, payment_method, note)
                             VALUES ($1, $2, $3, $4, $5, $6, $7)
                             RETURNING id, created_at, updated_at`
		err := tx.QueryRow(ctx, insertOrder,
			o.UserID, o.VoucherID, o.TotalPrice, o.Status, o.ShippingAddress, o.PaymentMethod, o.Note,
		).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, quantity, price)
                            VALUES ($1, $2, $3, $4) RETURNING id`
		for i := range o.Items {
			o.Items[i].OrderID = o.ID
			if err := tx.QueryRow(ctx, insertItem, o.ID, o.Items[i].ProductID, o.Items[i].Quantity, o.Items[i].Price).
				Scan(&o.Items[i].ID); err != nil {
				return err
			}
		}

		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// redeemVoucher validates eligibility under a row lock, decrements the usage
// counter and returns the discounted total. Checks run in the same order the
// storefront has always applied them.
func redeemVoucher(ctx context.Context, tx pgx.Tx, voucherID int64, subtotal float64) (float64, error) {
	var v model.Voucher
	err := tx.QueryRow(ctx,
		`SELECT `+voucherColumns+` FROM vouchers WHERE id=$1 FOR UPDATE`, voucherID).
		Scan(&v.ID, &v.Code, &v.Name, &v.Discount, &v.IsPercentage, &v.MinOrderValue,
			&v.Quantity, &v.IsActive, &v.ExpiryDate, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrNotFound
		}
		return 0, err
	}

	if !v.Usable(time.Now()) {
		return 0, domainErrors.ErrVoucherInactive
	}
	if v.Quantity <= 0 {
		return 0, domainErrors.ErrVoucherExhausted
	}
	if subtotal < v.MinOrderValue {
		return 0, domainErrors.ErrVoucherMinNotMet
	}

	tag, err := tx.Exec(ctx,
		`UPDATE vouchers SET quantity = quantity - 1, updated_at=NOW() WHERE id=$1 AND quantity > 0`, voucherID)
	if err != nil {
		return 0, err
	}
	if tag.RowsAffected() == 0 {
		return 0, domainErrors.ErrVoucherExhausted
	}

	return subtotal - v.DiscountFor(subtotal), nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	o, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := attachItems(ctx, r.storage.pool, []*model.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 AND user_id=$2`
	o, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, err
	}
	if err := attachItems(ctx, r.storage.pool, []*model.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]model.Order, int64, error) {
	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id=$1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC OFFSET $2 LIMIT $3`
	orders, err := r.queryOrders(ctx, query, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	if err := r.annotateReviews(ctx, userID, orders); err != nil {
		return nil, 0, err
	}
	return derefOrders(orders), total, nil
}

func (r *orderRepository) List(ctx context.Context, offset, limit int) ([]model.Order, int64, error) {
	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT o.id, o.user_id, o.voucher_id, o.total_price, o.status, o.shipping_address,
                          o.payment_method, o.note, o.created_at, o.updated_at, u.email
                   FROM orders o JOIN users u ON u.id = o.user_id
                   ORDER BY o.created_at DESC OFFSET $1 LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []*model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.VoucherID, &o.TotalPrice, &o.Status,
			&o.ShippingAddress, &o.PaymentMethod, &o.Note, &o.CreatedAt, &o.UpdatedAt, &o.UserEmail); err != nil {
			return nil, 0, err
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := attachItems(ctx, r.storage.pool, orders); err != nil {
		return nil, 0, err
	}
	return derefOrders(orders), total, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, from, to model.OrderStatus, markSold bool) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE orders SET status=$3, updated_at=NOW() WHERE id=$1 AND status=$2`, id, from, to)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			var current model.OrderStatus
			if err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1`, id).Scan(&current); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domainErrors.ErrNotFound
				}
				return err
			}
			return domainErrors.ErrInvalidStatusTransition
		}

		if markSold {
			const query = `UPDATE products p SET sold = p.sold + oi.quantity, updated_at=NOW()
                           FROM order_items oi
                           WHERE oi.order_id=$1 AND p.id = oi.product_id`
			if _, err := tx.Exec(ctx, query, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *orderRepository) SumCompletedPerDay(ctx context.Context, month, year int) (map[int]float64, error) {
	const query = `SELECT EXTRACT(DAY FROM created_at)::INT AS day, COALESCE(SUM(total_price), 0)
                   FROM orders WHERE status='completed' AND created_at >= $1 AND created_at < $2
                   GROUP BY day ORDER BY day`
	return countPerDay(ctx, r.storage.pool, query, month, year)
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := attachItems(ctx, r.storage.pool, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// annotateReviews marks line items the user has already reviewed.
func (r *orderRepository) annotateReviews(ctx context.Context, userID int64, orders []*model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := orderIDs(orders)
	rows, err := r.storage.pool.Query(ctx,
		`SELECT order_id, product_id FROM reviews WHERE user_id=$1 AND order_id = ANY($2)`, userID, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	reviewed := make(map[[2]int64]bool)
	for rows.Next() {
		var orderID, productID int64
		if err := rows.Scan(&orderID, &productID); err != nil {
			return err
		}
		reviewed[[2]int64{orderID, productID}] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, o := range orders {
		for i := range o.Items {
			o.Items[i].Reviewed = reviewed[[2]int64{o.ID, o.Items[i].ProductID}]
		}
	}
	return nil
}

func attachItems(ctx context.Context, q querier, orders []*model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := orderIDs(orders)
	rows, err := q.Query(ctx,
		`SELECT id, order_id, product_id, quantity, price FROM order_items WHERE order_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byOrder := make(map[int64][]model.OrderItem, len(orders))
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return err
		}
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, o := range orders {
		o.Items = byOrder[o.ID]
	}
	return nil
}

func orderIDs(orders []*model.Order) []int64 {
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}

func derefOrders(orders []*model.Order) []model.Order {
	result := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, *o)
	}
	return result
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.VoucherID, &o.TotalPrice, &o.Status,
		&o.ShippingAddress, &o.PaymentMethod, &o.Note, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}
