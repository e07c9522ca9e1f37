package repository

import (
	"context"
	"database/sql"
	"errors"

	"moving-service/src/internal/entity"
	"moving-service/src/pkg/databases/mysql"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepositoryInterface is the persistence contract the usecases depend
// on; tests substitute an in-memory implementation.
type OrderRepositoryInterface interface {
	Create(ctx context.Context, order *entity.MoveOrder) error
	ListByUser(ctx context.Context, userID string) ([]entity.MoveOrder, error)
	FindByID(ctx context.Context, orderID, userID string) (*entity.MoveOrder, error)
}

type OrderRepository struct {
	DB mysql.DBInterface
}

func NewOrderRepository(db mysql.DBInterface) *OrderRepository {
	return &OrderRepository{
		DB: db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.MoveOrder) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO move_orders (
			order_id, payment_id, user_id,
			origin_address, origin_lat, origin_lng,
			destination_address, destination_lat, destination_lng,
			distance_km, duration_min, polyline,
			vehicle, move_date, time_slots, checklist,
			subtotal_cents, shipping_cents, tax_cents, total_cents,
			status, created_at, updated_at
		) VALUES (
			:order_id, :payment_id, :user_id,
			:origin_address, :origin_lat, :origin_lng,
			:destination_address, :destination_lat, :destination_lng,
			:distance_km, :duration_min, :polyline,
			:vehicle, :move_date, :time_slots, :checklist,
			:subtotal_cents, :shipping_cents, :tax_cents, :total_cents,
			:status, :created_at, :updated_at
		)
	`

	_, err = db.NamedExecContext(ctx, query, order)
	return err
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]entity.MoveOrder, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var orders []entity.MoveOrder
	query := `
		SELECT
			order_id, payment_id, user_id,
			origin_address, origin_lat, origin_lng,
			destination_address, destination_lat, destination_lng,
			distance_km, duration_min, polyline,
			vehicle, move_date, time_slots, checklist,
			subtotal_cents, shipping_cents, tax_cents, total_cents,
			status, created_at, updated_at
		FROM move_orders
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	err = db.SelectContext(ctx, &orders, query, userID)
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, orderID, userID string) (*entity.MoveOrder, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var order entity.MoveOrder
	query := `
		SELECT
			order_id, payment_id, user_id,
			origin_address, origin_lat, origin_lng,
			destination_address, destination_lat, destination_lng,
			distance_km, duration_min, polyline,
			vehicle, move_date, time_slots, checklist,
			subtotal_cents, shipping_cents, tax_cents, total_cents,
			status, created_at, updated_at
		FROM move_orders
		WHERE order_id = ? AND user_id = ?
	`

	err = db.GetContext(ctx, &order, query, orderID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return &order, nil
}
