package postgresrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lushstays/staygo/internal/domain"
)

type BookingRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *BookingRepo) With(db DB) *BookingRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *BookingRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Create inserts the booking row and its add-on lines. Run it inside a
// transaction so a partial booking is never visible.
func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	const op = "postgresrepo.BookingRepo.Create"

	db := r.handle()

	err := db.QueryRow(ctx,
		`INSERT INTO bookings
		   (id, guest_name, email, location,
		    check_in_date, check_out_date, check_in_time, check_out_time,
		    nights, total_amount)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING created_at`,
		b.ID, b.GuestName, b.Email, b.Location,
		b.CheckIn.String(), b.CheckOut.String(),
		string(b.CheckInTime), string(b.CheckOutTime),
		b.Nights, b.TotalAmount,
	).Scan(&b.CreatedAt)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if len(b.Addons) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, a := range b.Addons {
		batch.Queue(
			`INSERT INTO booking_addons (booking_id, position, name, price, quantity)
			 VALUES ($1, $2, $3, $4, $5)`,
			b.ID, i, a.Name, a.Price, a.Quantity,
		)
	}

	results := db.SendBatch(ctx, batch)
	defer results.Close()

	for range b.Addons {
		if _, err := results.Exec(); err != nil {
			return wrapDBErr(op, err)
		}
	}

	return nil
}

// Get returns a booking with its add-on lines in display order.
func (r *BookingRepo) Get(ctx context.Context, id string) (*domain.Booking, error) {
	const op = "postgresrepo.BookingRepo.Get"

	db := r.handle()

	var b domain.Booking
	var checkIn, checkOut string
	err := db.QueryRow(ctx,
		`SELECT id, guest_name, email, location,
		        check_in_date, check_out_date, check_in_time, check_out_time,
		        nights, total_amount, created_at
		 FROM bookings WHERE id = $1`,
		id,
	).Scan(
		&b.ID, &b.GuestName, &b.Email, &b.Location,
		&checkIn, &checkOut, &b.CheckInTime, &b.CheckOutTime,
		&b.Nights, &b.TotalAmount, &b.CreatedAt,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	if b.CheckIn, err = domain.ParseDate(checkIn); err != nil {
		return nil, wrapDBErr(op, err)
	}
	if b.CheckOut, err = domain.ParseDate(checkOut); err != nil {
		return nil, wrapDBErr(op, err)
	}

	rows, err := db.Query(ctx,
		`SELECT name, price, quantity
		 FROM booking_addons
		 WHERE booking_id = $1
		 ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.CartLine
		if err := rows.Scan(&a.Name, &a.Price, &a.Quantity); err != nil {
			return nil, wrapDBErr(op, err)
		}
		b.Addons = append(b.Addons, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &b, nil
}
