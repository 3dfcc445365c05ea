package postgresrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lushstays/staygo/internal/domain"
)

type LocationRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *LocationRepo) With(db DB) *LocationRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *LocationRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// List returns the full catalog. There is no pagination or server-side
// filtering; clients receive the whole list.
func (r *LocationRepo) List(ctx context.Context) ([]domain.Location, error) {
	const op = "postgresrepo.LocationRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT name, price_per_night, available, facilities, image
		 FROM locations
		 ORDER BY name`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}
	defer rows.Close()

	var out []domain.Location
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(
			&l.Name, &l.PricePerNight, &l.Available, &l.Facilities, &l.Image,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// GetByName looks up a single catalog entry.
func (r *LocationRepo) GetByName(ctx context.Context, name string) (*domain.Location, error) {
	const op = "postgresrepo.LocationRepo.GetByName"

	db := r.handle()

	var l domain.Location
	err := db.QueryRow(ctx,
		`SELECT name, price_per_night, available, facilities, image
		 FROM locations WHERE name = $1`,
		name,
	).Scan(&l.Name, &l.PricePerNight, &l.Available, &l.Facilities, &l.Image)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &l, nil
}
