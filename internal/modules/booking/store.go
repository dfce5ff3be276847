// README: Booking store backed by PostgreSQL; claim is a conditional update.
package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"drivehire/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const bookingColumns = `
	id, customer_id, customer_name, customer_phone, service_type,
	pickup_location, destination, pickup_date, pickup_time,
	duration_hours, duration_days, vehicle_type,
	driver_id, driver_name, status, payment_status, created_at`

func (s *Store) Create(ctx context.Context, b *Booking) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO bookings (
			id, customer_id, customer_name, customer_phone, service_type,
			pickup_location, destination, pickup_date, pickup_time,
			duration_hours, duration_days, vehicle_type,
			driver_id, driver_name, status, payment_status, created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12,
			$13, $14, $15, $16, $17
		)`,
		string(b.ID),
		string(b.CustomerID),
		b.CustomerName,
		b.CustomerPhone,
		string(b.ServiceType),
		b.PickupLocation,
		b.Destination,
		b.PickupDate,
		b.PickupTime,
		b.DurationHours,
		b.DurationDays,
		b.VehicleType,
		idPtrToStringPtr(b.DriverID),
		b.DriverName,
		string(b.Status),
		string(b.PaymentStatus),
		b.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Booking, error) {
	row := s.db.QueryRow(ctx, `SELECT`+bookingColumns+` FROM bookings WHERE id = $1`, string(id))
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListByCustomer returns the customer's bookings, newest first.
func (s *Store) ListByCustomer(ctx context.Context, customerID types.ID) ([]Booking, error) {
	rows, err := s.db.Query(ctx, `
		SELECT`+bookingColumns+`
		FROM bookings
		WHERE customer_id = $1
		ORDER BY created_at DESC`, string(customerID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

// ListForDriver returns the driver's candidate list: the open pool (pending,
// unassigned) plus bookings already assigned to this driver. Bookings claimed
// by other drivers are never visible.
func (s *Store) ListForDriver(ctx context.Context, driverID types.ID) ([]Booking, error) {
	rows, err := s.db.Query(ctx, `
		SELECT`+bookingColumns+`
		FROM bookings
		WHERE (driver_id IS NULL AND status = 'pending')
		   OR (driver_id = $1 AND status IN ('assigned', 'in_progress'))
		ORDER BY created_at DESC`, string(driverID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

// Claim assigns a driver to a pending, unassigned booking. The WHERE clause is
// the whole concurrency story: two racing drivers hit the same row and only
// one update matches. Zero rows affected means the caller lost the race.
func (s *Store) Claim(ctx context.Context, id, driverID types.ID, driverName string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE bookings
		SET driver_id = $2,
		    driver_name = $3,
		    status = 'assigned'
		WHERE id = $1
		  AND status = 'pending'
		  AND driver_id IS NULL`,
		string(id), string(driverID), driverName)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateStatus moves a booking from one status to another, guarded by the
// current status so a stale caller affects zero rows.
func (s *Store) UpdateStatus(ctx context.Context, id types.ID, from, to Status) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE bookings
		SET status = $3
		WHERE id = $1 AND status = $2`,
		string(id), string(from), string(to))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	var destination, driverID, driverName sql.NullString
	var durationHours, durationDays sql.NullInt32

	err := row.Scan(
		&b.ID, &b.CustomerID, &b.CustomerName, &b.CustomerPhone, &b.ServiceType,
		&b.PickupLocation, &destination, &b.PickupDate, &b.PickupTime,
		&durationHours, &durationDays, &b.VehicleType,
		&driverID, &driverName, &b.Status, &b.PaymentStatus, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if destination.Valid {
		b.Destination = &destination.String
	}
	if driverID.Valid {
		d := types.ID(driverID.String)
		b.DriverID = &d
	}
	if driverName.Valid {
		b.DriverName = &driverName.String
	}
	if durationHours.Valid {
		v := int(durationHours.Int32)
		b.DurationHours = &v
	}
	if durationDays.Valid {
		v := int(durationDays.Int32)
		b.DurationDays = &v
	}
	return &b, nil
}

func collectBookings(rows pgx.Rows) ([]Booking, error) {
	var out []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func idPtrToStringPtr(v *types.ID) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
