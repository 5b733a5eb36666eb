package stay

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ReservationService/pkg/psqlbuilder"
)

var stayColumns = []string{
	"id",
	"hotel_id",
	"name",
	"minutes",
	"price",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с каталогом длительностей проживания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога длительностей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает запись каталога по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.StayDuration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stayColumns...).
		From("stay_durations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	entry, err := scanStayDuration(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStayDurationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan stay duration: %v", ErrScanRow, err)
	}

	return entry, nil
}

// ListByHotel получает активные записи каталога отеля,
// отсортированные по длительности (ASC)
func (r *Repository) ListByHotel(ctx context.Context, hotelID int64) ([]*domain.StayDuration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stayColumns...).
		From("stay_durations").
		Where(squirrel.Eq{"hotel_id": hotelID, "active": true}).
		OrderBy("minutes ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByHotel - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHotel - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.StayDuration, 0)
	for rows.Next() {
		entry, err := scanStayDuration(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByHotel - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByHotel - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// Upsert создает или обновляет запись каталога по её ID
func (r *Repository) Upsert(ctx context.Context, entry *domain.StayDuration) (*domain.StayDuration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("stay_durations").
		Columns("id", "hotel_id", "name", "minutes", "price", "active").
		Values(entry.ID, entry.HotelID, entry.Name, entry.Minutes, entry.Price, entry.Active).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			minutes = EXCLUDED.minutes,
			price = EXCLUDED.price,
			active = EXCLUDED.active,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return entry, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStayDuration(row rowScanner) (*domain.StayDuration, error) {
	var entry domain.StayDuration
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&entry.ID,
		&entry.HotelID,
		&entry.Name,
		&entry.Minutes,
		&entry.Price,
		&entry.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return &entry, nil
}
