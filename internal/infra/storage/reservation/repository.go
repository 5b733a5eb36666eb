package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ReservationService/pkg/psqlbuilder"
)

// reservationColumns — полный набор колонок таблицы reservations
var reservationColumns = []string{
	"id",
	"hotel_id",
	"room_id",
	"user_id",
	"guest_name",
	"guest_phone",
	"guest_count",
	"start_at",
	"end_at",
	"status",
	"duration_kind",
	"duration_magnitude",
	"stay_duration_id",
	"base_amount",
	"extra_guest_amount",
	"total_amount",
	"notes",
	"origin",
	"created_at",
	"updated_at",
}

// overlapQuery вызывает SQL-функцию reservation_overlap_exists — внешний
// авторитет по пересечению интервалов. Функция учитывает только активные брони
// и поддерживает исключение собственного id при редактировании.
const overlapQuery = `SELECT reservation_overlap_exists($1, $2, $3, $4)`

// Repository репозиторий для работы с бронями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую бронь
// Если в контексте передана активная транзакция, использует её. Создание брони
// всегда должно идти в одной транзакции с проверкой пересечения интервалов.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"hotel_id",
			"room_id",
			"user_id",
			"guest_name",
			"guest_phone",
			"guest_count",
			"start_at",
			"end_at",
			"status",
			"duration_kind",
			"duration_magnitude",
			"stay_duration_id",
			"base_amount",
			"extra_guest_amount",
			"total_amount",
			"notes",
			"origin",
		).
		Values(
			res.HotelID,
			res.RoomID,
			res.UserID,
			res.GuestName,
			res.GuestPhone,
			res.GuestCount,
			res.StartAt,
			res.EndAt,
			res.Status,
			res.DurationKind,
			res.DurationMagnitude,
			res.StayDurationID,
			res.BaseAmount,
			res.ExtraGuestAmount,
			res.TotalAmount,
			res.Notes,
			res.Origin,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// Update обновляет редактируемые поля брони
// Статус, отель и создатель неизменяемы после создания и здесь не трогаются
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("room_id", res.RoomID).
		Set("guest_name", res.GuestName).
		Set("guest_phone", res.GuestPhone).
		Set("guest_count", res.GuestCount).
		Set("start_at", res.StartAt).
		Set("end_at", res.EndAt).
		Set("duration_kind", res.DurationKind).
		Set("duration_magnitude", res.DurationMagnitude).
		Set("stay_duration_id", res.StayDurationID).
		Set("base_amount", res.BaseAmount).
		Set("extra_guest_amount", res.ExtraGuestAmount).
		Set("total_amount", res.TotalAmount).
		Set("notes", res.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// UpdateStatus обновляет статус брони
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete физически удаляет бронь (история не сохраняется, использовать осторожно)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// ListByHotel получает брони отеля в заданных статусах,
// отсортированные по времени заезда (ASC), с ограничением размера выборки
func (r *Repository) ListByHotel(ctx context.Context, hotelID int64, statuses []domain.ReservationStatus, limit uint64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("start_at ASC").
		Limit(limit)

	if len(statuses) > 0 {
		statusStrings := make([]string, len(statuses))
		for i, s := range statuses {
			statusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHotel - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHotel - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// HasOverlap спрашивает внешний авторитет, пересекается ли интервал
// [start, end) с активной бронью того же номера. excludeID исключает
// собственную бронь при редактировании и в протоколе освобождения номера.
func (r *Repository) HasOverlap(ctx context.Context, roomID int64, start, end time.Time, excludeID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var overlaps bool
	err := executor.QueryRowContext(ctx, overlapQuery, roomID, start, end, excludeID).Scan(&overlaps)
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlap - execute overlap check: %v", ErrExecQuery, err)
	}

	return overlaps, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.HotelID,
		&res.RoomID,
		&res.UserID,
		&res.GuestName,
		&res.GuestPhone,
		&res.GuestCount,
		&res.StartAt,
		&res.EndAt,
		&res.Status,
		&res.DurationKind,
		&res.DurationMagnitude,
		&res.StayDurationID,
		&res.BaseAmount,
		&res.ExtraGuestAmount,
		&res.TotalAmount,
		&res.Notes,
		&res.Origin,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс броней
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
