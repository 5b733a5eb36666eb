package hotel

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

// Repository репозиторий для чтения конфигурации отеля
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отелей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetConfig получает конфигурацию отеля по ID
func (r *Repository) GetConfig(ctx context.Context, hotelID int64) (*domain.HotelConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "checkout_hour").
		From("hotels").
		Where(squirrel.Eq{"id": hotelID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.HotelConfig
	var checkoutHour string
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.HotelID,
		&cfg.Name,
		&checkoutHour,
	)
	if err == sql.ErrNoRows {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - scan hotel config: %v", ErrExecQuery, err)
	}

	cfg.CheckoutHour = types.TimeString(checkoutHour)

	return &cfg, nil
}
