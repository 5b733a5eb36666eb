package availability

import (
	"context"
	"fmt"
	"time"
)

// Gate сервис проверки доступности номера на интервале.
// Единственная точка, через которую создание и редактирование брони
// спрашивают "свободен ли номер". Fail-closed: если ответ получить
// не удалось, номер считается занятым.
type Gate struct {
	checker OverlapChecker
	logger  Logger
}

// NewGate создает новый экземпляр сервиса доступности
func NewGate(checker OverlapChecker, logger Logger) *Gate {
	return &Gate{
		checker: checker,
		logger:  logger,
	}
}

// HasConflict проверяет, пересекается ли интервал [start, end) с активной
// бронью номера. excludeID исключает собственную бронь при редактировании.
// При ошибке проверки возвращает (true, ErrCheckFailed).
func (g *Gate) HasConflict(ctx context.Context, roomID int64, start, end time.Time, excludeID *int64) (bool, error) {
	overlaps, err := g.checker.HasOverlap(ctx, roomID, start, end, excludeID)
	if err != nil {
		g.logger.Error("HasConflict: overlap check failed for room=%d: %v", roomID, err)
		return true, fmt.Errorf("%w: %v", ErrCheckFailed, err)
	}

	if overlaps {
		g.logger.Warn("HasConflict: room=%d is taken on [%s, %s)",
			roomID, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	return overlaps, nil
}

// EnsureAvailable возвращает nil, только если интервал свободен.
// Занятый интервал - ErrConflict, неудавшаяся проверка - ErrCheckFailed.
func (g *Gate) EnsureAvailable(ctx context.Context, roomID int64, start, end time.Time, excludeID *int64) error {
	overlaps, err := g.HasConflict(ctx, roomID, start, end, excludeID)
	if err != nil {
		return err
	}
	if overlaps {
		return ErrConflict
	}
	return nil
}
