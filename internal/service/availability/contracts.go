package availability

import (
	"context"
	"time"
)

// OverlapChecker интерфейс проверки пересечения интервалов.
// Авторитет по пересечениям живёт в БД (функция reservation_overlap_exists),
// сервис лишь интерпретирует её ответ.
type OverlapChecker interface {
	HasOverlap(ctx context.Context, roomID int64, start, end time.Time, excludeID *int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
