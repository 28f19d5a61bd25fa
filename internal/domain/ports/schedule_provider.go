package ports

import (
	"context"

	"bin-reminder/internal/domain/model"
)

// ScheduleProvider fetches the raw collection schedule for an address.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, uprn string) (model.ScheduleResponse, error)
}
