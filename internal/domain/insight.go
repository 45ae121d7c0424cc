package domain

import (
	"time"
)

type InsigthFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
