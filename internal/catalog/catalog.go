package catalog

import (
	"context"

	"bet-engine/internal/model"
)

// Catalog is the read-only event/odds source the bet engine consumes. The
// engine never writes event data; odds and schedule belong to whoever feeds
// the events table.
type Catalog interface {
	EventByID(ctx context.Context, eventID int64) (*model.Event, error)
}
