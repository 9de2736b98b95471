package judicial

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
)

// ReferenceResolver enriches an appointment with reference-data lookups:
// the region behind the circuit description, the parent of the base
// location, and the external epimms id for the location. Lookups are
// read-only; a miss leaves the field blank and is never an error.
type ReferenceResolver struct {
	lookups domain.LocationLookup
	log     *zap.Logger
}

func NewReferenceResolver(lookups domain.LocationLookup, log *zap.Logger) *ReferenceResolver {
	return &ReferenceResolver{lookups: lookups, log: log}
}

func (r *ReferenceResolver) Resolve(ctx context.Context, appointment domain.AppointmentRecord) domain.ResolvedAppointment {
	resolved := domain.ResolvedAppointment{AppointmentRecord: appointment}

	resolved.RegionID = r.lookup(ctx, "region", appointment.Circuit, r.lookups.RegionIDByDescription)
	resolved.EpimmsID = r.lookup(ctx, "epimms", appointment.Location, r.lookups.EpimmsIDForLocation)

	if parent := r.lookup(ctx, "parent base location", appointment.BaseLocationID, r.lookups.ParentBaseLocationID); parent != "" {
		resolved.BaseLocationID = parent
	}

	return resolved
}

func (r *ReferenceResolver) lookup(ctx context.Context, what, key string, fn func(context.Context, string) (string, error)) string {
	if key == "" {
		return ""
	}

	value, err := fn(ctx, key)
	if err != nil {
		// Lookup errors degrade to a blank field, same as a miss.
		r.log.Warn("reference lookup failed",
			zap.String("lookup", what),
			zap.String("key", key),
			zap.Error(err))
		return ""
	}
	return value
}
