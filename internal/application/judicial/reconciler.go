package judicial

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
)

const (
	tableUserProfiles   = "user_profiles"
	tableAppointments   = "judicial_appointments"
	tableAuthorisations = "judicial_authorisations"
	tableRoleTypes      = "judicial_role_types"
)

// stepFailure is one failed reconciliation step, addressed precisely
// enough for an operator to find the offending row.
type stepFailure struct {
	table string
	field string
	key   string
	err   error
}

// Reconciler upserts one person at a time: profile first, then the nested
// appointments, authorisations and judiciary roles. Every step is wrapped
// independently so a store failure in one unit degrades to an exception
// record instead of failing siblings or the run.
type Reconciler struct {
	profiles       domain.ProfileStore
	appointments   domain.AppointmentStore
	authorisations domain.AuthorisationStore
	roles          domain.RoleStore
	resolver       *ReferenceResolver
	recorder       *ExceptionRecorder
	roleNames      domain.RoleNameSet
	now            func() time.Time
	log            *zap.Logger
}

func NewReconciler(
	profiles domain.ProfileStore,
	appointments domain.AppointmentStore,
	authorisations domain.AuthorisationStore,
	roles domain.RoleStore,
	resolver *ReferenceResolver,
	recorder *ExceptionRecorder,
	roleNames domain.RoleNameSet,
	log *zap.Logger,
) *Reconciler {
	return &Reconciler{
		profiles:       profiles,
		appointments:   appointments,
		authorisations: authorisations,
		roles:          roles,
		resolver:       resolver,
		recorder:       recorder,
		roleNames:      roleNames,
		now:            time.Now,
		log:            log,
	}
}

// ReconcilePage processes every record on a page, recording an exception
// per failed step and tallying the outcome.
func (r *Reconciler) ReconcilePage(ctx context.Context, runStart time.Time, page Page) domain.PageOutcome {
	outcome := domain.PageOutcome{}

	for _, record := range page.Records {
		outcome.RecordsProcessed++

		if record.Err != nil {
			outcome.RecordsFailed++
			outcome.ExceptionsRecorded++
			r.recorder.Record(ctx, runStart, record.RowID, tableUserProfiles,
				"personal_code", record.RowID, record.Err.Error())
			continue
		}

		failures, skipped := r.reconcilePerson(ctx, *record.Person)
		outcome.AppointmentsSkipped += skipped

		if len(failures) > 0 {
			outcome.RecordsFailed++
			outcome.ExceptionsRecorded += len(failures)
			for _, failure := range failures {
				r.recorder.Record(ctx, runStart, record.RowID, failure.table,
					failure.field, failure.key, failure.err.Error())
			}
		}
	}

	return outcome
}

func (r *Reconciler) reconcilePerson(ctx context.Context, person domain.PersonRecord) ([]stepFailure, int) {
	var failures []stepFailure

	code := person.PersonalCode

	if err := r.profiles.Upsert(ctx, buildProfile(person, r.now())); err != nil {
		// Without a profile row the nested writes would be orphaned, so
		// the remaining steps are skipped for this person only.
		return []stepFailure{{
			table: tableUserProfiles,
			field: "personal_code",
			key:   code,
			err:   err,
		}}, 0
	}

	appointmentFailures, skipped := r.reconcileAppointments(ctx, person)
	failures = append(failures, appointmentFailures...)
	failures = append(failures, r.reconcileAuthorisations(ctx, person)...)
	failures = append(failures, r.reconcileRoles(ctx, person)...)

	return failures, skipped
}

func (r *Reconciler) reconcileAppointments(ctx context.Context, person domain.PersonRecord) ([]stepFailure, int) {
	var failures []stepFailure
	skipped := 0

	code := person.PersonalCode

	if err := r.appointments.DeleteByPersonalCode(ctx, code); err != nil {
		failures = append(failures, stepFailure{
			table: tableAppointments,
			field: "personal_code",
			key:   code,
			err:   err,
		})
	}

	for _, appointment := range person.Appointments {
		if !r.roleNames.Contains(appointment.RoleName) {
			skipped++
			r.log.Debug("skipping appointment with unrecognized role name",
				zap.String("personal_code", code),
				zap.String("role_name", appointment.RoleName))
			continue
		}

		resolved := r.resolver.Resolve(ctx, appointment)
		if err := r.appointments.Insert(ctx, code, resolved); err != nil {
			failures = append(failures, stepFailure{
				table: tableAppointments,
				field: "base_location_id",
				key:   fmt.Sprintf("%s/%s/%s", code, resolved.BaseLocationID, resolved.StartDate.Format("2006-01-02")),
				err:   err,
			})
		}
	}

	return failures, skipped
}

func (r *Reconciler) reconcileAuthorisations(ctx context.Context, person domain.PersonRecord) []stepFailure {
	var failures []stepFailure

	code := person.PersonalCode

	if err := r.authorisations.DeleteByPersonalCode(ctx, code); err != nil {
		failures = append(failures, stepFailure{
			table: tableAuthorisations,
			field: "personal_code",
			key:   code,
			err:   err,
		})
	}

	for _, authorisation := range person.Authorisations {
		if err := r.authorisations.Insert(ctx, code, authorisation); err != nil {
			failures = append(failures, stepFailure{
				table: tableAuthorisations,
				field: "ticket_code",
				key:   fmt.Sprintf("%s/%s", code, authorisation.TicketCode),
				err:   err,
			})
		}
	}

	return failures
}

func (r *Reconciler) reconcileRoles(ctx context.Context, person domain.PersonRecord) []stepFailure {
	var failures []stepFailure

	code := person.PersonalCode

	if err := r.roles.DeleteByPersonalCode(ctx, code); err != nil {
		failures = append(failures, stepFailure{
			table: tableRoleTypes,
			field: "personal_code",
			key:   code,
			err:   err,
		})
	}

	for _, role := range person.JudiciaryRoles {
		if err := r.roles.Insert(ctx, code, role); err != nil {
			failures = append(failures, stepFailure{
				table: tableRoleTypes,
				field: "judiciary_role_id",
				key:   fmt.Sprintf("%s/%s", code, role.JudiciaryRoleID),
				err:   err,
			})
		}
	}

	return failures
}

func buildProfile(person domain.PersonRecord, now time.Time) domain.UserProfile {
	return domain.UserProfile{
		PersonalCode:    person.PersonalCode,
		KnownAs:         person.KnownAs,
		Surname:         person.Surname,
		FullName:        person.FullName,
		PostNominals:    person.PostNominals,
		Email:           person.Email,
		ObjectID:        person.ObjectID,
		Initials:        person.Initials,
		LastWorkingDate: person.LastWorkingDate,
		ActiveFlag:      person.Active(now),
	}
}
