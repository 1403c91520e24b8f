package booking

import (
	"context"
	"sort"

	"urbanhelp/models"

	"go.uber.org/zap"
)

// UserHistory merges the raw and approved stores into one view per booking.
// The approved record is authoritative post-approval, so its fields win for
// overlapping keys. A booking present in both stores appears exactly once.
// Results are sorted by booking date, newest first.
func (e *DefaultEngine) UserHistory(ctx context.Context, email string) ([]models.BookingView, error) {
	raw, err := e.Repo.GetByClientEmail(email)
	if err != nil {
		return nil, NewPersistenceError("failed to load bookings", err)
	}
	approved, err := e.Repo.GetApprovedByClientEmail(email)
	if err != nil {
		return nil, NewPersistenceError("failed to load approved bookings", err)
	}

	services, workers := e.referenceMaps()

	// Stable key: the raw booking id, which approved records carry as
	// originalBookingId.
	merged := make(map[string]models.BookingView, len(raw))
	for _, b := range raw {
		merged[b.ID] = e.viewFromBooking(b, services, workers)
	}
	for _, ab := range approved {
		key := ab.OriginalBookingID
		if key == "" {
			key = ab.ID
		}
		view, ok := merged[key]
		if !ok {
			view = models.BookingView{ID: key, IsApproved: true}
		}
		// Approved fields take precedence.
		view.ApprovedBookingID = ab.ID
		view.Status = ab.Status
		view.IsPaid = ab.IsPaid
		view.Duration = ab.Duration
		view.Charge = ab.Charge
		view.Date = ab.Date
		view.Time = ab.Time
		view.ClientInfo = ab.ClientInfo
		if svc, ok := services[ab.ServiceID]; ok {
			view.Service = svc
		}
		if w, ok := workers[ab.ApprovedWorkerID]; ok {
			worker := w
			view.Worker = &worker
		}
		merged[key] = view
	}

	views := make([]models.BookingView, 0, len(merged))
	for _, v := range merged {
		views = append(views, v)
	}
	// Tie-break equal dates so the ordering is stable across calls; the map
	// iteration above is not.
	sort.Slice(views, func(i, j int) bool {
		if !views[i].Date.Equal(views[j].Date) {
			return views[i].Date.After(views[j].Date)
		}
		if !views[i].CreatedAt.Equal(views[j].CreatedAt) {
			return views[i].CreatedAt.After(views[j].CreatedAt)
		}
		return views[i].ID < views[j].ID
	})
	return views, nil
}

// ListAll returns every raw booking with references resolved, newest first.
func (e *DefaultEngine) ListAll(ctx context.Context) ([]models.BookingView, error) {
	bookings, err := e.Repo.GetAll()
	if err != nil {
		return nil, NewPersistenceError("failed to load bookings", err)
	}

	services, workers := e.referenceMaps()
	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, e.viewFromBooking(b, services, workers))
	}
	return views, nil
}

// referenceMaps loads the service catalog and worker directory for reference
// resolution. Lookup failures degrade to unresolved summaries rather than
// failing the listing.
func (e *DefaultEngine) referenceMaps() (map[string]models.ServiceSummary, map[string]models.WorkerSummary) {
	services := map[string]models.ServiceSummary{}
	if all, err := e.Services.GetAll(); err != nil {
		e.logger().Warn("failed to load service catalog for resolution", zap.Error(err))
	} else {
		for i := range all {
			services[all[i].ID] = all[i].Summary()
		}
	}

	workers := map[string]models.WorkerSummary{}
	if all, err := e.Workers.GetAll(); err != nil {
		e.logger().Warn("failed to load worker directory for resolution", zap.Error(err))
	} else {
		for i := range all {
			workers[all[i].ID] = all[i].Summary()
		}
	}
	return services, workers
}

func (e *DefaultEngine) viewFromBooking(b models.Booking, services map[string]models.ServiceSummary, workers map[string]models.WorkerSummary) models.BookingView {
	view := models.BookingView{
		ID:         b.ID,
		Duration:   b.Duration,
		Charge:     b.Charge,
		Date:       b.Date,
		Time:       b.Time,
		ClientInfo: b.ClientInfo,
		Status:     b.Status,
		IsApproved: b.IsApproved,
		IsPaid:     b.IsPaid,
		CreatedAt:  b.CreatedAt,
	}
	if svc, ok := services[b.ServiceID]; ok {
		view.Service = svc
	} else {
		view.Service = models.ServiceSummary{ID: b.ServiceID}
	}
	if b.ApprovedWorkerID != "" {
		if w, ok := workers[b.ApprovedWorkerID]; ok {
			worker := w
			view.Worker = &worker
		}
	}
	return view
}
