package services

import (
	"context"
	"sort"
	"strings"

	"github.com/Zharokiecoder/GITEX2/logger"
	"github.com/Zharokiecoder/GITEX2/store"
	"github.com/Zharokiecoder/GITEX2/types"
	"go.uber.org/zap"
)

// MaxQueryResults caps admin list responses. There is no pagination beyond
// this cap.
const MaxQueryResults = 1000

// AdminsPlaceholder is the constant reported as the admin count; there is no
// real tenant model behind it.
const AdminsPlaceholder = 1

// AdminQueryService serves the read side of the admin dashboard: filtered
// search over registrations, redacted feedback views and aggregate counts.
// When the storage backend is unreachable it degrades to empty results so
// the dashboard stays functional during partial outages.
type AdminQueryService struct {
	store store.Store
	log   *zap.SugaredLogger
}

func NewAdminQueryService(s store.Store) *AdminQueryService {
	return &AdminQueryService{
		store: s,
		log:   logger.GetLogger(),
	}
}

// ListRegistrations returns registrations newest-first. A blank search term
// returns everything; otherwise the lower-cased term must be a substring of
// firstName, lastName, email or location.
func (svc *AdminQueryService) ListRegistrations(ctx context.Context, searchTerm string) []*types.Registration {
	regs, err := svc.store.Registrations().List(ctx)
	if err != nil {
		svc.log.Warnw("Registration query degraded to empty results", "error", err)
		return []*types.Registration{}
	}

	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term != "" {
		// Filter into a fresh slice; the store's slice is never mutated
		filtered := make([]*types.Registration, 0, len(regs))
		for _, reg := range regs {
			if matchesRegistration(reg, term) {
				filtered = append(filtered, reg)
			}
		}
		regs = filtered
	}

	sort.SliceStable(regs, func(i, j int) bool {
		return regs[i].Timestamp.After(regs[j].Timestamp)
	})

	if len(regs) > MaxQueryResults {
		regs = regs[:MaxQueryResults]
	}
	if regs == nil {
		regs = []*types.Registration{}
	}
	return regs
}

func matchesRegistration(reg *types.Registration, term string) bool {
	for _, field := range []string{reg.FirstName, reg.LastName, reg.Email, reg.Location} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// ListFeedbacks returns all feedback newest-first as redacted views. The
// submitter identity is a fixed placeholder and the combined display text
// joins the non-empty parts with "; ".
func (svc *AdminQueryService) ListFeedbacks(ctx context.Context) []*types.FeedbackView {
	fbs, err := svc.store.Feedbacks().List(ctx)
	if err != nil {
		svc.log.Warnw("Feedback query degraded to empty results", "error", err)
		return []*types.FeedbackView{}
	}

	sort.SliceStable(fbs, func(i, j int) bool {
		return fbs[i].Timestamp.After(fbs[j].Timestamp)
	})

	views := make([]*types.FeedbackView, 0, len(fbs))
	for _, fb := range fbs {
		if len(views) == MaxQueryResults {
			break
		}
		views = append(views, newFeedbackView(fb))
	}
	return views
}

func newFeedbackView(fb *types.Feedback) *types.FeedbackView {
	var parts []string
	if fb.Feedback1 != "" {
		parts = append(parts, fb.Feedback1)
	}
	if fb.Feedback2 != "" {
		parts = append(parts, fb.Feedback2)
	}

	return &types.FeedbackView{
		ID:          fb.ID,
		Name:        types.RedactedName,
		Feedback1:   fb.Feedback1,
		Feedback2:   fb.Feedback2,
		DisplayText: strings.Join(parts, "; "),
		Rating:      fb.Rating,
		Timestamp:   fb.Timestamp,
	}
}

// GetStats returns the exact record counts for both entity types, reflecting
// at least the last completed write visible to this instance. Counts degrade
// to zero when the backend is unreachable.
func (svc *AdminQueryService) GetStats(ctx context.Context) types.StatsResponse {
	stats := types.StatsResponse{Admins: AdminsPlaceholder}

	if n, err := svc.store.Registrations().Count(ctx); err != nil {
		svc.log.Warnw("Registration count degraded to zero", "error", err)
	} else {
		stats.Registrations = n
	}

	if n, err := svc.store.Feedbacks().Count(ctx); err != nil {
		svc.log.Warnw("Feedback count degraded to zero", "error", err)
	} else {
		stats.Feedbacks = n
	}

	return stats
}
