package service

import (
	"context"
	"strings"

	"github.com/castlemilk/bankroll/internal/metrics"
	"github.com/castlemilk/bankroll/internal/store"
	"github.com/rs/zerolog"
)

// Outcome is what a trigger did with a change.
type Outcome string

const (
	OutcomeRecomputed Outcome = "recomputed"
	OutcomeIgnored    Outcome = "ignored"
	OutcomeFailed     Outcome = "failed"
)

// watchedCollections are the tenant subcollections whose writes change the state.
var watchedCollections = map[string]bool{
	store.TransactionsCollection:   true,
	store.ClosedDaysCollection:     true,
	store.ArbitragePairsCollection: true,
	store.FreeCreditsCollection:    true,
}

// otherCollection labels trigger metrics for collections that are not watched.
const otherCollection = "other"

// Watched reports whether writes to collection trigger a recomputation.
func Watched(collection string) bool {
	return watchedCollections[collection]
}

// collectionLabel bounds the metric label to the watched collections.
func collectionLabel(collection string) string {
	if Watched(collection) {
		return collection
	}
	return otherCollection
}

// ParseDocumentPath extracts the tenant and collection of a changed document. It
// accepts relative paths (tenants/t1/transactions/tx1) and full resource names
// (projects/p/databases/(default)/documents/tenants/t1/transactions/tx1). A path
// outside a tenant yields an empty tenantID.
func ParseDocumentPath(path string) (tenantID, collection string) {
	if i := strings.Index(path, "/documents/"); i >= 0 {
		path = path[i+len("/documents/"):]
	}
	path = strings.TrimPrefix(path, "documents/")
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) < 3 || parts[0] != store.TenantsCollection {
		return "", ""
	}
	return parts[1], parts[2]
}

// Trigger recomputes a tenant's state after a relevant write. Failures are logged
// and swallowed: the next write or an explicit recalculation repairs the state.
type Trigger struct {
	recomputer *Recomputer
	source     string
}

// NewTrigger creates a Trigger for change events
func NewTrigger(r *Recomputer) *Trigger {
	return &Trigger{recomputer: r, source: metrics.SourceTrigger}
}

// inProcess returns a trigger labelled as fired by a write in this process.
func (t *Trigger) inProcess() *Trigger {
	return &Trigger{recomputer: t.recomputer, source: metrics.SourceWrite}
}

// HandleChange reacts to a change of the document at path.
func (t *Trigger) HandleChange(ctx context.Context, path string) Outcome {
	tenantID, collection := ParseDocumentPath(path)
	return t.Fire(ctx, tenantID, collection)
}

// Fire recomputes tenantID when collection is watched. A missing tenant is a no-op.
func (t *Trigger) Fire(ctx context.Context, tenantID, collection string) Outcome {
	logger := zerolog.Ctx(ctx)
	label := collectionLabel(collection)

	if tenantID == "" || !Watched(collection) {
		logger.Debug().Str("collection", collection).Msg("change ignored")
		metrics.IncTriggerEvent(label, string(OutcomeIgnored))
		return OutcomeIgnored
	}

	if _, err := t.recomputer.Recompute(ctx, tenantID, t.source); err != nil {
		logger.Error().Err(err).
			Str("component", "Trigger").
			Str("tenant_id", tenantID).
			Str("collection", collection).
			Msg("recomputation failed")
		metrics.IncTriggerEvent(label, string(OutcomeFailed))
		return OutcomeFailed
	}

	metrics.IncTriggerEvent(label, string(OutcomeRecomputed))
	return OutcomeRecomputed
}
