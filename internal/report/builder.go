package report

import (
	"fmt"

	"firestige.xyz/ifreport/internal/core"
	"firestige.xyz/ifreport/internal/ifquery"
)

// Builder produces interface reports. It holds no state beyond the
// querier and is safe for concurrent use; every Build call issues its own
// independent kernel queries.
type Builder struct {
	querier ifquery.Querier
}

// NewBuilder returns a Builder backed by q. A nil q selects the ioctl
// querier.
func NewBuilder(q ifquery.Querier) *Builder {
	if q == nil {
		q = ifquery.NewQuerier()
	}
	return &Builder{querier: q}
}

// Build assembles a report for ifname containing exactly the requested
// fields, in the requested order. Each field that needs kernel state
// issues one query of its own; the raw buffer is never reused across
// fields. Any failure aborts the whole report, tagged with the field
// being processed. No partial report is ever returned.
func (b *Builder) Build(ifname string, fields []string) (*core.Report, error) {
	if ifname == "" {
		return nil, fmt.Errorf("%w: empty interface name", core.ErrQueryFailed)
	}

	// Reject unknown fields up front so no query is issued for a
	// request that cannot complete.
	for _, f := range fields {
		if !Supported(f) {
			return nil, fmt.Errorf("%w: %q", core.ErrUnknownField, f)
		}
	}

	rep := core.NewReport()
	for _, f := range fields {
		rc := recipes[f]
		if !rc.query {
			rep.Set(f, ifname)
			continue
		}
		value, err := b.fieldValue(ifname, rc)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f, err)
		}
		rep.Set(f, value)
	}
	return rep, nil
}

func (b *Builder) fieldValue(ifname string, rc recipe) (string, error) {
	buf, err := b.querier.Query(ifname, rc.selector)
	if err != nil {
		return "", err
	}
	raw, err := ifquery.Extract(buf, rc.kind)
	if err != nil {
		return "", err
	}
	return rc.normalize(raw)
}
