// Package ledger coordinates storage and the calculator: it loads an
// event's records, recomputes every balance view from scratch and guards
// the write boundary.
package ledger

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mmynk/carnival/internal/calculator"
	"github.com/mmynk/carnival/internal/metrics"
	"github.com/mmynk/carnival/internal/storage"
)

// DefaultDriftThreshold is the share drift above which a warning is logged.
var DefaultDriftThreshold = decimal.New(1, -2)

// Service owns no ledger state between calls. Every view is recomputed
// from the store.
type Service struct {
	store          storage.Store
	metrics        *metrics.Metrics
	validate       *validator.Validate
	policy         calculator.ReconcilePolicy
	driftThreshold decimal.Decimal
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics reports recomputes, gaps and writes to m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithPolicy selects how settlement lines are marked paid.
func WithPolicy(p calculator.ReconcilePolicy) Option {
	return func(s *Service) { s.policy = p }
}

// WithDriftThreshold sets the share drift tolerated before a gap is reported.
func WithDriftThreshold(d decimal.Decimal) Option {
	return func(s *Service) { s.driftThreshold = d }
}

// New creates a Service over store.
func New(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:          store,
		validate:       newValidator(),
		policy:         calculator.PolicyPresence,
		driftThreshold: DefaultDriftThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy returns the reconcile policy in use.
func (s *Service) Policy() calculator.ReconcilePolicy {
	return s.policy
}

// newValidator lets decimal fields take numeric tags such as gt=0.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}
