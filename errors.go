package facilitylocator

import "errors"

// Request failures fall into two classes the API keeps distinct: client-input
// errors (the caller can fix the request) and no-solution errors (the network
// data cannot serve the request).
var (
	// ErrInvalidMarker wraps per-marker validation failures: bad coordinates
	// or a malformed quantity. Raised before any graph work begins.
	ErrInvalidMarker = errors.New("invalid marker")

	// ErrInsufficientData means the request holds no supply points or no
	// demand points at all.
	ErrInsufficientData = errors.New("at least one supply and one demand marker are required")

	// ErrNoViableComponent means no connected component contains both supply
	// and demand points, even after bridging.
	ErrNoViableComponent = errors.New("no network component connects supply and demand points")

	// ErrNoFeasibleOptimum means the search failed in every viable component.
	ErrNoFeasibleOptimum = errors.New("no feasible optimum found in any component")
)

// IsClientError reports whether err belongs to the fix-your-input class.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidMarker) ||
		errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrNoViableComponent)
}
