package reconcile

import "context"

// Asset is a tracked physical item as known by the registry.
type Asset struct {
	// Code is the unique asset identifier.
	Code string `json:"code"`

	// Location is the canonical location the asset is registered at.
	Location string `json:"location"`

	// Description is the human readable description.
	Description string `json:"description"`
}

// Registry provides read-only access to the canonical asset registry.
type Registry interface {
	// FindByCode returns the asset with the given code, or an apperror.ErrNotFound.
	FindByCode(ctx context.Context, code string) (*Asset, error)

	// FindByLocation returns every asset registered at location.
	FindByLocation(ctx context.Context, location string) ([]Asset, error)

	// FindByCodes returns the assets whose code is in codes. Unknown codes are omitted.
	FindByCodes(ctx context.Context, codes []string) ([]Asset, error)
}

// Entry is a verified or missing asset in a reconciliation result.
type Entry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ForeignEntry is a scanned asset registered at another location.
type ForeignEntry struct {
	Code        string `json:"code"`
	Description string `json:"description"`

	// ActualLocation is the canonical location of the asset.
	ActualLocation string `json:"actual_location"`
}

// Result is the classification of a set of scanned codes against a location.
type Result struct {
	// Location is the target location that was reconciled.
	Location string `json:"location"`

	// TotalScanned counts the distinct codes submitted, known or not.
	TotalScanned int `json:"total_scanned"`

	// TotalExpected counts the assets registered at the location.
	TotalExpected int `json:"total_expected"`

	VerifiedCount int `json:"verified_count"`
	MissingCount  int `json:"missing_count"`
	ForeignCount  int `json:"foreign_count"`

	Verified []Entry        `json:"verified"`
	Missing  []Entry        `json:"missing"`
	Foreign  []ForeignEntry `json:"foreign"`
}

// Verification is the outcome of checking one code against a declared location.
type Verification struct {
	Asset Asset `json:"asset"`

	// DeclaredLocation is where the scanner says the asset was found.
	DeclaredLocation string `json:"declared_location"`

	// Belongs is true when the declared location is the asset's canonical location.
	Belongs bool `json:"belongs"`

	// ActualLocation is set only when Belongs is false.
	ActualLocation *string `json:"actual_location,omitempty"`
}
