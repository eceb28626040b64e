// Package types - Shared estimator types
package types

// StepID identifies a configurator step
type StepID string

const (
	// StepScale is the project scale step
	StepScale StepID = "scale"

	// StepInfra is the infrastructure/hosting step
	StepInfra StepID = "infra"

	// StepManagement is the content management step
	StepManagement StepID = "management"

	// StepFunction is the functional modules step
	StepFunction StepID = "function"

	// StepDesign is the design language step
	StepDesign StepID = "design"

	// StepMarketing is the digital marketing step
	StepMarketing StepID = "marketing"

	// StepSocial is the social media step
	StepSocial StepID = "social"

	// StepAddons is the technical add-ons step
	StepAddons StepID = "addons"
)

// String returns the string representation
func (s StepID) String() string {
	return string(s)
}

// SelectionKind constrains how many options of a step may be active
type SelectionKind string

const (
	// SelectSingle - exactly one option is active at all times
	SelectSingle SelectionKind = "single"

	// SelectMulti - zero or more options are active
	SelectMulti SelectionKind = "multi"
)

// Currency represents a currency code
type Currency string

const (
	// CurrencyTRY is the Turkish lira, the site's single fixed currency
	CurrencyTRY Currency = "TRY"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}
