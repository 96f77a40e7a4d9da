// Package services holds domain services that do not belong to a single
// aggregate. RuleAddressValidator checks postal addresses against
// per-country formatting rules.
package services
