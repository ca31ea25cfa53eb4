// Package policyprism analyses insurance-policy documents fetched from
// carrier portals. It extracts structured facts (policy number, dates,
// monetary amounts, riders, coverage types) along with derived highlights,
// warnings, and follow-up actions, under strict resource guardrails suited
// to arbitrary third-party documents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, pdf/, sqlite/, gemini/).
package policyprism
