// Package domain models the campus data feeds and their canonical,
// persisted-ready forms.
//
// # Data Sources
//
// Events and daily messages come from the campus WordPress events API
// (wp-json/wms/events/v1). Both feeds serve the same record shape: numeric
// post ID, category label, HTML-entity-encoded title/body/venue fields, a
// start date ("YYYY-MM-DD"), and a human-formatted time range. Dining menus
// come from a separate per-location menu endpoint as a flat item list
// tagged with meal and course labels.
//
// # Feed Conventions
//
// Time ranges:
//
//	"9:00 am - 10:00 am"  →  start/end clock times split on "-".
//	"All Day"             →  no separator; such records are excluded from
//	the events pipeline entirely rather than defaulted, since they carry no
//	usable start/end times.
//
// Timestamps:
//
//	The feed reports wall-clock times without a zone. They are interpreted
//	at a fixed -04:00 offset (matching the upstream deployment) and stored
//	as epoch milliseconds.
//
// Text fields:
//
//	Titles, bodies, and venue names arrive HTML-entity-encoded
//	("Caf&#233;" → "Café") and are decoded during normalization.
//
// Header colors:
//
//	The shared category→color table lives in the resources collection and
//	is maintained outside this service. Unmapped categories fall back to
//	the table's "Default" entry.
//
// Dining meal labels:
//
//	Upstream labels are free-form. Only breakfast, brunch, lunch, and
//	dinner are recognized (case-insensitive), plus any per-location extras
//	such as a snack bar; everything else is dropped. Items with a blank
//	course label are grouped under "Entrees".
package domain
