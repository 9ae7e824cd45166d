// Package idgen generates record identifiers. Ids are prefixed UUIDv7 values:
// collision-resistant and sortable by creation time, so a plain string sort of
// ids within one collection follows capture order.
package idgen

import "github.com/google/uuid"

// New returns a fresh identifier like "ins_0190cafe-....".
// The prefix hints at the owning collection and makes ids readable in exports.
func New(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the random source does; fall back to v4
		// rather than making every constructor fallible.
		id = uuid.New()
	}
	if prefix == "" {
		return id.String()
	}
	return prefix + "_" + id.String()
}
