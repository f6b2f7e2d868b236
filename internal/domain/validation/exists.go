package validation

import (
	"context"
	"fmt"
	"strings"
)

// ExistsFunc looks up which of the given ids exist in their owning store.
// It returns the subset that was found, in any order.
type ExistsFunc[ID ~string] func(ctx context.Context, ids []ID) ([]ID, error)

// CheckExists verifies that every id in ids exists according to exists.
//
// An empty or nil id set is always valid and performs no lookup. Otherwise
// exists is called exactly once with the full set; ids it does not return
// are reported as a single error listing the missing ids in input order.
// A lookup failure is also folded into the notification rather than
// surfaced as an error, so reference problems never abort the other checks
// running for the same command.
func CheckExists[ID ~string](ctx context.Context, label string, ids []ID, exists ExistsFunc[ID]) *Notification {
	notification := NewNotification()
	if len(ids) == 0 {
		return notification
	}

	found, err := exists(ctx, ids)
	if err != nil {
		return notification.AppendMessage(fmt.Sprintf("could not verify %s references", label))
	}

	existing := make(map[ID]struct{}, len(found))
	for _, id := range found {
		existing[id] = struct{}{}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			missing = append(missing, string(id))
		}
	}
	if len(missing) > 0 {
		notification.AppendMessage(fmt.Sprintf("Some %s could not be found: %s", label, strings.Join(missing, ", ")))
	}
	return notification
}
