// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import "time"

// Clock abstracts the current time so reporting use cases can be tested
// against a fixed reference month.
type Clock interface {
	Now() time.Time
}
