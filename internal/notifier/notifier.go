// Package notifier announces newly listed resources.
//
// Announcements run after the catalog snapshot is saved, so a failed or
// partial announcement never affects the generated catalog itself.
package notifier

import (
	"github.com/khendrix/atltech/internal/catalog"
)

// Notifier posts announcements for newly listed catalog entries.
type Notifier interface {
	Notify(entries []*catalog.Entry) error
}
