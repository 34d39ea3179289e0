package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the drafts and learning_outbox
// collections exist. Drafts hold debounced session snapshots; the outbox
// holds learning records awaiting delivery to the learning endpoint.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "drafts", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "session", Required: true})
		c.Fields.Add(&core.TextField{Name: "snapshot", Required: true, Max: 1 << 20})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "learning_outbox", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "record_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "quote", Required: false})
		c.Fields.Add(&core.TextField{Name: "component", Required: false})
		c.Fields.Add(&core.TextField{Name: "payload", Required: true, Max: 1 << 16})
		c.Fields.Add(&core.NumberField{Name: "attempts", Required: false})
		c.Fields.Add(&core.TextField{Name: "next_attempt", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
