// Package main implements the inventory demo: a keyed store of items loaded
// from a JSON flat file (absent file means empty store), mutated in memory,
// saved back whole, and reloaded to show the round trip.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/davidegreene/storelab/internal/config"
	"github.com/davidegreene/storelab/internal/domain"
	"github.com/davidegreene/storelab/internal/persist"
	"github.com/davidegreene/storelab/internal/platform/logger"
	"github.com/davidegreene/storelab/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	appLogger := logger.Setup(cfg.App).With("run_id", uuid.NewString(), "demo", "inventory")
	appLogger.Info("starting inventory demo", "data_file", cfg.Inventory.DataFile)

	items, err := persist.LoadStore(cfg.Inventory.DataFile)
	if err != nil {
		log.Fatalf("failed to load inventory: %v", err)
	}
	appLogger.Info("loaded inventory", "count", items.Len())

	if items.Len() == 0 {
		seed := []struct {
			id       int
			name     string
			quantity int
		}{
			{1, "Ledger notebooks", 40},
			{2, "Label printer", 3},
			{3, "Packing tape", 250},
		}
		for _, s := range seed {
			item, err := domain.NewItem(s.id, s.name, s.quantity)
			if err != nil {
				log.Fatalf("bad seed data: %v", err)
			}
			if err := items.Insert(item); err != nil {
				log.Fatalf("failed to seed inventory: %v", err)
			}
		}
		appLogger.Info("seeded empty inventory", "count", items.Len())
	}

	fmt.Println("Inventory on hand:")
	printItems(items.GetAll())

	// The day's movements: tape is consumed, a new item arrives.
	if err := items.Update(3, func(i domain.Item) (domain.Item, error) {
		return i.WithQuantity(i.Quantity - 30)
	}); err != nil {
		appLogger.Error("stock adjustment failed", "error", err)
	}
	boxCutter, err := domain.NewItem(4, "Box cutters", 12)
	if err != nil {
		log.Fatalf("bad item: %v", err)
	}
	if err := items.Insert(boxCutter); err != nil {
		// Already present from an earlier run; that is fine.
		if !store.IsDuplicateError(err) {
			log.Fatalf("failed to add item: %v", err)
		}
		appLogger.Info("item already on file", "id", boxCutter.ID)
	}

	if err := persist.SaveStore(cfg.Inventory.DataFile, items); err != nil {
		log.Fatalf("failed to save inventory: %v", err)
	}
	appLogger.Info("saved inventory", "count", items.Len())

	reloaded, err := persist.LoadStore(cfg.Inventory.DataFile)
	if err != nil {
		log.Fatalf("failed to reload inventory: %v", err)
	}
	fmt.Println("\nInventory after reload:")
	printItems(reloaded.GetAll())
}

func printItems(items []domain.Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQUANTITY\tDATE ADDED")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", item.ID, item.Name, item.Quantity, item.DateAdded.Format("2006-01-02"))
	}
	w.Flush()
}
