// Package main implements the warehouse demo: a handful of seeded products
// in a keyed store, quantity adjustments, and the rejection paths a careless
// caller runs into.
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
	"github.com/davidegreene/storelab/internal/platform/logger"
	"github.com/davidegreene/storelab/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	appLogger := logger.Setup(cfg.App).With("run_id", uuid.NewString(), "demo", "warehouse")
	appLogger.Info("starting warehouse demo")

	products := store.New[domain.Product]("product")
	seed := []struct {
		id       int
		name     string
		quantity int
		price    float64
	}{
		{1, "Pallet jack", 4, 349.99},
		{2, "Shrink wrap roll", 120, 8.50},
		{3, "Safety vest", 35, 12.00},
	}
	for _, s := range seed {
		p, err := domain.NewProduct(s.id, s.name, s.quantity, s.price)
		if err != nil {
			log.Fatalf("bad seed data: %v", err)
		}
		if err := products.Insert(p); err != nil {
			log.Fatalf("failed to seed products: %v", err)
		}
	}
	appLogger.Info("seeded products", "count", products.Len())

	fmt.Println("Warehouse stock:")
	printProducts(products.GetAll())

	// Receiving a delivery bumps the stored quantity.
	if err := products.Update(2, func(p domain.Product) (domain.Product, error) {
		return p.WithQuantity(p.Quantity + 80)
	}); err != nil {
		appLogger.Error("restock failed", "error", err)
	} else {
		fmt.Println("\nReceived 80 more shrink wrap rolls.")
	}

	// A negative quantity never reaches the store.
	err = products.Update(3, func(p domain.Product) (domain.Product, error) {
		return p.WithQuantity(-5)
	})
	if domain.IsInvalidValueError(err) {
		fmt.Printf("Rejected stock adjustment: %v\n", err)
	}
	unchanged, _ := products.GetByID(3)
	fmt.Printf("Safety vest quantity is still %d.\n", unchanged.Quantity)

	// Discontinuing a product; a second removal fails rather than
	// silently succeeding.
	if err := products.Remove(1); err != nil {
		appLogger.Error("remove failed", "error", err)
	}
	if err := products.Remove(1); store.IsNotFoundError(err) {
		fmt.Printf("Second removal rejected: %v\n", err)
	}

	fmt.Println("\nWarehouse stock after updates:")
	printProducts(products.GetAll())
}

func printProducts(products []domain.Product) {
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQUANTITY\tPRICE")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\n", p.ID, p.Name, p.Quantity, p.Price)
	}
	w.Flush()
}
