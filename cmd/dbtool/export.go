package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"kakanin/cmd"
	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/services"
	"kakanin/internal/core/ports"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// orderStore is the read side of a unit of work.
type orderStore interface {
	OrderRepository() ports.OrderRepository
	BuyerRepository() ports.BuyerRepository
}

func exportCmd(config func() cmd.Config) *cobra.Command {
	var path string

	c := &cobra.Command{
		Use:   "export",
		Short: "Write every order as a seed file, earliest pickup date first",
		RunE: func(c *cobra.Command, _ []string) (err error) {
			cfg := config()
			db, err := openMigrated(cfg)
			if err != nil {
				return err
			}
			app := cmd.NewCompositionRoot(cfg, db)

			// one snapshot for orders and buyers
			uow := app.CreateUnitOfWork()
			if err = uow.Begin(c.Context()); err != nil {
				return err
			}
			defer func() { _ = uow.Rollback(c.Context()) }()

			file, err := exportOrders(c.Context(), uow)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if path != "-" {
				var f *os.File
				if f, err = os.Create(path); err != nil {
					return err
				}
				defer func() {
					if closeErr := f.Close(); err == nil {
						err = closeErr
					}
				}()
				out = f
			}

			if err = writeSeed(out, file); err != nil {
				return err
			}
			newLogger(cfg).InfoContext(c.Context(), "Orders exported", "count", len(file.Orders), "file", path)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "file", "f", "-", "YAML file to write, - for standard output")
	return c
}

// exportOrders reads every order with its buyer and sorts them by pickup date.
// Orders sharing a pickup date keep the order they were recorded in, so the
// result seeds an empty database into the same list and history.
func exportOrders(ctx context.Context, store orderStore) (seedFile, error) {
	orders, err := store.OrderRepository().GetAll(ctx)
	if err != nil {
		return seedFile{}, err
	}
	sorted, err := services.NewOrderHistorySorter().Sort(orders)
	if err != nil {
		return seedFile{}, err
	}

	buyers := store.BuyerRepository()
	known := make(map[kernel.UUID]seedBuyer)
	file := seedFile{Orders: make([]seedOrder, 0, len(sorted))}
	for _, o := range sorted {
		b, ok := known[o.BuyerID()]
		if !ok {
			found, err := buyers.Get(ctx, o.BuyerID())
			if err != nil {
				return seedFile{}, fmt.Errorf("order %s: %w", o.ID(), err)
			}
			b = seedBuyer{Name: found.Name(), ContactNumber: found.ContactNumber(), Address: found.Address()}
			known[o.BuyerID()] = b
		}

		file.Orders = append(file.Orders, seedOrder{
			Buyer:          b,
			Delicacy:       o.Delicacy().Code(),
			Quantity:       o.Quantity(),
			ContainerSize:  o.ContainerSize().Code(),
			SpecialRequest: o.SpecialRequest(),
			PickupPlace:    o.PickupPlace(),
			PickupDate:     o.PickupDate().String(),
			Status:         o.Status().Code(),
		})
	}
	return file, nil
}

func writeSeed(w io.Writer, file seedFile) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(file); err != nil {
		return fmt.Errorf("write seed file: %w", err)
	}
	return encoder.Close()
}
