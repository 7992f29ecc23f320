package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"kakanin/cmd"
	"kakanin/internal/core/application/usecases/commands"
	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/model/order"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML layout read by the seed command:
//
//	orders:
//	  - buyer:
//	      name: Maria Santos
//	      contactNumber: "09171234567"
//	      address: 12 Mabini St.
//	    delicacy: Sapin-Sapin
//	    quantity: 2
//	    containerSize: "12' Bilao"
//	    pickupPlace: Home
//	    pickupDate: 2024-05-01
//	    status: In Progress
//
// status is optional and defaults to Pending.
type seedFile struct {
	Orders []seedOrder `yaml:"orders"`
}

type seedBuyer struct {
	Name          string `yaml:"name"`
	ContactNumber string `yaml:"contactNumber"`
	Address       string `yaml:"address"`
}

type seedOrder struct {
	Buyer          seedBuyer `yaml:"buyer"`
	Delicacy       string    `yaml:"delicacy"`
	Quantity       int       `yaml:"quantity"`
	ContainerSize  string    `yaml:"containerSize"`
	SpecialRequest string    `yaml:"specialRequest"`
	PickupPlace    string    `yaml:"pickupPlace"`
	PickupDate     string    `yaml:"pickupDate"`
	Status         string    `yaml:"status,omitempty"`
}

func (o seedOrder) input() commands.CreateOrderInput {
	return commands.CreateOrderInput{
		BuyerName:      o.Buyer.Name,
		ContactNumber:  o.Buyer.ContactNumber,
		Address:        o.Buyer.Address,
		Delicacy:       o.Delicacy,
		Quantity:       o.Quantity,
		ContainerSize:  o.ContainerSize,
		SpecialRequest: o.SpecialRequest,
		PickupPlace:    o.PickupPlace,
		PickupDate:     o.PickupDate,
	}
}

func (o seedOrder) status() (order.Status, error) {
	if strings.TrimSpace(o.Status) == "" {
		return order.Pending, nil
	}
	return order.ParseStatus(o.Status)
}

// orderCreator is satisfied by *commands.CreateOrderCommandHandler.
type orderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.UUID, error)
}

// statusUpdater is satisfied by *commands.UpdateOrderStatusCommandHandler.
type statusUpdater interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
}

func seedCmd(config func() cmd.Config) *cobra.Command {
	var path string

	c := &cobra.Command{
		Use:   "seed",
		Short: "Import orders from a YAML file",
		RunE: func(c *cobra.Command, _ []string) error {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			file, err := parseSeed(f)
			if err != nil {
				return err
			}

			cfg := config()
			db, err := openMigrated(cfg)
			if err != nil {
				return err
			}
			app := cmd.NewCompositionRoot(cfg, db)
			logger := newLogger(cfg)
			if err = app.EnsureAdminUser(c.Context(), logger); err != nil {
				return err
			}

			creator := app.CreateCreateOrderCommandHandler()
			updater := app.CreateUpdateOrderStatusCommandHandler()
			ids, err := seedOrders(c.Context(), &creator, &updater, file)
			logger.InfoContext(c.Context(), "Orders imported", "count", len(ids), "file", path)
			return err
		},
	}

	c.Flags().StringVarP(&path, "file", "f", "seed.yaml", "YAML file with the orders to import")
	return c
}

func parseSeed(r io.Reader) (seedFile, error) {
	var file seedFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return seedFile{}, nil
		}
		return seedFile{}, fmt.Errorf("parse seed file: %w", err)
	}
	return file, nil
}

// seedOrders records every order in file order and stops at the first failure.
// An order with a status other than Pending is moved there right after it is
// recorded. It returns the ids of the orders recorded so far.
func seedOrders(ctx context.Context, creator orderCreator, updater statusUpdater, file seedFile) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(file.Orders))
	for i, o := range file.Orders {
		status, err := o.status()
		if err != nil {
			return ids, fmt.Errorf("order %d: %w", i, err)
		}
		create, err := commands.NewCreateOrderCommand(kernel.NewUUID(), o.input())
		if err != nil {
			return ids, fmt.Errorf("order %d: %w", i, err)
		}
		id, err := creator.Handle(ctx, create)
		if err != nil {
			return ids, fmt.Errorf("order %d: %w", i, err)
		}
		ids = append(ids, id)

		if status == order.Pending {
			continue
		}
		update, err := commands.NewUpdateOrderStatusCommand(id, status.Code())
		if err != nil {
			return ids, fmt.Errorf("order %d: %w", i, err)
		}
		if err = updater.Handle(ctx, update); err != nil {
			return ids, fmt.Errorf("order %d: %w", i, err)
		}
	}
	return ids, nil
}
