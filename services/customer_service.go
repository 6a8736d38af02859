package services

import (
	"context"
	"fmt"
	"posadmin_server/database"
	"posadmin_server/lib"
	"posadmin_server/structs"
	"posadmin_server/structs/tables"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CustomerService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCustomerService(logger *gecho.Logger, db *database.DB) *CustomerService {
	return &CustomerService{
		logger: logger,
		db:     db,
	}
}

// GetCustomers retrieves all customers ordered by name
func (cs *CustomerService) GetCustomers(ctx context.Context) ([]tables.Customer, error) {
	customers, err := database.Query[tables.Customer](cs.db).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return customers, nil
}

func (cs *CustomerService) GetCustomerByID(ctx context.Context, id uuid.UUID) (*tables.Customer, error) {
	customer, err := database.FindByID[tables.Customer](cs.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return customer, nil
}

// CreateCustomer inserts a customer. Name is trimmed and must be non-empty;
// blank email/phone become NULL.
func (cs *CustomerService) CreateCustomer(ctx context.Context, req *structs.CustomerRequest) (*tables.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("customer name is required")
	}

	customer := &tables.Customer{
		ID:        uuid.New(),
		Name:      name,
		Email:     normalizeOptional(req.Email),
		Phone:     normalizeOptional(req.Phone),
		CreatedAt: time.Now(),
	}

	created, err := database.Create(cs.db, ctx, customer)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.logger.Info("Customer created", gecho.Field("customer_id", created.ID))
	return created, nil
}

// UpdateCustomer updates name/email/phone of an existing customer
func (cs *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, req *structs.CustomerRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("customer name is required")
	}

	affected, err := database.UpdateByID[tables.Customer](cs.db, ctx, id, map[string]any{
		"name":  name,
		"email": normalizeOptional(req.Email),
		"phone": normalizeOptional(req.Phone),
	})
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	return nil
}

// DeleteCustomer removes a customer. Customers that own sales cannot be
// deleted; the check runs first so the caller gets a clear message instead
// of a constraint violation.
func (cs *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	hasSales, err := database.Query[tables.Sale](cs.db).
		Where("customer_id", id).
		Exists(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if hasSales {
		return lib.ErrReferenced
	}

	affected, err := database.DeleteByID[tables.Customer](cs.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	cs.logger.Info("Customer deleted", gecho.Field("customer_id", id))
	return nil
}

func (cs *CustomerService) CountCustomers(ctx context.Context) (int, error) {
	return database.Query[tables.Customer](cs.db).Count(ctx)
}

// normalizeOptional maps a blank string to NULL
func normalizeOptional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
