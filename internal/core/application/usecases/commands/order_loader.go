package commands

import (
	"context"
	"errors"
	"fmt"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"
)

func loadOrder(ctx context.Context, repo ports.OrderRepository, id kernel.UUID) (*order.Order, error) {
	o, err := repo.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

// guardTransition rejects moving o to next unless it is an edge of the status table.
func guardTransition(operation string, o *order.Order, next order.Status) error {
	if !o.Status().CanTransitionTo(next) {
		return errs.NewNotAllowedErrorWithCause(operation,
			fmt.Errorf("order %s is %s", o.ID(), o.Status()))
	}
	return nil
}
