// Package queries contains the read-only fastfeet use cases. Handlers read
// straight from the database with raw SQL and never load aggregates.
package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

// NearbyRadiusKm is the distance within which an order counts as nearby.
const NearbyRadiusKm = 1.0

var ErrGetNearbyOrdersQueryIsNotConstructed = errors.New(
	"GetNearbyOrdersQuery must be created via NewGetNearbyOrdersQuery constructor",
)

// GetNearbyOrdersQuery lists the orders a deliveryman can work on around a
// location: pending orders anyone may pick up and orders the deliveryman
// already picked up, whose recipient lives within NearbyRadiusKm.
//
// Example:
//
//	query, err := NewGetNearbyOrdersQuery(deliverymanID, -23.5505, -46.6333)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetNearbyOrdersQuery struct {
	deliverymanID kernel.UUID
	location      kernel.Location

	guard guard.ConstructorGuard
}

func NewGetNearbyOrdersQuery(deliverymanID kernel.UUID, latitude, longitude float64) (GetNearbyOrdersQuery, error) {
	location, err := kernel.NewLocation(latitude, longitude)
	if err = errors.Join(deliverymanID.Validate(), err); err != nil {
		return GetNearbyOrdersQuery{}, err
	}

	return GetNearbyOrdersQuery{
		deliverymanID: deliverymanID,
		location:      location,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GetNearbyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyOrdersQueryIsNotConstructed)
}

func (q GetNearbyOrdersQuery) DeliverymanID() kernel.UUID { return q.deliverymanID }
func (q GetNearbyOrdersQuery) Location() kernel.Location  { return q.location }

// GetNearbyOrdersQueryResponse is one nearby order, closest first.
type GetNearbyOrdersQueryResponse struct {
	ID          kernel.UUID
	RecipientID kernel.UUID
	Status      string
	Address     string
	Location    kernel.Location
	DistanceKm  float64
}
