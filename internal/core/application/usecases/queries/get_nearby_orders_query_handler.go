package queries

import (
	"context"
	"sort"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetNearbyOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetNearbyOrdersQueryHandler(db *gorm.DB) GetNearbyOrdersQueryHandler {
	return GetNearbyOrdersQueryHandler{db: db}
}

// Handle selects the candidate orders in SQL and keeps those whose recipient
// is within NearbyRadiusKm by great-circle distance.
func (h GetNearbyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyOrdersQuery,
) ([]GetNearbyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.recipient_id,
			o.status,
			r.address,
			r.location_latitude,
			r.location_longitude
		FROM orders o
		JOIN recipients r ON r.id = o.recipient_id
		WHERE o.status = ?
		   OR (o.status = ? AND o.deliveryman_id = ?)
	`, order.Pending.String(), order.PickedUp.String(), query.DeliverymanID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetNearbyOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id, recipientID     uuid.UUID
			status, address     string
			latitude, longitude float64
		)
		if err = rows.Scan(&id, &recipientID, &status, &address, &latitude, &longitude); err != nil {
			return nil, err
		}

		location, locErr := kernel.NewLocation(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}

		distance, distErr := query.Location().DistanceTo(location)
		if distErr != nil {
			return nil, distErr
		}
		if distance > NearbyRadiusKm {
			continue
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		rID, idErr := kernel.UUIDFromBytes(recipientID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetNearbyOrdersQueryResponse{
			ID:          orderID,
			RecipientID: rID,
			Status:      status,
			Address:     address,
			Location:    location,
			DistanceKm:  distance,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].DistanceKm < orders[j].DistanceKm
	})

	return orders, nil
}
