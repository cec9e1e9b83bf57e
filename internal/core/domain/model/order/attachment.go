package order

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
)

// OrderAttachment links an order to an uploaded attachment (the delivery photo).
// Two links are equal iff both ids match.
type OrderAttachment struct {
	orderID      kernel.UUID
	attachmentID kernel.UUID
}

// NewOrderAttachment validates both ids and builds the link.
func NewOrderAttachment(orderID, attachmentID kernel.UUID) (OrderAttachment, error) {
	if err := errors.Join(orderID.Validate(), attachmentID.Validate()); err != nil {
		return OrderAttachment{}, err
	}
	return OrderAttachment{orderID: orderID, attachmentID: attachmentID}, nil
}

func (a OrderAttachment) OrderID() kernel.UUID      { return a.orderID }
func (a OrderAttachment) AttachmentID() kernel.UUID { return a.attachmentID }

// IsEqual compares both ids.
func (a OrderAttachment) IsEqual(other OrderAttachment) bool {
	return a.orderID.IsEqual(other.orderID) && a.attachmentID.IsEqual(other.attachmentID)
}

// AttachmentList is the watched set of attachment links of an order.
type AttachmentList = kernel.WatchedList[OrderAttachment]

// NewAttachmentList creates a list whose baseline is the persisted links.
func NewAttachmentList(persisted ...OrderAttachment) *AttachmentList {
	return kernel.NewWatchedList(OrderAttachment.IsEqual, persisted...)
}
