package commands

import (
	"errors"

	"librestock/internal/core/domain/model/kernel"
	"librestock/internal/core/domain/model/stock"
	"librestock/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
	ErrAdjustmentDeltaIsZero = errors.New("adjustment delta must not be zero")
)

// AdjustStockCommand represents a request to change a stock record's quantity
// by a signed delta, tagged with the business reason for the change.
//
// Example:
//
//	cmd, err := NewAdjustStockCommand(recordID, -5, stock.Sale, actorID)
//	if err != nil {
//	    return err
//	}
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	recordID kernel.UUID
	delta    int
	reason   stock.Reason
	actorID  kernel.UUID
	notes    string

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to adjust a stock record.
// Validates that the IDs are valid, the delta is non-zero and the reason is a
// known one. Whether the delta would drive the quantity negative is decided
// against live data by the handler.
func NewAdjustStockCommand(
	recordID kernel.UUID,
	delta int,
	reason stock.Reason,
	actorID kernel.UUID,
) (AdjustStockCommand, error) {
	cmd := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecordID(recordID),
		cmd.setDelta(delta),
		cmd.setReason(reason),
		cmd.setActorID(actorID),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdjustStockCommandIsNotConstructed if validation fails.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// WithNotes sets an optional free-form note recorded on the movement.
func (c AdjustStockCommand) WithNotes(notes string) AdjustStockCommand {
	c.notes = notes
	return c
}

// RecordID returns the target stock record's identifier.
func (c AdjustStockCommand) RecordID() kernel.UUID {
	return c.recordID
}

// Delta returns the signed quantity change.
func (c AdjustStockCommand) Delta() int {
	return c.delta
}

// Reason returns the business reason for the adjustment.
func (c AdjustStockCommand) Reason() stock.Reason {
	return c.reason
}

// ActorID returns the acting user's identifier.
func (c AdjustStockCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Notes returns the optional note.
func (c AdjustStockCommand) Notes() string {
	return c.notes
}

func (c *AdjustStockCommand) setRecordID(recordID kernel.UUID) error {
	if err := recordID.Validate(); err != nil {
		return err
	}

	c.recordID = recordID
	return nil
}

func (c *AdjustStockCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrAdjustmentDeltaIsZero
	}

	c.delta = delta
	return nil
}

func (c *AdjustStockCommand) setReason(reason stock.Reason) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	c.reason = reason
	return nil
}

func (c *AdjustStockCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
