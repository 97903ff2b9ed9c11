// SPDX-License-Identifier: MIT
package primindex

import "errors"

var (
	// ErrEmptySlotID is returned when a slot id is the empty string.
	ErrEmptySlotID = errors.New("primindex: slot id must be non-empty")

	// ErrEmptyPrimitiveID is returned when a primitive id is the empty string.
	ErrEmptyPrimitiveID = errors.New("primindex: primitive id must be non-empty")

	// ErrUnknownCommanderSlot is returned when a supplied commander slot id
	// does not appear among the index's slots.
	ErrUnknownCommanderSlot = errors.New("primindex: commander slot id not present in index")
)
