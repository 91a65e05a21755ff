// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package wire

import (
	"encoding/json"
	"fmt"

	"github.com/specialistvlad/electra/internal/geom"
)

// MarshalJSON writes the flat form.
func (e Encoded[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Flatten())
}

// UnmarshalJSON reads the flat form and validates it with Unflatten.
func (e *Encoded[T]) UnmarshalJSON(data []byte) error {
	var flat []geom.Point[T]
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("encoded path: %w", err)
	}
	decoded, err := Unflatten(flat)
	if err != nil {
		return err
	}
	*e = decoded
	return nil
}
