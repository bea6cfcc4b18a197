// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Egg is a server template. It declares which environment variables a
// server built from it exposes and how their values are validated.
type Egg struct {
	// ID is the internal identifier assigned by the database.
	ID int64 `json:"id" yaml:"-"`

	// Name is the unique, human-readable egg name (e.g. "Vanilla Minecraft").
	Name string `json:"name" yaml:"name"`

	// Description is an optional free-form description of the egg.
	Description string `json:"description,omitempty" yaml:"description"`

	// Variables are the configuration fields declared by the egg, in
	// declaration order.
	Variables []EggVariable `json:"variables" yaml:"variables"`

	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

// TableName returns the name of the database table
// associated with the Egg model.
func (e Egg) TableName() string {
	return "eggs"
}
