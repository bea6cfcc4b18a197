// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ServerVariable is the value a particular server stores for one
// [EggVariable].
type ServerVariable struct {
	ID            int64     `json:"id"`
	ServerID      int64     `json:"server_id"`
	VariableID    int64     `json:"variable_id"`
	VariableValue string    `json:"variable_value"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the ServerVariable model.
func (s ServerVariable) TableName() string {
	return "server_variables"
}
