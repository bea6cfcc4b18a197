// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Server is a game server instance built from an [Egg].
type Server struct {
	ID int64 `json:"id"`

	// UUID is the public identifier of the server.
	UUID string `json:"uuid"`

	Name  string `json:"name"`
	EggID int64  `json:"egg_id"`

	// Variables holds the stored values of the server's egg variables.
	Variables []ServerVariable `json:"variables,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Server model.
func (s Server) TableName() string {
	return "servers"
}
