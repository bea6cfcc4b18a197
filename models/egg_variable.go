// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EggVariable is one configurable field of an [Egg].
//
// The variable is exposed to the server process as the environment variable
// EnvVariable. Submitted values are checked against Rules, a pipe-delimited
// rule string such as "required|numeric|between:1024,65535".
type EggVariable struct {
	// ID is the internal identifier assigned by the database.
	ID int64 `json:"id" yaml:"-"`

	// EggID references the egg that owns this variable.
	EggID int64 `json:"egg_id" yaml:"-"`

	// Name is the display name shown to users and used in error notices.
	Name string `json:"name" yaml:"name"`

	// Description explains the purpose of the variable.
	Description string `json:"description,omitempty" yaml:"description"`

	// EnvVariable is the environment variable key (e.g. "SERVER_PORT").
	EnvVariable string `json:"env_variable" yaml:"env_variable"`

	// DefaultValue is the value used when a server is created without one.
	DefaultValue string `json:"default_value" yaml:"default_value"`

	// UserViewable reports whether non-admin users may see the variable.
	UserViewable bool `json:"user_viewable" yaml:"user_viewable"`

	// UserEditable reports whether non-admin users may change the variable.
	UserEditable bool `json:"user_editable" yaml:"user_editable"`

	// Rules is the rule string the submitted value must satisfy.
	Rules string `json:"rules" yaml:"rules"`

	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

// VisibleToUser reports whether a non-admin user can both see and change
// the variable.
func (v EggVariable) VisibleToUser() bool {
	return v.UserViewable && v.UserEditable
}

// TableName returns the name of the database table
// associated with the EggVariable model.
func (v EggVariable) TableName() string {
	return "egg_variables"
}
