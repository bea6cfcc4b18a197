package models

// StartupVariable is an egg variable as shown on a server's startup page.
type StartupVariable struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	EnvVariable  string `json:"env_variable"`
	DefaultValue string `json:"default_value"`

	// ServerValue is the value stored for the server, or DefaultValue when
	// nothing was stored yet.
	ServerValue string `json:"server_value"`

	IsEditable bool   `json:"is_editable"`
	Rules      string `json:"rules"`
}

// StartupResponse is the response body of the startup page endpoint.
type StartupResponse struct {
	Data []StartupVariable `json:"data"`
}
