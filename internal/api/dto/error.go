package dto

// Error is the body of every failed request. Server side failures carry only
// a generic message; the cause goes to the logs.
type Error struct {
	Error string `json:"error" example:"invalid access code"`
}
