// Package api defines the endpoints and payloads of the panel's HTTP API.
package api

// Endpoints served by the panel.
const (
	PressEndpoint  = "/panel/press"
	StateEndpoint  = "/panel/state"
	HealthEndpoint = "/panel/health"
)

// PressRequest is the payload for PressEndpoint: a virtual press of
// one of the panel's switches.
type PressRequest struct {
	Switch int `json:"switch"`
}

// StateResponse reports the panel's mode and LED states.
type StateResponse struct {
	Mode string `json:"mode"`
	LEDs []bool `json:"leds"`
}
