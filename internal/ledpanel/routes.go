package ledpanel

import (
	"encoding/json"
	"net/http"

	"github.com/clambin/ledpanel/internal/ledpanel/api"
	"github.com/clambin/ledpanel/internal/ledpanel/controller"
)

func routes(mux *http.ServeMux, p *Panel) {
	mux.Handle("POST "+api.PressEndpoint, handlePress(p))
	mux.Handle("GET "+api.StateEndpoint, handleState(p))
	mux.Handle("GET "+api.HealthEndpoint, handleHealth(p))
}

func handlePress(p *Panel) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request api.PressRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, "invalid request: "+err.Error(), http.StatusBadRequest)
			return
		}
		if request.Switch < 0 || request.Switch >= controller.NumSwitches {
			http.Error(w, "invalid switch", http.StatusBadRequest)
			return
		}
		p.Press(request.Switch)
		w.WriteHeader(http.StatusNoContent)
	})
}

func handleState(p *Panel) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		mode, leds := p.controller.State()
		response := api.StateResponse{Mode: mode.String(), LEDs: leds}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "failed to encode state: "+err.Error(), http.StatusInternalServerError)
		}
	})
}

func handleHealth(p *Panel) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if !p.Healthy() {
			http.Error(w, "panel is shut down", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
