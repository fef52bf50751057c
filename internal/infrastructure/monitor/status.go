package monitor

import "time"

type Status struct {
	Storage    bool      `json:"storage"`
	Activities int       `json:"activities"`
	LastCheck  time.Time `json:"last_check"`
}
