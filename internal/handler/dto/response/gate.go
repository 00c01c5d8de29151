package response

import (
	"zavvi-web/internal/domain/location"
	"zavvi-web/internal/usecase/gate"
)

type GateResponse struct {
	State gate.State `json:"state"`
	Modal gate.Modal `json:"modal"`
}

type LocationResponse struct {
	Location   *location.Location `json:"location"`
	FirstVisit bool               `json:"firstVisit"`
}

type InvalidateResponse struct {
	Removed int `json:"removed"`
}
