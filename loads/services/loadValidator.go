package services

import (
	"time"

	"cargo-logbook-backend/db/models"
)

// ValidateLoad enforces the required fields before any write is attempted:
// load number, shipment date and carrier. Everything else is optional.
func ValidateLoad(load *models.Load) string {
	if load.LoadNumber == "" || time.Time(load.Date).IsZero() || load.Carrier == "" {
		return "Preencha pelo menos: Data, Nº da carga e Transportadora."
	}
	if load.Status != "" && load.Status != models.LoadStatusOK && load.Status != models.LoadStatusProblem {
		return "Situação inválida."
	}
	return ""
}
