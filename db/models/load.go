package models

import (
	"time"

	"cargo-logbook-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoadStatus string

const (
	LoadStatusOK      LoadStatus = "ok"
	LoadStatusProblem LoadStatus = "problema"
)

// Load is one shipment-batch entry in the operator's logbook.
// JSON names follow the wire format the dashboard client already speaks.
// Volumes and Orders are kept as free-form numeric strings; totals coerce
// them on the fly and treat anything unparseable as zero.
type Load struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	LoadNumber string         `gorm:"not null" json:"numeroCarga"`
	Date       utils.DateOnly `gorm:"type:date;not null" json:"data"`
	Carrier    string         `gorm:"not null" json:"transportadora"`
	Route      string         `json:"rota"`
	Volumes    string         `json:"volumes"`
	Orders     string         `json:"pedidos"`
	Loader     string         `json:"carregador"`
	Status     LoadStatus     `gorm:"type:varchar(10);default:'ok'" json:"situacao"`
	Notes      string         `gorm:"type:text" json:"observacoes"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"criadoEm"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"atualizadoEm"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
