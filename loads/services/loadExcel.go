package services

import (
	"fmt"

	"cargo-logbook-backend/db/models"

	"github.com/xuri/excelize/v2"
)

var loadSheetHeaders = []string{
	"Data", "Nº Carga", "Transportadora", "Rota", "Volumes",
	"Pedidos", "Carregador", "Situação", "Observações",
}

// GenerateLoadsExcel builds a workbook with one row per filtered load,
// same column set as the printable report.
func GenerateLoadsExcel(loads []models.Load) (*excelize.File, error) {
	if len(loads) == 0 {
		return nil, ErrNoLoadsToExport
	}

	f := excelize.NewFile()
	sheetName := "Cargas"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}

	for col, header := range loadSheetHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("error setting header %s: %w", header, err)
		}
	}

	for row, view := range NewLoadCardViews(loads) {
		values := []string{
			view.DateBR,
			view.LoadNumber,
			view.Carrier,
			view.Route,
			view.Volumes,
			view.Orders,
			view.Loader,
			view.ChipLabel,
			view.Notes,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("error setting cell %s: %w", cell, err)
			}
		}
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f, nil
}
