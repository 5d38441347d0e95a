package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cargo-logbook-backend/config"
	"cargo-logbook-backend/loads/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const reportsDir = "./public/reports"

// GetLoadCards answers the rendered list markup for the current filters.
// Store failure degrades to the inline error paragraph, not a crash.
func (lc *LoadController) GetLoadCards(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

	filtered, err := lc.filteredLoads(c)
	if err != nil {
		config.Logger.Error("Failed to load cargo list for cards",
			zap.String("user_id", owner(c).UserID.String()),
			zap.Error(err),
		)
		return c.SendString(`<p class="error-text">Erro ao carregar cargas.</p>`)
	}

	markup, err := services.RenderLoadCards(filtered)
	if err != nil {
		config.Logger.Error("Failed to render load cards", zap.Error(err))
		return c.SendString(`<p class="error-text">Erro ao carregar cargas.</p>`)
	}

	return c.SendString(markup)
}

// ExportReport opens the printable report for the filtered list. The
// document prints itself on open, matching the export button behavior.
func (lc *LoadController) ExportReport(c *fiber.Ctx) error {
	html, _, err := lc.renderReport(c, true)
	if err != nil {
		return lc.exportError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// ExportReportPDF renders the same report to an A4 PDF, keeps a copy under
// the public reports directory and streams it back.
func (lc *LoadController) ExportReportPDF(c *fiber.Ctx) error {
	html, generatedAt, err := lc.renderReport(c, false)
	if err != nil {
		return lc.exportError(c, err)
	}

	var pdfBuffer bytes.Buffer
	if err := services.GenerateLoadReportPDF(html, &pdfBuffer); err != nil {
		config.Logger.Error("Failed to render report PDF",
			zap.String("user_id", owner(c).UserID.String()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Export blocked",
			"data":    nil,
			"error":   "Não foi possível gerar o relatório em PDF. Tente novamente.",
		})
	}

	fileName := fmt.Sprintf("relatorio-cargas-%s.pdf", generatedAt.Format("20060102-150405"))
	if err := os.MkdirAll(reportsDir, 0755); err == nil {
		if err := os.WriteFile(filepath.Join(reportsDir, fileName), pdfBuffer.Bytes(), 0644); err != nil {
			config.Logger.Warn("Failed to keep report copy", zap.Error(err))
		}
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	return c.Send(pdfBuffer.Bytes())
}

// ExportExcel streams the filtered list as an XLSX workbook.
func (lc *LoadController) ExportExcel(c *fiber.Ctx) error {
	filtered, err := lc.filteredLoads(c)
	if err != nil {
		return lc.exportError(c, err)
	}

	f, err := services.GenerateLoadsExcel(filtered)
	if err != nil {
		return lc.exportError(c, err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		config.Logger.Error("Failed to write workbook", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Export failed",
			"data":    nil,
			"error":   "Não foi possível gerar a planilha.",
		})
	}

	fileName := fmt.Sprintf("cargas-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	return c.Send(buf.Bytes())
}

func (lc *LoadController) renderReport(c *fiber.Ctx, autoPrint bool) (string, time.Time, error) {
	filtered, err := lc.filteredLoads(c)
	if err != nil {
		return "", time.Time{}, err
	}

	generatedAt := time.Now()
	html, err := services.RenderLoadReport(filtered, generatedAt, autoPrint)
	if err != nil {
		return "", time.Time{}, err
	}
	return html, generatedAt, nil
}

// exportError maps the empty-selection precondition to a conflict and
// everything else to a read failure, both with inline messages.
func (lc *LoadController) exportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrNoLoadsToExport) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Nothing to export",
			"data":    nil,
			"error":   "Não há cargas para exportar com os filtros atuais.",
		})
	}

	config.Logger.Error("Failed to load cargo list for export",
		zap.String("user_id", owner(c).UserID.String()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Export failed",
		"data":    nil,
		"error":   "Erro ao carregar cargas.",
	})
}
