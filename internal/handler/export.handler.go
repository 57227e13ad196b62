package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/repository"
	"github.com/JBombar/PremiumCarsEU-sub001/pkg/auth"
	"github.com/JBombar/PremiumCarsEU-sub001/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportOffers streams the current offer list as an XLSX workbook.
func (h *ExportHandler) ExportOffers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offers, err := h.offers.List(ctx, repository.OfferFilter{
		DealerID: r.URL.Query().Get("dealer_id"),
	})
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to fetch offers: "+err.Error())
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"ID", "Dealer", "Make", "Model", "Year", "Price", "Mileage", "Fuel", "Transmission", "Approval", "Listing", "Created"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, offer := range offers {
		values := []interface{}{
			offer.ID,
			offer.DealerID,
			offer.Make,
			offer.Model,
			offer.Year,
			offer.Price,
			offer.Mileage,
			offer.FuelType,
			offer.Transmission,
			string(offer.ApprovalStatus),
			string(offer.ListingType),
			offer.CreatedAt.Format(time.RFC3339),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="offers.xlsx"`)
	_ = f.Write(w)
}

// ExportShareHistory streams the acting dealer's share history as XLSX.
func (h *ExportHandler) ExportShareHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.shares.History(ctx, auth.DealerID(ctx))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to fetch share history: "+err.Error())
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"ID", "Entity", "Records", "Channels", "Trust Levels", "Contacts", "Message", "Created"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, entry := range entries {
		channels := make([]string, 0, len(entry.Channels))
		for _, c := range entry.Channels {
			channels = append(channels, string(c))
		}
		trustLevels := make([]string, 0, len(entry.TrustLevels))
		for _, t := range entry.TrustLevels {
			trustLevels = append(trustLevels, string(t))
		}

		values := []interface{}{
			entry.ID,
			string(entry.EntityType),
			fmt.Sprintf("%d", len(entry.RecordIDs)),
			strings.Join(channels, ", "),
			strings.Join(trustLevels, ", "),
			strings.Join(entry.Contacts, ", "),
			entry.Message,
			entry.CreatedAt.Format(time.RFC3339),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="share-history.xlsx"`)
	_ = f.Write(w)
}
