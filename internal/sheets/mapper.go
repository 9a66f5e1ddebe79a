package sheets

import (
	"fmt"
	"sort"
	"time"

	"github.com/hades874/10MS-Req-Dash/internal/models"
)

// Column offsets in the form response sheet. The form writes A through L;
// the status lives far right in column CE so form edits never shift it.
const (
	colTimestamp = iota
	colEmail
	colProductName
	colType
	colDeliveryTimeline
	colAssignedTeam
	colPocEmail
	colDetails
	colBreakdown
	colEstimatedStart
	colExpectedDelivery
	colPocName
)

const (
	statusColumn       = 82 // zero-based index of column CE
	statusColumnLetter = "CE"

	// DefaultStatus is assumed for rows whose status cell is blank.
	DefaultStatus = "pending"
)

// Timestamp layouts Google Forms is known to emit, tried in order.
var timestampLayouts = []string{
	"1/2/2006 15:04:05",
	"01/02/2006 15:04:05",
	"1/2/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseGrid converts a raw value grid into requisition records. Row 0 is the
// header row and is skipped. A record's ID is its 1-based position among the
// data rows at fetch time; it is not stable if the sheet is re-sorted.
// Rows with an empty timestamp or email are dropped. The result is ordered by
// parsed timestamp, newest first; rows whose timestamp cannot be parsed sink
// to the bottom in their original relative order.
func ParseGrid(values [][]string) []models.Requisition {
	if len(values) <= 1 {
		return []models.Requisition{}
	}

	dataRows := values[1:]
	requisitions := make([]models.Requisition, 0, len(dataRows))

	for i, row := range dataRows {
		req := models.Requisition{
			ID:                   fmt.Sprintf("%d", i+1),
			Timestamp:            cell(row, colTimestamp),
			Email:                cell(row, colEmail),
			ProductName:          cell(row, colProductName),
			Type:                 cell(row, colType),
			DeliveryTimeline:     cell(row, colDeliveryTimeline),
			AssignedTeam:         cell(row, colAssignedTeam),
			PocEmail:             cell(row, colPocEmail),
			Details:              cell(row, colDetails),
			RequisitionBreakdown: cell(row, colBreakdown),
			EstimatedStartDate:   cell(row, colEstimatedStart),
			ExpectedDeliveryDate: cell(row, colExpectedDelivery),
			PocName:              cell(row, colPocName),
			Status:               cell(row, statusColumn),
		}
		if req.Status == "" {
			req.Status = DefaultStatus
		}
		if req.Timestamp == "" || req.Email == "" {
			continue
		}
		requisitions = append(requisitions, req)
	}

	sort.SliceStable(requisitions, func(a, b int) bool {
		return parseTimestamp(requisitions[a].Timestamp).After(parseTimestamp(requisitions[b].Timestamp))
	})

	return requisitions
}

// StatusCell returns the A1 address of the status cell for a zero-based data
// row index: +1 for the header row, +1 for 1-based sheet addressing.
func StatusCell(rowIndex int) string {
	return fmt.Sprintf("%s%d", statusColumnLetter, rowIndex+2)
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func parseTimestamp(value string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
