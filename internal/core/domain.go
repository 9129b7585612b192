package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Defaults applied when the corresponding knobs are not configured.
const (
	DefaultTopN = 10
)

// DefaultHighValueThreshold is the order total above which an order counts
// as high-value.
var DefaultHighValueThreshold = decimal.NewFromInt(5000)

// Segment labels. The segmentation table always carries exactly these two.
const (
	SegmentB2B        = "B2B"
	SegmentIndividual = "Individual"
)

type (
	// RawOrder is an order document as the record store hands it over:
	// every field is text, an empty string means the field was absent.
	// Numeric and date fields may or may not parse; Normalize decides.
	RawOrder struct {
		OrderID   string
		Date      string
		Amount    string
		Qty       string
		B2B       string
		Category  string
		ShipState string
		ShipCity  string
	}

	// Order is one normalized line row. OrderID is not unique at the row
	// level: a single order may span several line rows.
	Order struct {
		OrderID   string
		Date      time.Time
		HasDate   bool
		Amount    decimal.Decimal
		Qty       int64
		IsB2B     bool
		Category  string
		ShipState string
		ShipCity  string
	}

	// Totals is the headline card payload.
	Totals struct {
		Revenue       decimal.Decimal `json:"totalRevenue"`
		Orders        int             `json:"totalOrders"`
		AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
	}

	// MonthlyPoint is one bucket of the monthly revenue series. Month is
	// the first day of the bucket's calendar month, UTC.
	MonthlyPoint struct {
		Month   time.Time       `json:"month"`
		Revenue decimal.Decimal `json:"revenue"`
	}

	// CategoryQty is one row of the by-quantity category ranking.
	CategoryQty struct {
		Category string `json:"category"`
		Qty      int64  `json:"qty"`
	}

	// CategoryRevenue is one row of the by-revenue category ranking.
	CategoryRevenue struct {
		Category string          `json:"category"`
		Revenue  decimal.Decimal `json:"revenue"`
	}

	// Segment is one of the two B2B/Individual buckets.
	Segment struct {
		Label   string          `json:"label"`
		Orders  int             `json:"orders"`
		Revenue decimal.Decimal `json:"revenue"`
	}

	// LocationRevenue is one row of a geography ranking (state or city).
	LocationRevenue struct {
		Location string          `json:"location"`
		Revenue  decimal.Decimal `json:"revenue"`
	}

	// HighValueOrder is an order whose summed amount exceeds the
	// configured threshold.
	HighValueOrder struct {
		OrderID string          `json:"orderId"`
		Revenue decimal.Decimal `json:"revenue"`
	}
)

// MonthOf truncates t to the first day of its calendar month in UTC.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
