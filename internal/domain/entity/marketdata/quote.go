package marketdata

import "time"

// Unavailable is the sentinel shown for quote fields that could not be
// fetched.
const Unavailable = "--"

// Quote is a per-symbol market data snapshot as delivered by the upstream
// brokerage. Price fields arrive as strings and are passed through
// unconverted; field names follow the upstream wire format.
type Quote struct {
	Symbol          string `json:"symbol"`
	InstrumentType  string `json:"instrument-type"`
	UpdatedAt       string `json:"updated-at"`
	Bid             string `json:"bid"`
	Ask             string `json:"ask"`
	Last            string `json:"last"`
	BidSize         int64  `json:"bid-size"`
	AskSize         int64  `json:"ask-size"`
	SummaryDate     string `json:"summary-date"`
	PrevCloseDate   string `json:"prev-close-date"`
	Open            string `json:"open"`
	PrevClose       string `json:"prev-close"`
	DayLowPrice     string `json:"day-low-price"`
	DayHighPrice    string `json:"day-high-price"`
	YearLowPrice    string `json:"year-low-price"`
	YearHighPrice   string `json:"year-high-price"`
	LowLimitPrice   string `json:"low-limit-price"`
	HighLimitPrice  string `json:"high-limit-price"`
	IsTradingHalted bool   `json:"is-trading-halted"`
	Mid             string `json:"mid"`
	Mark            string `json:"mark"`
}

// Placeholder builds the quote substituted for a symbol whose fetch
// failed: every price field carries the unavailable sentinel so one bad
// symbol never blocks the rest of a batch.
func Placeholder(symbol string, now time.Time) Quote {
	return Quote{
		Symbol:          symbol,
		InstrumentType:  "Equity",
		UpdatedAt:       now.UTC().Format(time.RFC3339),
		Bid:             Unavailable,
		Ask:             Unavailable,
		Last:            Unavailable,
		Open:            Unavailable,
		PrevClose:       Unavailable,
		DayLowPrice:     Unavailable,
		DayHighPrice:    Unavailable,
		YearLowPrice:    Unavailable,
		YearHighPrice:   Unavailable,
		LowLimitPrice:   Unavailable,
		HighLimitPrice:  Unavailable,
		IsTradingHalted: false,
		Mid:             Unavailable,
		Mark:            Unavailable,
	}
}
