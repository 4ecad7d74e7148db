package watchlist

// InstrumentTypeEquity is the entry type assigned to symbols added
// through this application.
const InstrumentTypeEquity = "equity"

// Watchlist is the summary shape returned by the upstream list endpoint.
type Watchlist struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	GroupName  string `json:"group_name,omitempty"`
	OrderIndex int    `json:"order_index,omitempty"`
}

// Entry is a single symbol held by a watchlist.
type Entry struct {
	Symbol         string `json:"symbol"`
	InstrumentType string `json:"instrument-type,omitempty"`
}

// Detail is the full watchlist shape, including its entries. Field names
// follow the upstream wire format.
type Detail struct {
	Name       string  `json:"name"`
	Entries    []Entry `json:"watchlist-entries"`
	CMSID      string  `json:"cms-id,omitempty"`
	GroupName  string  `json:"group-name,omitempty"`
	OrderIndex int     `json:"order-index,omitempty"`
}

// Symbols returns the entry symbols in watchlist order.
func (d *Detail) Symbols() []string {
	symbols := make([]string, 0, len(d.Entries))
	for _, entry := range d.Entries {
		symbols = append(symbols, entry.Symbol)
	}
	return symbols
}

// Update is the partial-update payload for an existing watchlist. A nil
// Entries slice leaves the upstream entries untouched.
type Update struct {
	Name       string  `json:"name"`
	GroupName  string  `json:"group-name,omitempty"`
	OrderIndex *int    `json:"order-index,omitempty"`
	Entries    []Entry `json:"watchlist-entries,omitempty"`
}

// SymbolMatch is a single hit from the upstream symbol search.
type SymbolMatch struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description,omitempty"`
}

// EntriesFor types a list of symbols as equity entries.
func EntriesFor(symbols []string) []Entry {
	entries := make([]Entry, 0, len(symbols))
	for _, symbol := range symbols {
		entries = append(entries, Entry{Symbol: symbol, InstrumentType: InstrumentTypeEquity})
	}
	return entries
}
