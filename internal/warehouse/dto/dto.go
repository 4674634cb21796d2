package dto

type ItemFilters struct {
	UserID   string
	Query    string
	BoxName  string
	State    string // "", available, reserved, sold
	Page     int
	PageSize int
}

type BatchReserveResult struct {
	Reserved    int     `json:"reserved"`
	Skipped     int     `json:"skipped"`
	ReservedIDs []int64 `json:"reservedIds"`
	SkippedIDs  []int64 `json:"skippedIds"`
}

type CountResult struct {
	Count int `json:"count"`
}

type RenameBoxResult struct {
	ItemsMoved    int `json:"itemsMoved"`
	OrdersUpdated int `json:"ordersUpdated"`
}
