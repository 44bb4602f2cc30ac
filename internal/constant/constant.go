package constant

const (
	ContextKeyRequestID = "requestid"

	// ImportChunkSize is the number of records written in one store transaction
	// during a bulk import. Bounds the size of any single transaction so a large
	// import cannot exceed store-level transaction limits or timeouts.
	ImportChunkSize = 100

	// IsoDateLayout is the canonical storage form for all imported dates.
	IsoDateLayout = "2006-01-02"

	// DayMonthYearLayout is the spreadsheet-facing date form accepted on import.
	DayMonthYearLayout = "02-01-2006"
)

// Drive statuses.
const (
	DriveStatusPending   = "pending"
	DriveStatusActive    = "active"
	DriveStatusCompleted = "completed"
)

// DriveStatuses enumerates the accepted drive status vocabulary.
var DriveStatuses = []string{DriveStatusPending, DriveStatusActive, DriveStatusCompleted}

// Donation request statuses.
const (
	DonationRequestStatusPending   = "Pending"
	DonationRequestStatusApproved  = "Approved"
	DonationRequestStatusRejected  = "Rejected"
	DonationRequestStatusFulfilled = "Fulfilled"
)
