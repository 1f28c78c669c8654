package http

import "time"

// Request bodies for the write endpoints. Validation tags cover shape only;
// business rules live in the domain layer.

type rejectMerchantRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type createListingRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"    validate:"required,gt=0"`
	Images      []string  `json:"images"`
	BestBefore  time.Time `json:"bestBefore"  validate:"required"`
}

type flagListingRequest struct {
	Issues []string `json:"issues" validate:"required,min=1,dive,required"`
}

type setUserRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type setUserActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type confirmPickupRequest struct {
	Proof string `json:"proof" validate:"required"`
}

type cartLineRequest struct {
	ListingID string  `json:"listingId" validate:"required,uuid"`
	Name      string  `json:"name"      validate:"required"`
	Price     float64 `json:"price"     validate:"required,gt=0"`
}

type placeOrderRequest struct {
	Cart             []cartLineRequest `json:"cart"             validate:"required,min=1,dive"`
	PaymentMethod    string            `json:"paymentMethod"    validate:"required"`
	PickupTime       string            `json:"pickupTime"       validate:"required"`
	RecipientName    string            `json:"recipientName"    validate:"required"`
	RecipientAddress string            `json:"recipientAddress" validate:"required"`
	RecipientPhone   string            `json:"recipientPhone"`
}

type submitRatingRequest struct {
	Rating   int    `json:"rating"   validate:"required"`
	Feedback string `json:"feedback"`
}

type claimListingRequest struct {
	ListingID  string `json:"listingId"  validate:"required,uuid"`
	NgoName    string `json:"ngoName"    validate:"required"`
	NgoAddress string `json:"ngoAddress" validate:"required"`
	NgoPhone   string `json:"ngoPhone"`
	PickupTime string `json:"pickupTime" validate:"required"`
}
