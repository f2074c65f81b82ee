package vendors

type RegisterVendorRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=120"`
	City          string `json:"city" validate:"max=120"`
	Country       string `json:"country" validate:"max=120"`
	ContactPerson string `json:"contact_person" validate:"max=120"`
}

type RejectVendorRequest struct {
	Reason string `json:"reason" binding:"required"`
}
