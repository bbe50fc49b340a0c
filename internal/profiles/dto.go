package profiles

import "github.com/congo-pay/cardprofiles/internal/beanstream"

// CardRequest is the card section of a profile request.
type CardRequest struct {
	Name     string `json:"name"`
	Number   string `json:"number"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
	CVD      string `json:"cvd"`
}

// OrderRequest carries contact details stored on the profile.
type OrderRequest struct {
	Name       string `json:"name"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// CustomRequest carries the caller's reference slots.
type CustomRequest struct {
	Ref1 string `json:"ref1"`
	Ref2 string `json:"ref2"`
	Ref3 string `json:"ref3"`
	Ref4 string `json:"ref4"`
	Ref5 string `json:"ref5"`
}

// StoreProfileRequest is the body accepted by the create and update endpoints.
type StoreProfileRequest struct {
	Card   *CardRequest   `json:"card"`
	Order  *OrderRequest  `json:"order"`
	Custom *CustomRequest `json:"custom"`
}

// ProfileResponse is returned by the profile endpoints.
type ProfileResponse struct {
	CustomerCode string `json:"customer_code"`
	Approved     bool   `json:"approved"`
	Message      string `json:"message"`
	TestMode     bool   `json:"test_mode"`
}

func (r StoreProfileRequest) toInput(customerCode string) StoreInput {
	input := StoreInput{CustomerCode: customerCode}
	if r.Card != nil {
		input.Card = &beanstream.CreditCard{
			Name:              r.Card.Name,
			Number:            r.Card.Number,
			Month:             r.Card.ExpMonth,
			Year:              r.Card.ExpYear,
			VerificationValue: r.Card.CVD,
		}
	}
	if r.Order != nil {
		o := beanstream.Order(*r.Order)
		input.Order = &o
	}
	if r.Custom != nil {
		c := beanstream.Custom(*r.Custom)
		input.Custom = &c
	}
	return input
}
