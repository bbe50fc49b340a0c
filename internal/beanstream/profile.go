package beanstream

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Operation is the profile operationType sent to the provider.
type Operation string

const (
	OperationNew    Operation = "N"
	OperationUpdate Operation = "M"
)

// ParseOperation accepts "new"/"N" and "update"/"M", case-insensitively.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "new", "n":
		return OperationNew, nil
	case "update", "m":
		return OperationUpdate, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOperation, s)
	}
}

// CreditCard is the card stored on a profile.
type CreditCard struct {
	Name              string
	Number            string
	Month             int
	Year              int
	VerificationValue string
}

// Order carries the customer contact details kept on a profile.
type Order struct {
	Name       string
	Address1   string
	Address2   string
	City       string
	Province   string
	Country    string
	PostalCode string
	Email      string
	Phone      string
}

// Custom holds the caller's reference slots ref1..ref5.
type Custom struct {
	Ref1 string
	Ref2 string
	Ref3 string
	Ref4 string
	Ref5 string
}

// ProfileOptions describe the non-card parts of a profile request. An empty
// CustomerCode creates a new profile.
type ProfileOptions struct {
	CustomerCode string
	Order        *Order
	Custom       *Custom
}

// StoreProfile creates a profile when opts.CustomerCode is empty and updates
// the referenced profile otherwise. card may be nil to leave the stored card
// untouched.
func (c *Client) StoreProfile(ctx context.Context, card *CreditCard, opts ProfileOptions) (Result, error) {
	op := OperationNew
	if opts.CustomerCode != "" {
		op = OperationUpdate
	}
	return c.storeProfile(ctx, op, card, opts)
}

// CreateProfile always creates a new profile; opts.CustomerCode is ignored.
func (c *Client) CreateProfile(ctx context.Context, card *CreditCard, opts ProfileOptions) (Result, error) {
	opts.CustomerCode = ""
	return c.storeProfile(ctx, OperationNew, card, opts)
}

// UpdateProfile modifies the profile identified by customerCode.
func (c *Client) UpdateProfile(ctx context.Context, customerCode string, card *CreditCard, opts ProfileOptions) (Result, error) {
	opts.CustomerCode = customerCode
	return c.storeProfile(ctx, OperationUpdate, card, opts)
}

func (c *Client) storeProfile(ctx context.Context, op Operation, card *CreditCard, opts ProfileOptions) (Result, error) {
	fields, err := c.buildProfile(op, card, opts)
	if err != nil {
		return Result{}, err
	}

	resp, err := c.post(ctx, c.profileURL, fields)
	if err != nil {
		c.logger.Error("profile request failed", slog.String("operation", string(op)), slog.Any("error", err))
		return Result{}, err
	}

	res := Result{
		Success:  resp.Success(),
		Message:  resp.Message(),
		Raw:      resp,
		TestMode: c.testMode,
	}
	c.logger.Debug("profile request completed",
		slog.String("operation", string(op)),
		slog.Bool("success", res.Success),
		slog.String("message", res.Message),
	)
	return res, nil
}

func (c *Client) buildProfile(op Operation, card *CreditCard, opts ProfileOptions) (*Fields, error) {
	if op != OperationNew && op != OperationUpdate {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOperation, string(op))
	}

	f := &Fields{}
	f.Set("operationType", string(op))
	if op == OperationUpdate {
		f.Set("customerCode", opts.CustomerCode)
	}
	addCard(f, card)
	addOrder(f, opts.Order)
	addCustom(f, opts.Custom)

	f.Set("responseFormat", responseFormat)
	f.Set("serviceVersion", serviceVersion)
	f.Set("merchantId", c.creds.MerchantID)
	f.Set("passCode", c.creds.Passcode)
	return f, nil
}

func addCard(f *Fields, card *CreditCard) {
	if card == nil {
		return
	}
	f.Set("trnCardOwner", card.Name)
	f.Set("trnCardNumber", card.Number)
	f.Set("trnExpMonth", fmt.Sprintf("%02d", card.Month))
	f.Set("trnExpYear", fmt.Sprintf("%02d", card.Year%100))
	f.Set("trnCardCvd", card.VerificationValue)
}

func addOrder(f *Fields, o *Order) {
	if o == nil {
		return
	}
	f.Set("ordName", o.Name)
	f.Set("ordAddress1", o.Address1)
	f.Set("ordAddress2", o.Address2)
	f.Set("ordCity", o.City)
	f.Set("ordProvince", o.Province)
	f.Set("ordCountry", o.Country)
	f.Set("ordPostalCode", o.PostalCode)
	f.Set("ordEmailAddress", o.Email)
	f.Set("ordPhoneNumber", o.Phone)
}

func addCustom(f *Fields, c *Custom) {
	if c == nil {
		return
	}
	f.Set("ref1", c.Ref1)
	f.Set("ref2", c.Ref2)
	f.Set("ref3", c.Ref3)
	f.Set("ref4", c.Ref4)
	f.Set("ref5", c.Ref5)
}
