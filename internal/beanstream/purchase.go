package beanstream

import (
	"context"
	"fmt"
	"log/slog"
)

var cvvCodes = map[string]string{
	"1": "M", // match
	"2": "N", // no match
	"3": "I", // not processed
	"4": "S", // should be on card
	"5": "U", // issuer not certified
	"6": "P", // not provided
}

// 5 and 9 are both "unavailable, retry" variants on the provider side.
var avsCodes = map[string]string{
	"0": "R",
	"5": "I",
	"9": "I",
}

// Purchase charges amount (in cents) against the stored profile customerCode.
func (c *Client) Purchase(ctx context.Context, amount int64, customerCode string) (Result, error) {
	f := c.buildPurchase(amount, customerCode)

	resp, err := c.post(ctx, c.purchaseURL, f)
	if err != nil {
		c.logger.Error("purchase request failed", slog.Any("error", err))
		return Result{}, err
	}

	res := Result{
		Success:       resp.Success(),
		Message:       resp.Message(),
		Raw:           resp,
		TestMode:      c.testMode,
		Authorization: authorizationFrom(resp),
		CVVResult:     cvvResult(resp),
		AVSResult:     avsResult(resp),
	}
	c.logger.Debug("purchase request completed",
		slog.Bool("success", res.Success),
		slog.String("message", res.Message),
		slog.String("authorization", res.Authorization),
	)
	return res, nil
}

func (c *Client) buildPurchase(amount int64, customerCode string) *Fields {
	f := &Fields{}
	f.Set("trnAmount", FormatAmount(amount))
	f.Set("customerCode", customerCode)
	f.Set("responseFormat", responseFormat)
	f.Set("requestType", requestType)
	f.Set("merchant_id", c.creds.MerchantID)
	f.Set("passCode", c.creds.Passcode)
	f.Set("username", c.creds.Username)
	f.Set("password", c.creds.Password)
	return f
}

// FormatAmount renders cents as a major-unit decimal with two places, e.g.
// 1050 -> "10.50".
func FormatAmount(cents int64) string {
	sign := ""
	u := uint64(cents)
	if cents < 0 {
		sign = "-"
		u = uint64(-(cents + 1)) + 1
	}
	return fmt.Sprintf("%s%d.%02d", sign, u/100, u%100)
}

func authorizationFrom(resp Response) string {
	id, ok := resp.Lookup(keyTrnID)
	if !ok || id == "" {
		return ""
	}
	return id + ";" + resp.Value(keyTrnAmount) + ";" + resp.Value(keyTrnType)
}

// cvvResult maps the provider cvdId to a letter grade; unknown codes have no grade.
func cvvResult(resp Response) string {
	return cvvCodes[resp.Value(keyCvdID)]
}

// avsResult maps the provider avsId; codes outside the table pass through.
func avsResult(resp Response) *AVSResult {
	code, ok := resp.Lookup(keyAvsID)
	if !ok {
		return nil
	}
	if mapped, known := avsCodes[code]; known {
		code = mapped
	}
	return &AVSResult{Code: code}
}
