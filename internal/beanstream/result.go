package beanstream

// AVSResult is the normalized address verification outcome.
type AVSResult struct {
	Code string `json:"code"`
}

// Result is the normalized outcome of a gateway call. A decline is a Result
// with Success=false, not an error.
type Result struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Raw      Response `json:"raw"`
	TestMode bool     `json:"test_mode"`

	// Purchase only.
	Authorization string     `json:"authorization,omitempty"`
	CVVResult     string     `json:"cvv_result,omitempty"`
	AVSResult     *AVSResult `json:"avs_result,omitempty"`
}

// CustomerCode returns the profile code echoed by the provider, if any.
func (r Result) CustomerCode() string {
	return r.Raw.Value(keyCustomerCode)
}
