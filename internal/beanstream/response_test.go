package beanstream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseResponseEmpty(t *testing.T) {
	r := ParseResponse("")

	require.Equal(t, 0, r.Len())
	require.False(t, r.Success())
	require.Equal(t, "", r.Message())
}

func TestParseResponseDecodesValues(t *testing.T) {
	r := ParseResponse("responseCode=1&responseMessage=Operation+Successful&customerCode=ABC%2F123&flag")

	require.Equal(t, 4, r.Len())
	require.Equal(t, "Operation Successful", r.Value("responseMessage"))
	require.Equal(t, "ABC/123", r.Value("customerCode"))

	require.True(t, r.Has("flag"))
	_, ok := r.Lookup("flag")
	require.False(t, ok)
	require.False(t, r.Has("missing"))
}

func TestParseResponseSplitsOnFirstEquals(t *testing.T) {
	r := ParseResponse("note=a=b&empty=")

	require.Equal(t, "a=b", r.Value("note"))
	v, ok := r.Lookup("empty")
	require.True(t, ok)
	require.Equal(t, "", v)
}

func TestParseResponseKeepsUndecodableValue(t *testing.T) {
	r := ParseResponse("ref1=100%zz")
	require.Equal(t, "100%zz", r.Value("ref1"))
}

func TestParseResponseCleansMessageText(t *testing.T) {
	r := ParseResponse("trnApproved=0&messageText=Error%3CLI%3EBad+card.%3Cbr%3ETry+again.")

	require.Equal(t, "Error Bad card. Try again.", r.Value("messageText"))
	require.Equal(t, "Error Bad card. Try again.", r.Message())
}

func TestCleanMessage(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "Error<LI>Bad card.<br>Try again.", want: "Error Bad card. Try again."},
		{in: "<LI>Invalid card number<br><LI>Invalid expiry<br>", want: "Invalid card number. Invalid expiry."},
		{in: "  Approved  ", want: "Approved"},
		{in: "", want: ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, cleanMessage(tc.in), "input %q", tc.in)
	}
}

func TestResponseSuccess(t *testing.T) {
	cases := []struct {
		body string
		want bool
	}{
		{"trnApproved=1&responseCode=0", true},
		{"responseCode=1", true},
		{"trnApproved=1", true},
		{"trnApproved=0", false},
		{"responseCode=2&trnApproved=0", false},
		{"trnApproved", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ParseResponse(tc.body).Success(), tc.body)
	}
}

func TestResponseMessagePrefersResponseMessage(t *testing.T) {
	r := ParseResponse("responseMessage=Operation+Successful&messageText=Approved")
	require.Equal(t, "Operation Successful", r.Message())
}

func TestResponseMarshalJSON(t *testing.T) {
	r := ParseResponse("trnId=10000001&bare")

	b, err := json.Marshal(r)
	require.NoError(t, err)
	require.JSONEq(t, `{"trnId":"10000001","bare":null}`, string(b))

	b, err = json.Marshal(Response{})
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(b))
}
