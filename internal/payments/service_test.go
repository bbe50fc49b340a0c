package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/congo-pay/cardprofiles/internal/beanstream"
	"github.com/congo-pay/cardprofiles/internal/notification"
)

type testNotifier struct {
	sent []notification.Message
}

func (n *testNotifier) Send(_ context.Context, msg notification.Message) error {
	n.sent = append(n.sent, msg)
	return nil
}

type fakeGateway struct {
	calls        int
	lastAmount   int64
	lastCustomer string
	reply        string
	err          error
}

func (g *fakeGateway) Purchase(_ context.Context, amount int64, customerCode string) (beanstream.Result, error) {
	g.calls++
	g.lastAmount = amount
	g.lastCustomer = customerCode
	if g.err != nil {
		return beanstream.Result{}, g.err
	}
	raw := beanstream.ParseResponse(g.reply)
	return beanstream.Result{
		Success:       raw.Success(),
		Message:       raw.Message(),
		Raw:           raw,
		Authorization: raw.Value("trnId") + ";" + raw.Value("trnAmount") + ";" + raw.Value("trnType"),
		CVVResult:     "M",
		AVSResult:     &beanstream.AVSResult{Code: "R"},
	}, nil
}

func TestChargeApproved(t *testing.T) {
	gw := &fakeGateway{reply: "trnApproved=1&trnId=10000028&messageText=Approved&trnAmount=10.50&trnType=P"}
	notifier := &testNotifier{}
	svc := NewService(gw, notifier, nil)

	res, err := svc.Charge(context.Background(), ChargeInput{CustomerCode: "C1", Amount: 1050})
	require.NoError(t, err)

	require.True(t, res.Approved)
	require.Equal(t, "Approved", res.Message)
	require.Equal(t, "10000028;10.50;P", res.Authorization)
	require.Equal(t, "M", res.CVVResult)
	require.Equal(t, "R", res.AVSResult.Code)
	require.Equal(t, int64(1050), gw.lastAmount)
	require.Equal(t, "C1", gw.lastCustomer)
	require.Empty(t, notifier.sent)
}

func TestChargeDeclinedNotifies(t *testing.T) {
	gw := &fakeGateway{reply: "trnApproved=0&messageText=DECLINE"}
	notifier := &testNotifier{}
	svc := NewService(gw, notifier, nil)

	res, err := svc.Charge(context.Background(), ChargeInput{CustomerCode: "C2", Amount: 250})
	require.NoError(t, err)
	require.False(t, res.Approved)

	require.Len(t, notifier.sent, 1)
	require.Equal(t, notification.KindPurchaseDeclined, notifier.sent[0].Kind)
	require.Equal(t, "C2", notifier.sent[0].CustomerCode)
	require.Equal(t, "charge of 2.50 declined: DECLINE", notifier.sent[0].Body)
}

func TestChargeValidation(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw, nil, nil)
	ctx := context.Background()

	_, err := svc.Charge(ctx, ChargeInput{CustomerCode: "C1", Amount: 0})
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Charge(ctx, ChargeInput{Amount: 100})
	require.ErrorIs(t, err, ErrCustomerCodeRequired)

	require.Equal(t, 0, gw.calls)
}

func TestChargeGatewayError(t *testing.T) {
	statusErr := &beanstream.StatusError{StatusCode: 503, Body: "maintenance"}
	svc := NewService(&fakeGateway{err: statusErr}, nil, nil)

	_, err := svc.Charge(context.Background(), ChargeInput{CustomerCode: "C1", Amount: 100})

	var target *beanstream.StatusError
	require.True(t, errors.As(err, &target))
	require.Equal(t, 503, target.StatusCode)
}
