package profiles

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/congo-pay/cardprofiles/internal/beanstream"
	"github.com/congo-pay/cardprofiles/internal/logging"
)

type fakeGateway struct {
	createCalls int
	updateCalls int
	lastCode    string
	lastCard    *beanstream.CreditCard
	lastOptions beanstream.ProfileOptions
	result      beanstream.Result
	err         error
}

func (g *fakeGateway) CreateProfile(_ context.Context, card *beanstream.CreditCard, opts beanstream.ProfileOptions) (beanstream.Result, error) {
	g.createCalls++
	g.lastCard = card
	g.lastOptions = opts
	return g.result, g.err
}

func (g *fakeGateway) UpdateProfile(_ context.Context, customerCode string, card *beanstream.CreditCard, opts beanstream.ProfileOptions) (beanstream.Result, error) {
	g.updateCalls++
	g.lastCode = customerCode
	g.lastCard = card
	g.lastOptions = opts
	return g.result, g.err
}

func approved(body string) beanstream.Result {
	raw := beanstream.ParseResponse(body)
	return beanstream.Result{Success: raw.Success(), Message: raw.Message(), Raw: raw, TestMode: true}
}

func TestServiceStoreCreatesProfile(t *testing.T) {
	gw := &fakeGateway{result: approved("responseCode=1&responseMessage=Operation+Successful&customerCode=NEWCODE")}
	svc, err := NewService(gw, logging.Discard())
	require.NoError(t, err)

	res, err := svc.Store(context.Background(), StoreInput{
		Card:  &beanstream.CreditCard{Name: "Ada", Number: "4030 0000 1000 1234", Month: 4, Year: 2031, VerificationValue: "123"},
		Order: &beanstream.Order{Email: "ada@example.com"},
	})
	require.NoError(t, err)

	require.Equal(t, 1, gw.createCalls)
	require.Equal(t, 0, gw.updateCalls)
	require.Equal(t, "4030000010001234", gw.lastCard.Number)
	require.Equal(t, "ada@example.com", gw.lastOptions.Order.Email)
	require.True(t, res.Created)
	require.True(t, res.Approved)
	require.True(t, res.TestMode)
	require.Equal(t, "NEWCODE", res.CustomerCode)
	require.Equal(t, "Operation Successful", res.Message)
}

func TestServiceStoreUpdatesWithoutCard(t *testing.T) {
	gw := &fakeGateway{result: approved("responseCode=1")}
	svc, err := NewService(gw, nil)
	require.NoError(t, err)

	res, err := svc.Store(context.Background(), StoreInput{
		CustomerCode: "EXISTING",
		Custom:       &beanstream.Custom{Ref1: "r1"},
	})
	require.NoError(t, err)

	require.Equal(t, 1, gw.updateCalls)
	require.Equal(t, "EXISTING", gw.lastCode)
	require.Nil(t, gw.lastCard)
	require.False(t, res.Created)
	require.Equal(t, "EXISTING", res.CustomerCode)
}

func TestServiceStoreValidation(t *testing.T) {
	gw := &fakeGateway{}
	svc, err := NewService(gw, nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Store(ctx, StoreInput{})
	require.ErrorIs(t, err, ErrCardRequired)

	_, err = svc.Store(ctx, StoreInput{Card: &beanstream.CreditCard{Number: "1234", Month: 1}})
	require.ErrorIs(t, err, ErrInvalidCard)

	_, err = svc.Store(ctx, StoreInput{Card: &beanstream.CreditCard{Number: "4111x11111111111", Month: 1}})
	require.ErrorIs(t, err, ErrInvalidCard)

	_, err = svc.Store(ctx, StoreInput{Card: &beanstream.CreditCard{Number: "4111111111111111", Month: 13}})
	require.ErrorIs(t, err, ErrInvalidCard)

	require.Equal(t, 0, gw.createCalls+gw.updateCalls)
}

func TestServiceStoreDeclineIsNotAnError(t *testing.T) {
	gw := &fakeGateway{result: approved("responseCode=7&responseMessage=Card+expired")}
	svc, err := NewService(gw, nil)
	require.NoError(t, err)

	res, err := svc.Store(context.Background(), StoreInput{
		Card: &beanstream.CreditCard{Number: "4111111111111111", Month: 1, Year: 2020},
	})
	require.NoError(t, err)
	require.False(t, res.Approved)
	require.Equal(t, "Card expired", res.Message)
}

func TestServiceStoreGatewayError(t *testing.T) {
	boom := errors.New("connection reset")
	gw := &fakeGateway{err: boom}
	svc, err := NewService(gw, nil)
	require.NoError(t, err)

	_, err = svc.Store(context.Background(), StoreInput{CustomerCode: "X"})
	require.ErrorIs(t, err, boom)
}

func TestNewServiceRequiresGateway(t *testing.T) {
	_, err := NewService(nil, nil)
	require.Error(t, err)
}
