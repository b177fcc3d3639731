package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/lendbit/token-faucet/faucet/backend/config"
	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
	"github.com/lendbit/token-faucet/metrics"
	"github.com/lendbit/token-faucet/service/testlog"
)

type mockProber struct {
	mock.Mock
}

func (m *mockProber) Probe(ctx context.Context, req ftypes.TokenRequest) (ftypes.EligibilityResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ftypes.EligibilityResult), args.Error(1)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispense(ctx context.Context, req ftypes.TokenRequest) (common.Hash, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(common.Hash), args.Error(1)
}

const testRecipient = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

func testCatalog() *config.Config {
	faucetAddr := common.HexToAddress("0x1111111111111111111111111111111111111111")
	return &config.Config{
		DefaultChain: "base-sepolia",
		Networks: map[ftypes.ChainKey]*config.Network{
			"base-sepolia": {
				Name:          "Base Sepolia",
				ChainID:       84532,
				RPCURL:        "http://localhost:8545",
				FaucetAddress: &faucetAddr,
				BlockExplorer: "https://base-sepolia.blockscout.com/",
			},
			"sepolia": {Name: "Sepolia", ChainID: 11155111},
		},
		Tokens: map[ftypes.TokenSymbol]*config.Token{
			"WETH": {
				Name:      "Wrapped Ether",
				Decimals:  18,
				Amount:    "0.1",
				Addresses: map[ftypes.ChainKey]common.Address{"base-sepolia": common.HexToAddress("0xAB6015514c40F5B0bb583f28c0819cA79e3B9415")},
			},
			"USDT": {
				Name:      "USD Tether",
				Decimals:  6,
				Amount:    "100",
				Addresses: map[ftypes.ChainKey]common.Address{"base-sepolia": common.HexToAddress("0x00D1C02E008D594ebEFe3F3b7fd175850f96AEa0")},
			},
		},
	}
}

func testRequest() ftypes.TokenRequest {
	return ftypes.TokenRequest{
		Chain:     "base-sepolia",
		Token:     "WETH",
		Recipient: common.HexToAddress(testRecipient),
	}
}

func newTestBackend(t *testing.T) (*Backend, *mockProber, *mockDispatcher) {
	p := new(mockProber)
	d := new(mockDispatcher)
	b := New(testlog.Logger(t, log.LevelDebug), metrics.NoopMetrics{}, testCatalog(), p, d)
	t.Cleanup(func() {
		p.AssertExpectations(t)
		d.AssertExpectations(t)
	})
	return b, p, d
}

func TestRequestTokens_Validation(t *testing.T) {
	cases := []struct {
		name                    string
		chain, token, recipient string
		reason                  string
	}{
		{"missing recipient", "base-sepolia", "WETH", "", "Missing required parameters"},
		{"missing token", "base-sepolia", "", testRecipient, "Missing required parameters"},
		{"missing chain", "", "WETH", testRecipient, "Missing required parameters"},
		{"unknown chain", "mainnet", "WETH", testRecipient, "Unsupported chain: mainnet"},
		{"unknown chain before bad address", "mainnet", "WETH", "0x123", "Unsupported chain: mainnet"},
		{"unknown token", "base-sepolia", "DOGE", testRecipient, "Unsupported token: DOGE on base-sepolia"},
		{"token not on chain", "sepolia", "WETH", testRecipient, "Unsupported token: WETH on sepolia"},
		{"bad address", "base-sepolia", "WETH", "0x123", "Invalid recipient address"},
		{"bad checksum", "base-sepolia", "WETH", "0x5aaeb6053F3E94C9b9A09f33669435E7Ef1BeAed", "Invalid recipient address"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, p, d := newTestBackend(t)
			_, err := b.RequestTokens(context.Background(), c.chain, c.token, c.recipient)
			require.ErrorIs(t, err, ftypes.ErrValidation)
			require.EqualError(t, err, c.reason)
			p.AssertNotCalled(t, "Probe", mock.Anything, mock.Anything)
			d.AssertNotCalled(t, "Dispense", mock.Anything, mock.Anything)
		})
	}
}

func TestRequestTokens_Cooldown(t *testing.T) {
	b, p, d := newTestBackend(t)
	ctx := context.Background()
	p.On("Probe", ctx, testRequest()).Return(ftypes.EligibilityResult{Allowed: false, WaitSeconds: 125}, nil).Once()

	_, err := b.RequestTokens(ctx, "base-sepolia", "WETH", testRecipient)
	require.ErrorIs(t, err, ftypes.ErrCooldownActive)
	require.Contains(t, err.Error(), "3 minutes")
	require.Equal(t, "Please wait approximately 3 minutes before requesting WETH again on Base Sepolia.", err.Error())
	var cooldown *ftypes.CooldownError
	require.True(t, errors.As(err, &cooldown))
	require.Equal(t, uint64(125), cooldown.WaitSeconds)
	d.AssertNotCalled(t, "Dispense", mock.Anything, mock.Anything)
}

func TestRequestTokens_Success(t *testing.T) {
	b, p, d := newTestBackend(t)
	ctx := context.Background()
	hash := common.HexToHash("0xabc")
	p.On("Probe", ctx, testRequest()).Return(ftypes.EligibilityResult{Allowed: true}, nil).Once()
	d.On("Dispense", ctx, testRequest()).Return(hash, nil).Once()

	out, err := b.RequestTokens(ctx, "base-sepolia", "WETH", testRecipient)
	require.NoError(t, err)
	require.Equal(t, hash, out.TxHash)
	require.Equal(t, ftypes.ChainKey("base-sepolia"), out.Chain)
	d.AssertNumberOfCalls(t, "Dispense", 1)
}

func TestRequestTokens_LowercaseRecipient(t *testing.T) {
	b, p, d := newTestBackend(t)
	ctx := context.Background()
	p.On("Probe", ctx, testRequest()).Return(ftypes.EligibilityResult{Allowed: true}, nil).Once()
	d.On("Dispense", ctx, testRequest()).Return(common.HexToHash("0x01"), nil).Once()

	_, err := b.RequestTokens(ctx, "base-sepolia", "WETH", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)
}

func TestRequestTokens_UnprefixedRecipient(t *testing.T) {
	b, p, d := newTestBackend(t)
	ctx := context.Background()
	p.On("Probe", ctx, testRequest()).Return(ftypes.EligibilityResult{Allowed: true}, nil).Once()
	d.On("Dispense", ctx, testRequest()).Return(common.HexToHash("0x02"), nil).Once()

	_, err := b.RequestTokens(ctx, "base-sepolia", "WETH", testRecipient[2:])
	require.NoError(t, err)
}

func TestRequestTokens_ProbeError(t *testing.T) {
	b, p, d := newTestBackend(t)
	ctx := context.Background()
	p.On("Probe", ctx, testRequest()).Return(ftypes.EligibilityResult{}, errors.New("connection refused")).Once()

	_, err := b.RequestTokens(ctx, "base-sepolia", "WETH", testRecipient)
	require.ErrorIs(t, err, ftypes.ErrEligibilityCheck)
	require.NotErrorIs(t, err, ftypes.ErrDispatch)
	d.AssertNotCalled(t, "Dispense", mock.Anything, mock.Anything)
}

func TestRequestTokens_ConfigurationError(t *testing.T) {
	p := new(mockProber)
	d := new(mockDispatcher)
	lgr, logs := testlog.CaptureLogger(log.LevelDebug)
	b := New(lgr, metrics.NoopMetrics{}, testCatalog(), p, d)
	ctx := context.Background()
	p.On("Probe", ctx, testRequest()).Return(ftypes.EligibilityResult{}, ftypes.ErrConfiguration).Once()

	_, err := b.RequestTokens(ctx, "base-sepolia", "WETH", testRecipient)
	require.ErrorIs(t, err, ftypes.ErrConfiguration)
	require.NotErrorIs(t, err, ftypes.ErrEligibilityCheck)
	require.NotNil(t, logs.FindLog(log.LevelError, "misconfigured"))
	d.AssertNotCalled(t, "Dispense", mock.Anything, mock.Anything)
}

func TestRequestTokens_DispatchError(t *testing.T) {
	p := new(mockProber)
	d := new(mockDispatcher)
	lgr, logs := testlog.CaptureLogger(log.LevelDebug)
	b := New(lgr, metrics.NoopMetrics{}, testCatalog(), p, d)
	ctx := context.Background()
	p.On("Probe", ctx, testRequest()).Return(ftypes.EligibilityResult{Allowed: true}, nil).Once()
	d.On("Dispense", ctx, testRequest()).Return(common.Hash{}, errors.New("insufficient funds for gas")).Once()

	_, err := b.RequestTokens(ctx, "base-sepolia", "WETH", testRecipient)
	require.ErrorIs(t, err, ftypes.ErrDispatch)
	require.ErrorContains(t, err, "insufficient funds for gas")
	rec := logs.FindLog(log.LevelError, "Failed to dispense")
	require.NotNil(t, rec)
	d.AssertNumberOfCalls(t, "Dispense", 1)
}

func TestCheckEligibility(t *testing.T) {
	b, p, d := newTestBackend(t)
	ctx := context.Background()
	p.On("Probe", ctx, testRequest()).Return(ftypes.EligibilityResult{Allowed: false, WaitSeconds: 60}, nil).Once()

	res, err := b.CheckEligibility(ctx, "base-sepolia", "WETH", testRecipient)
	require.NoError(t, err)
	require.False(t, res.Allowed)
	require.Equal(t, uint64(1), res.WaitMinutes())

	_, err = b.CheckEligibility(ctx, "base-sepolia", "WETH", "nope")
	require.ErrorIs(t, err, ftypes.ErrInvalidAddress)
	d.AssertNotCalled(t, "Dispense", mock.Anything, mock.Anything)
}

func TestFromConfig(t *testing.T) {
	lgr := testlog.Logger(t, log.LevelDebug)
	b, err := FromConfig(context.Background(), lgr, metrics.NoopMetrics{}, testCatalog(), SignerConfig{})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, b.Stop(context.Background()))
	})

	// without a signer every chain is unconfigured
	_, err = b.RequestTokens(context.Background(), "base-sepolia", "WETH", testRecipient)
	require.ErrorIs(t, err, ftypes.ErrConfiguration)
	require.ErrorContains(t, err, "faucet private key not configured for base-sepolia")

	bad := testCatalog()
	bad.DefaultChain = "mainnet"
	_, err = FromConfig(context.Background(), lgr, metrics.NoopMetrics{}, bad, SignerConfig{})
	require.ErrorContains(t, err, "invalid catalog")

	_, err = FromConfig(context.Background(), lgr, metrics.NoopMetrics{}, testCatalog(), SignerConfig{PrivateKey: "0xzz"})
	require.ErrorContains(t, err, "failed to load signer")
}
