package wallet

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
	"github.com/dwarvesf/swiftchain-backend/internal/view"
	"github.com/dwarvesf/swiftchain-backend/internal/walletrpc"
)

const address = "0x52908400098527886E0F7030069857D2E4169EE7"

type mockChainClient struct {
	mock.Mock
}

func (m *mockChainClient) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	args := m.Called(account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *mockChainClient) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	args := m.Called(call.To)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockChainClient) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	args := m.Called(account)
	return args.Get(0).(uint64), args.Error(1)
}

type balanceEnvelope struct {
	Data  *view.WalletBalance `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupRouter(client walletrpc.ChainClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New("test")
	h := New(walletrpc.NewWithClient(client, "0x7169D38820dfd117C3FA1f22a697dBA58d90BA06", 11155111, log, nil), log)

	r := gin.New()
	r.GET("/api/v1/wallets/:address/balance", h.Balance)
	return r
}

func get(t *testing.T, r *gin.Engine, path string) (int, balanceEnvelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var resp balanceEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestBalance_ETHDefault(t *testing.T) {
	client := &mockChainClient{}
	wei, _ := new(big.Int).SetString("1500000000000000000", 10)
	client.On("BalanceAt", common.HexToAddress(address)).Return(wei, nil)

	code, resp := get(t, setupRouter(client), "/api/v1/wallets/"+address+"/balance")

	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "ETH", resp.Data.Currency)
	assert.Equal(t, "1.500000", resp.Data.Balance)
}

func TestBalance_Errors(t *testing.T) {
	failing := &mockChainClient{}
	failing.On("BalanceAt", mock.Anything).Return(nil, errors.New("connection refused"))

	tests := []struct {
		name       string
		client     walletrpc.ChainClient
		path       string
		wantStatus int
		wantCode   string
	}{
		{name: "invalid address", client: &mockChainClient{}, path: "/api/v1/wallets/nope/balance", wantStatus: http.StatusBadRequest, wantCode: "InvalidAddress"},
		{name: "unsupported asset", client: &mockChainClient{}, path: "/api/v1/wallets/" + address + "/balance?asset=btc", wantStatus: http.StatusBadRequest, wantCode: "UnsupportedCurrency"},
		{name: "no endpoint", client: nil, path: "/api/v1/wallets/" + address + "/balance", wantStatus: http.StatusServiceUnavailable, wantCode: "WalletUnavailable"},
		{name: "rpc failure", client: failing, path: "/api/v1/wallets/" + address + "/balance", wantStatus: http.StatusServiceUnavailable, wantCode: "WalletUnavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := get(t, setupRouter(tt.client), tt.path)

			assert.Equal(t, tt.wantStatus, code)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}
