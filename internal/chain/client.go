package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/MCalenda/FundMeNow/internal/config"
	"github.com/MCalenda/FundMeNow/internal/logger"
	"github.com/MCalenda/FundMeNow/internal/model"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"gorm.io/gorm"
)

const transferGasLimit = 21000

// Client 链上转账后端。持有托管账户私钥，只负责出金方向
// （托管账户 -> 外部地址）；入金在链上部署中由存款监听入账。
type Client struct {
	client     *ethclient.Client
	privateKey *ecdsa.PrivateKey
	chainId    *big.Int
	escrow     common.Address
	db         *gorm.DB
}

// Init 初始化链客户端
func Init(cfg config.ChainConfig, db *gorm.DB) (*Client, error) {
	client, err := ethclient.Dial(cfg.RpcUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ethereum client: %w", err)
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	escrow := crypto.PubkeyToAddress(privateKey.PublicKey)
	logger.Info("Chain client initialized (chain_id: %d, escrow: %s)", cfg.ChainId, escrow.Hex())

	return &Client{
		client:     client,
		privateKey: privateKey,
		chainId:    big.NewInt(cfg.ChainId),
		escrow:     escrow,
		db:         db,
	}, nil
}

// EscrowAddress 托管账户地址
func (c *Client) EscrowAddress() string {
	return c.escrow.Hex()
}

// Transfer 从托管账户向目标地址发起链上转账
func (c *Client) Transfer(from, to string, amount int64) error {
	if !common.IsHexAddress(to) {
		return fmt.Errorf("invalid destination address %q", to)
	}
	if common.HexToAddress(from) != c.escrow {
		return fmt.Errorf("chain backend can only transfer from the escrow account")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	nonce, err := c.client.PendingNonceAt(ctx, c.escrow)
	if err != nil {
		return fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("failed to get gas price: %w", err)
	}

	destination := common.HexToAddress(to)
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &destination,
		Value:    big.NewInt(amount),
		Gas:      transferGasLimit,
		GasPrice: gasPrice,
	})

	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(c.chainId), c.privateKey)
	if err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.client.SendTransaction(ctx, signedTx); err != nil {
		return fmt.Errorf("failed to send transaction: %w", err)
	}

	logger.Info("Sent transfer of %d to %s (tx: %s)", amount, to, signedTx.Hash().Hex())

	record := model.TransferRecordModel{
		FromAddress: from,
		ToAddress:   to,
		Amount:      amount,
		Backend:     "chain",
		TxHash:      signedTx.Hash().Hex(),
	}
	if err := c.db.Create(&record).Error; err != nil {
		// 流水记录失败不回滚已经发出的链上交易
		logger.Error("Failed to record chain transfer %s: %v", signedTx.Hash().Hex(), err)
	}

	return nil
}
