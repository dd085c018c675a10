package model

type Coin string
type Network string

var (
	BTC Coin = "BTC"
)

var (
	Mainnet  Network = "mainnet"
	Testnet  Network = "testnet"
	Testnet4 Network = "testnet4"
	Regtest  Network = "regtest"
)
