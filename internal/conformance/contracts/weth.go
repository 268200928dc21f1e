// Package contracts holds the contract fixtures the conformance checks run
// against: the genesis system contracts of the node under test and a WETH9
// instance deployed by the suite itself.
package contracts

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// wethABIJSON covers the WETH9 surface the suite exercises.
const wethABIJSON = `[
  {"constant":true,"inputs":[],"name":"name","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"},
  {"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"},
  {"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"payable":false,"stateMutability":"view","type":"function"},
  {"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
  {"constant":true,"inputs":[{"name":"","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
  {"constant":false,"inputs":[{"name":"dst","type":"address"},{"name":"wad","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"payable":false,"stateMutability":"nonpayable","type":"function"},
  {"constant":false,"inputs":[{"name":"wad","type":"uint256"}],"name":"withdraw","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
  {"constant":false,"inputs":[],"name":"deposit","outputs":[],"payable":true,"stateMutability":"payable","type":"function"},
  {"payable":true,"stateMutability":"payable","type":"fallback"},
  {"anonymous":false,"inputs":[{"indexed":true,"name":"dst","type":"address"},{"indexed":false,"name":"wad","type":"uint256"}],"name":"Deposit","type":"event"},
  {"anonymous":false,"inputs":[{"indexed":true,"name":"src","type":"address"},{"indexed":false,"name":"wad","type":"uint256"}],"name":"Withdrawal","type":"event"}
]`

// WETHName is the token name the deployed fixture must report.
const WETHName = "Wrapped Ether"

var wethABI = mustParseABI(wethABIJSON)

func mustParseABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded ABI: %v", err))
	}
	return parsed
}

// PackWETHDeposit returns calldata for deposit().
func PackWETHDeposit() []byte {
	return mustPack("deposit")
}

// PackWETHBalanceOf returns calldata for balanceOf(owner).
func PackWETHBalanceOf(owner common.Address) []byte {
	return mustPack("balanceOf", owner)
}

// PackWETHName returns calldata for name().
func PackWETHName() []byte {
	return mustPack("name")
}

// mustPack panics on pack failure, which with a compile-time ABI and typed
// arguments cannot happen at runtime.
func mustPack(method string, args ...any) []byte {
	data, err := wethABI.Pack(method, args...)
	if err != nil {
		panic(fmt.Sprintf("pack %s: %v", method, err))
	}
	return data
}

// UnpackWETHName decodes the return value of name().
func UnpackWETHName(ret []byte) (string, error) {
	out, err := wethABI.Unpack("name", ret)
	if err != nil {
		return "", fmt.Errorf("unpack name: %w", err)
	}
	name, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected name return type %T", out[0])
	}
	return name, nil
}

// UnpackWETHBalanceOf decodes the return value of balanceOf.
func UnpackWETHBalanceOf(ret []byte) (*big.Int, error) {
	out, err := wethABI.Unpack("balanceOf", ret)
	if err != nil {
		return nil, fmt.Errorf("unpack balanceOf: %w", err)
	}
	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected balanceOf return type %T", out[0])
	}
	return balance, nil
}
