package contracts

// WETHInitCode is the creation bytecode of the canonical WETH9 contract
// (solc 0.4.x build), deployed verbatim by the end-to-end deployment check.
const WETHInitCode = "0x60606040526040805190810160405280600d81526020017f5772617070656420457468657200000000000000000000" +
	"0000000000000000008152506000908051906020019061004f9291906100c8565b506040805190810160405280600481" +
	"526020017f57455448000000000000000000000000000000000000000000000000000000008152506001908051906020" +
	"019061009b9291906100c8565b506012600260006101000a81548160ff021916908360ff16021790555034156100c357" +
	"600080fd5b61016d565b828054600181600116156101000203166002900490600052602060002090601f016020900481" +
	"019282601f1061010957805160ff1916838001178555610137565b82800160010185558215610137579182015b828111" +
	"1561013657825182559160200191906001019061011b565b5b5090506101449190610148565b5090565b61016a91905b" +
	"8082111561016657600081600090555060010161014e565b5090565b90565b610c348061017c6000396000f300606060" +
	"4052600436106100af576000357c0100000000000000000000000000000000000000000000000000000000900463ffff" +
	"ffff16806306fdde03146100b9578063095ea7b31461014757806318160ddd146101a157806323b872dd146101ca5780" +
	"632e1a7d4d14610243578063313ce5671461026657806370a082311461029557806395d89b41146102e2578063a9059c" +
	"bb14610370578063d0e30db0146103ca578063dd62ed3e146103d4575b6100b7610440565b005b34156100c457600080" +
	"fd5b6100cc6104dd565b6040518080602001828103825283818151815260200191508051906020019080838360005b83" +
	"81101561010c5780820151818401526020810190506100f1565b50505050905090810190601f16801561013957808203" +
	"80516001836020036101000a031916815260200191505b509250505060405180910390f35b341561015257600080fd5b" +
	"610187600480803573ffffffffffffffffffffffffffffffffffffffff16906020019091908035906020019091905050" +
	"61057b565b604051808215151515815260200191505060405180910390f35b34156101ac57600080fd5b6101b461066d" +
	"565b6040518082815260200191505060405180910390f35b34156101d557600080fd5b610229600480803573ffffffff" +
	"ffffffffffffffffffffffffffffffff1690602001909190803573ffffffffffffffffffffffffffffffffffffffff16" +
	"90602001909190803590602001909190505061068c565b604051808215151515815260200191505060405180910390f3" +
	"5b341561024e57600080fd5b61026460048080359060200190919050506109d9565b005b341561027157600080fd5b61" +
	"0279610b05565b604051808260ff1660ff16815260200191505060405180910390f35b34156102a057600080fd5b6102" +
	"cc600480803573ffffffffffffffffffffffffffffffffffffffff16906020019091905050610b18565b604051808281" +
	"5260200191505060405180910390f35b34156102ed57600080fd5b6102f5610b30565b60405180806020018281038252" +
	"83818151815260200191508051906020019080838360005b838110156103355780820151818401526020810190506103" +
	"1a565b50505050905090810190601f1680156103625780820380516001836020036101000a031916815260200191505b" +
	"509250505060405180910390f35b341561037b57600080fd5b6103b0600480803573ffffffffffffffffffffffffffff" +
	"ffffffffffff16906020019091908035906020019091905050610bce565b604051808215151515815260200191505060" +
	"405180910390f35b6103d2610440565b005b34156103df57600080fd5b61042a600480803573ffffffffffffffffffff" +
	"ffffffffffffffffffff1690602001909190803573ffffffffffffffffffffffffffffffffffffffff16906020019091" +
	"905050610be3565b6040518082815260200191505060405180910390f35b34600360003373ffffffffffffffffffffff" +
	"ffffffffffffffffff1673ffffffffffffffffffffffffffffffffffffffff1681526020019081526020016000206000" +
	"82825401925050819055503373ffffffffffffffffffffffffffffffffffffffff167fe1fffcc4923d04b559f4d29a8b" +
	"fc6cda04eb5b0d3c460751c2402c5c5cc9109c346040518082815260200191505060405180910390a2565b6000805460" +
	"0181600116156101000203166002900480601f0160208091040260200160405190810160405280929190818152602001" +
	"828054600181600116156101000203166002900480156105735780601f10610548576101008083540402835291602001" +
	"91610573565b820191906000526020600020905b81548152906001019060200180831161055657829003601f16820191" +
	"5b505050505081565b600081600460003373ffffffffffffffffffffffffffffffffffffffff1673ffffffffffffffff" +
	"ffffffffffffffffffffffff16815260200190815260200160002060008573ffffffffffffffffffffffffffffffffff" +
	"ffffff1673ffffffffffffffffffffffffffffffffffffffff168152602001908152602001600020819055508273ffff" +
	"ffffffffffffffffffffffffffffffffffff163373ffffffffffffffffffffffffffffffffffffffff167f8c5be1e5eb" +
	"ec7d5bd14f71427d1e84f3dd0314c0f7b2291e5b200ac8c7c3b925846040518082815260200191505060405180910390" +
	"a36001905092915050565b60003073ffffffffffffffffffffffffffffffffffffffff1631905090565b600081600360" +
	"008673ffffffffffffffffffffffffffffffffffffffff1673ffffffffffffffffffffffffffffffffffffffff168152" +
	"60200190815260200160002054101515156106dc57600080fd5b3373ffffffffffffffffffffffffffffffffffffffff" +
	"168473ffffffffffffffffffffffffffffffffffffffff16141580156107b457507fffffffffffffffffffffffffffff" +
	"ffffffffffffffffffffffffffffffffffff600460008673ffffffffffffffffffffffffffffffffffffffff1673ffff" +
	"ffffffffffffffffffffffffffffffffffff16815260200190815260200160002060003373ffffffffffffffffffffff" +
	"ffffffffffffffffff1673ffffffffffffffffffffffffffffffffffffffff1681526020019081526020016000205414" +
	"155b156108cf5781600460008673ffffffffffffffffffffffffffffffffffffffff1673ffffffffffffffffffffffff" +
	"ffffffffffffffff16815260200190815260200160002060003373ffffffffffffffffffffffffffffffffffffffff16" +
	"73ffffffffffffffffffffffffffffffffffffffff168152602001908152602001600020541015151561084457600080" +
	"fd5b81600460008673ffffffffffffffffffffffffffffffffffffffff1673ffffffffffffffffffffffffffffffffff" +
	"ffffff16815260200190815260200160002060003373ffffffffffffffffffffffffffffffffffffffff1673ffffffff" +
	"ffffffffffffffffffffffffffffffff168152602001908152602001600020600082825403925050819055505b816003" +
	"60008673ffffffffffffffffffffffffffffffffffffffff1673ffffffffffffffffffffffffffffffffffffffff1681" +
	"526020019081526020016000206000828254039250508190555081600360008573ffffffffffffffffffffffffffffff" +
	"ffffffffff1673ffffffffffffffffffffffffffffffffffffffff168152602001908152602001600020600082825401" +
	"925050819055508273ffffffffffffffffffffffffffffffffffffffff168473ffffffffffffffffffffffffffffffff" +
	"ffffffff167fddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef84604051808281526020" +
	"0191505060405180910390a3600190509392505050565b80600360003373ffffffffffffffffffffffffffffffffffff" +
	"ffff1673ffffffffffffffffffffffffffffffffffffffff1681526020019081526020016000205410151515610a2757" +
	"600080fd5b80600360003373ffffffffffffffffffffffffffffffffffffffff1673ffffffffffffffffffffffffffff" +
	"ffffffffffff168152602001908152602001600020600082825403925050819055503373ffffffffffffffffffffffff" +
	"ffffffffffffffff166108fc829081150290604051600060405180830381858888f193505050501515610ab457600080" +
	"fd5b3373ffffffffffffffffffffffffffffffffffffffff167f7fcf532c15f0a6db0bd6d0e038bea71d30d808c7d98c" +
	"b3bf7268a95bf5081b65826040518082815260200191505060405180910390a250565b600260009054906101000a9004" +
	"60ff1681565b60036020528060005260406000206000915090505481565b600180546001816001161561010002031660" +
	"02900480601f016020809104026020016040519081016040528092919081815260200182805460018160011615610100" +
	"020316600290048015610bc65780601f10610b9b57610100808354040283529160200191610bc6565b82019190600052" +
	"6020600020905b815481529060010190602001808311610ba957829003601f168201915b505050505081565b6000610b" +
	"db33848461068c565b905092915050565b60046020528160005260406000206020528060005260406000206000915091" +
	"505054815600a165627a7a72305820deb4c2ccab3c2fdca32ab3f46728389c2fe2c165d5fafa07661e4e004f6c344a00" +
	"29"
