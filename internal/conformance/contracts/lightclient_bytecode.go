package contracts

// LightClientRuntimeCode is the exact runtime bytecode the node must report
// for the genesis light client system contract.
const LightClientRuntimeCode = "0x608060405234801561001057600080fd5b50600436106100a95760003560e01c806357e871e71161007157806357e8" +
	"71e71461014c57806361b207e214610155578063a91d8b3d14610182578063d269a03e146101a2578063d761753e1461" +
	"01b5578063ee82ac5e146101e857600080fd5b80630466efc4146100ae5780630e27bc11146100e15780631f57833314" +
	"6100f657806334cdf78d146101095780634ffd344a14610129575b600080fd5b6100ce6100bc366004610598565b6000" +
	"9081526002602052604090205490565b6040519081526020015b60405180910390f35b6100f46100ef3660046105b156" +
	"5b610208565b005b6100f4610104366004610598565b610330565b6100ce610117366004610598565b60016020526000" +
	"908152604090205481565b61013c61013736600461061c565b6103de565b60405190151581526020016100d8565b6100" +
	"ce60005481565b6100ce610163366004610598565b600090815260016020908152604080832054835260029091529020" +
	"5490565b6100ce610190366004610598565b60026020526000908152604090205481565b61013c6101b036600461061c" +
	"565b610404565b6101d073deaddeaddeaddeaddeaddeaddeaddeaddeaddead81565b6040516001600160a01b03909116" +
	"81526020016100d8565b6100ce6101f6366004610598565b60009081526001602052604090205490565b3373deaddead" +
	"deaddeaddeaddeaddeaddeaddeaddead146102705760405162461bcd60e51b815260206004820152601f60248201527f" +
	"63616c6c6572206973206e6f74207468652073797374656d2063616c6c65720060448201526064015b60405180910390" +
	"fd5b60008054908190036102b65760405162461bcd60e51b815260206004820152600f60248201526e139bdd081a5b9a" +
	"5d1a585b1a5e9959608a1b6044820152606401610267565b60008181526001602081905260409091208490556102d590" +
	"8290610677565b6000908155838152600260209081526040918290208490558151838152908101859052908101839052" +
	"7f32eff959e2e8d1609edc4b39ccf75900aa6c1da5719f8432752963fdf008234f9060600160405180910390a1505050" +
	"565b3373deaddeaddeaddeaddeaddeaddeaddeaddeaddead146103935760405162461bcd60e51b815260206004820152" +
	"601f60248201527f63616c6c6572206973206e6f74207468652073797374656d2063616c6c6572006044820152606401" +
	"610267565b600054156103d95760405162461bcd60e51b8152602060048201526013602482015272105b1c9958591e48" +
	"1a5b9a5d1a585b1a5e9959606a1b6044820152606401610267565b600055565b60008581526001602052604081205461" +
	"03fa908686868661040f565b9695505050505050565b60006103fa86868686865b600085815260026020908152604080" +
	"8320548151601f8701849004840281018401909252858252916104629188918491908990899081908401838280828437" +
	"60009201919091525089925061046d915050565b979650505050505050565b6000838514801561047c575081155b8015" +
	"61048757508251155b15610494575060016104a3565b6104a0858486856104ab565b90505b949350505050565b600060" +
	"2084516104bb9190610698565b156104c8575060006104a3565b83516000036104d9575060006104a3565b818560005b" +
	"8651811015610548576104f2600284610698565b6001036105165761050f6105098883016020015190565b8361055556" +
	"5b915061052f565b61052c826105278984016020015190565b610555565b91505b60019290921c916105416020826106" +
	"77565b90506104de565b5090931495945050505050565b6000610561838361056a565b90505b92915050565b60008260" +
	"005281602052602060006040600060025afa50602060006020600060025afa505060005192915050565b600060208284" +
	"0312156105aa57600080fd5b5035919050565b600080604083850312156105c457600080fd5b50508035926020909101" +
	"359150565b60008083601f8401126105e557600080fd5b50813567ffffffffffffffff8111156105fd57600080fd5b60" +
	"208301915083602082850101111561061557600080fd5b9250929050565b600080600080600060808688031215610634" +
	"57600080fd5b8535945060208601359350604086013567ffffffffffffffff81111561065957600080fd5b6106658882" +
	"89016105d3565b96999598509660600135949350505050565b8082018082111561056457634e487b7160e01b60005260" +
	"1160045260246000fd5b6000826106b557634e487b7160e01b600052601260045260246000fd5b50069056"
