package ledger

// Invalid reasons recorded on transaction log records.
const (
	reasonInvalidTransaction = "invalid transaction"
	reasonTokenNotExists     = "token not exists"

	reasonInvalidDeploy = "invalid deploy content"
	reasonTokenExists   = "token exists"

	reasonInvalidMint      = "invalid mint content"
	reasonAmountPrecision  = "amount precision error"
	reasonAmountOverLimit  = "amount > limit"
	reasonMintEnded        = "mint ended"
	reasonExceedMax        = "exceed max"
	reasonParseMint        = "parse mint content error"
	reasonInvalidMintTrans = "mint inscription is invalid"

	reasonInvalidSend           = "invalid send content"
	reasonRepeatedNonce         = "repeated nonce"
	reasonNoPendingSend         = "no pending send"
	reasonInsufficientBalance   = "insufficient balance"
	reasonInsufficientAvailable = "insufficient available balance"
	reasonNotSentBeforeNew      = "not sent before new transaction"
	reasonParseSend             = "parse send content error"
	reasonInvalidSendTrans      = "send inscription is invalid"
	reasonWaitForRemaining      = "transaction is not completed, wait for remaining inscription to complete"

	reasonInvalidCancel      = "invalid cancel content"
	reasonNoPendingToCancel  = "no pending send to cancel"
	reasonCancelNonceMissing = "cancel nonce not found"
	reasonCanceledByPrefix   = "canceled by inscribe-cancel: "

	reasonInvalidUpgrade         = "invalid upgrade content"
	reasonNotUpgradable          = "token is not upgradable"
	reasonOnlyDeployerUpgrade    = "only deployer can upgrade"
	reasonMaxLessThanMinted      = "can not set max less than minted"
	reasonInvalidUpgradeTrans    = "invalid upgrade inscription"
	reasonOnlyDeployerActivation = "only deployer can transfer upgrade"
)
