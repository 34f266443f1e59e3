package errors

var (
	// Domain errors — used in usecase/repository
	ErrKeyNotFound     = NotFound("recipient has no registered public key")
	ErrMessageNotFound = NotFound("message not found")
	ErrNotRecipient    = Forbidden("caller is not the message recipient")

	ErrMalformedPublicKey  = InvalidArg("public key must be exactly 32 bytes")
	ErrMalformedPrivateKey = InvalidArg("private key is missing or malformed")
	ErrMalformedNonce      = InvalidArg("nonce must be exactly 24 bytes")
	ErrEmptyCiphertext     = InvalidArg("ciphertext cannot be empty")

	ErrKeyStorageUnavailable = FailedPrecondition("secure key storage is unavailable")
	ErrKeyringLocked         = FailedPrecondition("wrong passphrase or corrupted keyring")
)

func ErrAtRestSealFailed(cause error) error {
	return Wrap(CodeInternal, "server-side encryption failed, write aborted", cause)
}

func ErrAtRestOpenFailed(cause error) error {
	return Wrap(CodeInternal, "server-side decryption failed", cause)
}

func ErrDirectoryLookupFailed(cause error) error {
	return Wrap(CodeInternal, "key directory lookup failed", cause)
}

func ErrRotationFailed(cause error) error {
	return Wrap(CodeInternal, "key rotation failed", cause)
}
