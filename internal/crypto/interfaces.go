package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyChainService отвечает за вывод симметричного ключа из мастер-пароля.
// Он не знает ничего о сети, базе данных или HTTP-слое.
//
// Схема работы:
//
//	salt     = GenerateSalt()                  (только для argon2id, при создании хранилища)
//	key      = KeyFromMaster(password, record) (каждый запуск процесса)
//	cipher   = NewRecordCipher(key)
type KeyChainService interface {
	// GenerateSalt генерирует случайную соль (16 байт / 128 бит).
	// Соль не является секретом — она хранится в master record открыто.
	GenerateSalt() ([]byte, error)

	// LegacyKey derives a 32-byte key by repeating the master password up
	// to the key length and truncating. This reproduces the construction
	// used by the first vault generation; changing it would make existing
	// ciphertext undecryptable, so it is kept behind [models.KDFLegacy].
	LegacyKey(masterPassword string) ([]byte, error)

	// Argon2idKey derives a 32-byte key from the master password and salt
	// using Argon2id. Used for vaults created with [models.KDFArgon2id].
	Argon2idKey(masterPassword string, salt []byte) []byte
}

// RecordCipher encrypts and decrypts individual password fields with the
// process-wide derived key. Implementations are safe for concurrent use
// after construction; the key is read-only for the process lifetime.
type RecordCipher interface {
	// Encrypt returns a base64 blob (nonce || ciphertext) of plaintext.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. It fails with [ErrInvalidCredentials] when
	// the authentication tag does not verify (wrong key or tampered data).
	Decrypt(ciphertext string) (string, error)
}

// PasswordGenerator produces random passwords from the approved character
// set. Implementations draw from a cryptographically secure source.
type PasswordGenerator interface {
	// Generate returns a password of exactly length characters. Fails with
	// [ErrInvalidLength] when length is not positive.
	Generate(length int) (string, error)
}
