// Package encryption provides the password-based envelope used to protect a
// message before it is hidden inside an image.
//
// # Envelope format
//
// Every encrypted message is serialised as a JSON object:
//
//	{
//	  "ciphertext": "<base64>",  // AES-256-CBC ciphertext, PKCS#7 padded
//	  "salt":       "<hex>",     // 16 random bytes, PBKDF2 salt
//	  "iv":         "<hex>",     // 16 random bytes, CBC initialisation vector
//	  "checksum":   "<hex>"      // SHA-256 of the plaintext
//	}
//
// The JSON alphabet never contains the "|" character, so an envelope can be
// placed between the frame separators without escaping.
//
// # Key derivation
//
// The AES key is derived from the password with PBKDF2-HMAC-SHA256 using
// [KeyIterations] rounds.  The hex text of the salt is the PBKDF2 salt input.
//
// # Quick start
//
//	codec := encryption.NewCodec()
//	env, err := codec.Encrypt("hello", "password")
//	plaintext, err := codec.Decrypt(env, "password")
//
// # Security notes
//
//   - A fresh salt and IV are generated for every Encrypt call.
//   - The checksum covers the plaintext, not the ciphertext.  It is verified
//     after decryption so that a padding block which happens to look valid
//     under the wrong key is still rejected.
//   - Wrong passwords and corrupted ciphertext both surface as
//     [ErrDecryptionFailed] unless the cipher step succeeded, in which case a
//     checksum mismatch is reported as [ErrIntegrityFailure].
package encryption
