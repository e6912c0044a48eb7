package png

// Signature is the 8-byte magic every PNG datastream starts with.
const Signature = "\x89PNG\r\n\x1a\n"

// Validate checks that buf starts with the PNG signature.
func Validate(buf []byte) error {
	if len(buf) < len(Signature) || string(buf[:len(Signature)]) != Signature {
		return ErrBadSignature
	}
	return nil
}
