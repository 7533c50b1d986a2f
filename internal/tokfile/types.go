package tokfile

// Every token file begins with an 8-byte ASCII signature: SignaturePrefix
// followed by a 3-digit decimal revision. CurrentRevision is the revision
// this package writes; Read accepts any revision up to CurrentRevision, and
// a higher one only in yolo mode (with a warning), otherwise it is an error.
const (
	SignaturePrefix = "%TOK-"
	CurrentRevision = "001"
)

// Header byte offsets within a token file.
const (
	OffsetSignature = 0
	OffsetCount     = 8
	OffsetTokens    = 12
)
