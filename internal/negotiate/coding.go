package negotiate

// Coding is a response content coding the server is able to apply.
// The set is closed: gzip and deflate are the only compressed codings
// supported, plus the wildcard used during negotiation. The zero value
// means "send the response uncompressed".
type Coding string

const (
	CodingNone    Coding = ""
	CodingGzip    Coding = "gzip"
	CodingDeflate Coding = "deflate"
	CodingStar    Coding = "*"
)

// Config carries the server-side negotiation preferences. It is built once
// at startup and shared read-only across all requests.
type Config struct {
	// Preferred breaks ties when gzip and deflate end up equally
	// acceptable. Must be CodingGzip or CodingDeflate.
	Preferred Coding
}
