// Package blob provides the self-describing container for stream64 sets.
//
// A set blob wraps one encoded set with everything needed to decode it again:
// the encoding, the remainder width, the item count, the payload lengths and
// an optional xxHash64 checksum (see the section package for the layout). The
// payload can be compressed with any codec of the compress package.
//
// # Encoding
//
//	encoder, err := blob.NewSetEncoder(
//	    blob.WithRemainderBits(19),
//	    blob.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//	    return err
//	}
//
//	set, err := encoder.Encode(sortedValues)   // or EncodeUnsorted
//	if err != nil {
//	    return err
//	}
//	data := set.Bytes()
//
// # Decoding
//
//	set, err := blob.DecodeSet(data)
//	if err != nil {
//	    return err
//	}
//
//	for v := range set.All() {
//	    fmt.Println(v)
//	}
//	found := set.Contains(42)
//
// DecodeSet validates the header and the checksum, decompresses the payload and
// checks its length against the item count, so a SetBlob obtained from untrusted
// data can be queried without further validation.
package blob
