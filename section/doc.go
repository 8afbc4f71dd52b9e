// Package section defines the binary header of a stream64 set blob.
//
// A set blob is a 32-byte header followed by the stored payload:
//
//	offset  size  field
//	0       2     Options: bit 0 checksum, bit 1 endianness, bits 4-15 magic 0x5640 (always little-endian)
//	2       1     encoding type (format.EncodingType)
//	3       1     compression type (format.CompressionType)
//	4       1     remainder width p
//	5       3     reserved, zero
//	8       8     item count
//	16      4     raw payload length
//	20      4     stored payload length
//	24      8     xxHash64 of the stored payload, zero without the checksum bit
//	32      ...   stored payload
//
// The endianness bit selects the byte order of the fields from offset 8 on. The
// payload bitstream itself is big-endian regardless of that bit.
//
// Headers are usually built and parsed by the blob package; this package only
// knows the layout and validates flags.
package section
