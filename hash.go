package ruuid

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
)

// Standard namespaces from RFC 4122 Appendix C.
var (
	NamespaceDNS  = MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL  = MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceOID  = MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500 = MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

// NewV3 generates the name-based MD5 (version 3) UUID of name within
// namespace ns. Identical (ns, name) inputs always yield the identical
// UUID; no randomness or process state is involved.
func NewV3(ns UUID, name []byte) UUID {
	return hashed(md5.New(), ns, name, VersionNameBasedMD5)
}

// NewV5 generates the name-based SHA-1 (version 5) UUID of name within
// namespace ns, with the same determinism guarantee as NewV3.
func NewV5(ns UUID, name []byte) UUID {
	return hashed(sha1.New(), ns, name, VersionNameBasedSHA1)
}

// hashed feeds the 16 namespace bytes and then the name into h, folds the
// first 16 digest bytes into two words and stamps the version and
// variant. Each call owns its hash instance, so no locking is needed.
func hashed(h hash.Hash, ns UUID, name []byte, version Version) UUID {
	h.Write(ns[:])
	h.Write(name)
	sum := h.Sum(nil)

	msb := wordFromBytes(sum[0:8])
	lsb := wordFromBytes(sum[8:16])
	return FromWords(withVersion(msb, version), withVariant(lsb))
}
