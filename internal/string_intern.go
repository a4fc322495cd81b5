package internal

// Object keys repeat heavily in arrays of records. The parser shares one
// copy of each short key across a document.

const (
	maxInternedKeyLen = 64
	maxInternedKeys   = 4096
)

// keyInterner deduplicates object keys within one parse. It is not safe for
// concurrent use.
type keyInterner struct {
	keys map[string]string
}

func newKeyInterner() *keyInterner {
	return &keyInterner{}
}

// intern returns the stored copy of key, storing key on first sight. Long
// keys and keys past the table limit are returned as is.
func (ki *keyInterner) intern(key string) string {
	if len(key) > maxInternedKeyLen {
		return key
	}
	if stored, ok := ki.keys[key]; ok {
		return stored
	}
	if ki.keys == nil {
		ki.keys = make(map[string]string)
	}
	if len(ki.keys) < maxInternedKeys {
		ki.keys[key] = key
	}
	return key
}
