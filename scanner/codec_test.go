package scanner

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeID_RoundTrip(t *testing.T) {
	paths := []string{
		"One Piece",
		"ワンピース 第1巻",
		"Akira (1982) [Vol. 01]",
		"a/b/c",
		"émile & co!",
		"?#%&=+",
		"x",
		"\xff\xfe raw bytes",
	}
	for _, p := range paths {
		id := EncodeID(p)
		if strings.ContainsAny(id, "=+/?#% ") {
			t.Errorf("EncodeID(%q) = %q contains unsafe characters", p, id)
		}
		got, err := DecodeID(id)
		if err != nil {
			t.Errorf("DecodeID(%q) error: %v", id, err)
			continue
		}
		if got != p {
			t.Errorf("round trip %q -> %q -> %q", p, id, got)
		}
	}
}

func TestEncodeID_DistinguishesCase(t *testing.T) {
	if EncodeID("Comic") == EncodeID("comic") {
		t.Fatal("ids for names differing only in case must differ")
	}
}

func TestDecodeID_Invalid(t *testing.T) {
	ids := []string{
		"",
		"T25lIFBpZWNl==", // padding
		"T25l+A",         // '+' is not in the URL alphabet
		"T25l/A",
		"T",   // truncated
		"T25", // non-canonical trailing bits
		"a b",
	}
	for _, id := range ids {
		if _, err := DecodeID(id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("DecodeID(%q) err = %v, want ErrInvalidID", id, err)
		}
	}
}
