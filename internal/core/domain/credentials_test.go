package domain

import (
	"strings"
	"testing"
)

func TestKeyEncodingRoundTrip(t *testing.T) {
	for _, key := range []string{"abc123", "k", "", "key with spaces", "ключ"} {
		encoded := EncodeKey(key)
		if key != "" && encoded == key {
			t.Fatalf("key %q stored verbatim", key)
		}
		if got := DecodeKey(encoded); got != key {
			t.Fatalf("round trip of %q gave %q", key, got)
		}
	}
}

func TestDecodeKeyCorruptValue(t *testing.T) {
	// not valid base64, must come back unchanged rather than erroring
	corrupt := "%%%not-base64%%%"
	if got := DecodeKey(corrupt); got != corrupt {
		t.Fatalf("corrupt value mutated to %q", got)
	}
}

func TestEncodeKeyNotPlaintext(t *testing.T) {
	if strings.Contains(EncodeKey("supersecretapikey"), "supersecret") {
		t.Fatal("encoded key leaks plaintext")
	}
}
