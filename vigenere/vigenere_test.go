package vigenere

import "testing"

func TestEncrypt(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
		want string
	}{
		{"empty text", "", "test", ""},
		{"simple", "THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", "LION", "EPSDFQQXMZCJYNCKUCACDWJRCBVRWINLOWU"},
		{"lower case", "cryptoisshortforcryptography", "abcd", "csastpkvsiqutgqucsastpiuaqjb"},
		{"spaces", "Lorem ipsum dolor sit amet, consectetur adipiscing elit.", "spaces", "Ddrgq ahhuo hgddr uml sbev, ggfheexwljr chahxsemfy tlkx."},
		{"unicode and numbers", "1 Lorem ⏳ ipsum dolor sit amet Ѡ", "unicode", "1 Fbzga ⏳ ltmhu fcosl fqv opin Ѡ"},
		{"unicode key", "Lorem ipsum dolor sit amet", "😉 key!", "Vspoq gzwsw hmvsp cmr kqcd"},
		{"empty key", "Lorem ipsum", "", "Lorem ipsum"},
		{"key without letters", "Lorem ipsum", "1234 !?", "Lorem ipsum"},
	}

	for _, tt := range tests {
		if got := Encrypt(tt.text, tt.key); got != tt.want {
			t.Errorf("%s: Encrypt(%q, %q) = %q, want %q", tt.name, tt.text, tt.key, got, tt.want)
		}
	}
}

func TestDecrypt(t *testing.T) {
	if got := Decrypt("IHSQIRIHCQCU", "IOZQGH"); got != "ATTACKATDAWN" {
		t.Fatalf("Decrypt = %q, want ATTACKATDAWN", got)
	}
	if got := Decrypt("Ddrgq ahhuo hgddr uml sbev, ggfheexwljr chahxsemfy tlkx.", "spaces"); got != "Lorem ipsum dolor sit amet, consectetur adipiscing elit." {
		t.Fatalf("Decrypt = %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	texts := []string{"", "a", "Attack at dawn!", "Zebras 🦓 zigzag; ZZZ", "no key letters are consumed by spaces"}
	keys := []string{"k", "LEMON", "MiXeD cAsE", "zzzzzz"}

	for _, text := range texts {
		for _, key := range keys {
			if got := Decrypt(Encrypt(text, key), key); got != text {
				t.Errorf("round trip of %q under %q gave %q", text, key, got)
			}
		}
	}
}
